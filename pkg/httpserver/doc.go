// Package httpserver runs the blog API's net/http server with graceful
// shutdown and exposes liveness and readiness handlers.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called, then drains in-flight requests within the shutdown
// timeout. Listen failures wrap ErrStart and drain failures wrap ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// The write timeout doubles as the only deadline on outbound calls made while
// serving a request, since handlers propagate the request context.
package httpserver
