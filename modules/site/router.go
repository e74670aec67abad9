package site

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/romeorayyy/beyonddevblog/pkg/clientip"
	"github.com/romeorayyy/beyonddevblog/pkg/environment"
	"github.com/romeorayyy/beyonddevblog/pkg/httpserver"
	"github.com/romeorayyy/beyonddevblog/pkg/logger"
	"github.com/romeorayyy/beyonddevblog/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the blog API. Each endpoint is optional and only
// mounted when provided.
type RouterOptions struct {
	Env    environment.Environment
	Logger *slog.Logger

	Contact   Mountable // POST /api/sendEmail
	Subscribe Mountable // POST /api/subscribe

	Metrics         http.Handler // GET /metrics
	ReadinessChecks []httpserver.ReadinessCheck

	// ProxyHeaders lists headers trusted for the client address. Nil uses clientip.DefaultHeaders.
	ProxyHeaders []string
}

// Router builds the root handler.
//
// Example:
//
//	r := site.Router(site.RouterOptions{
//		Env:       environment.Production,
//		Logger:    log,
//		Contact:   contact.NewService(contactCfg, sender),
//		Subscribe: subscribe.NewService(appender),
//		Metrics:   m.Handler(),
//	})
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(opts.ProxyHeaders),
		environment.Middleware(opts.Env),
		RequestLogger(log),
	)

	r.Route("/api", func(api chi.Router) {
		if opts.Contact != nil {
			api.Mount("/sendEmail", opts.Contact.Handle())
		}
		if opts.Subscribe != nil {
			api.Mount("/subscribe", opts.Subscribe.Handle())
		}
	})

	r.Route("/health", func(h chi.Router) {
		h.Get("/live", httpserver.LivenessHandler())
		h.Get("/ready", httpserver.ReadinessHandler(log, opts.ReadinessChecks...))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	return r
}
