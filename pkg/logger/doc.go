// Package logger builds log/slog loggers for the blog API.
//
// New returns a *slog.Logger configured through functional options. Context
// extractors pull request-scoped values such as the request id into every
// record written with a *Context logging method:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "blogapi"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "email sent", logger.Email(addr), logger.Provider("smtp"))
//
// Attribute helpers keep key names consistent across packages. Email masks the
// local part of an address so subscriber addresses never reach logs in clear text.
package logger
