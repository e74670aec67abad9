package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/romeorayyy/beyonddevblog/binder"
	"github.com/romeorayyy/beyonddevblog/pkg/logger"
	"github.com/romeorayyy/beyonddevblog/pkg/requestid"
	"github.com/romeorayyy/beyonddevblog/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// ErrorRenderer turns classified error information into an endpoint-specific response body.
type ErrorRenderer func(info ErrorInfo) Response

// bindErrors are request-shape failures reported as 400 Bad Request.
var bindErrors = []error{
	binder.ErrMissingContentType,
	binder.ErrFailedToParseJSON,
	binder.ErrInvalidForm,
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// ClassifyError maps an error to a status code and a caller-facing message.
// Unknown errors become 500 and keep their own text so external failures
// are surfaced to the caller.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    http.StatusText(http.StatusInternalServerError),
	}
	if err != nil {
		info.Message = err.Error()
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
	case validator.IsValidationError(err):
		info.StatusCode = http.StatusBadRequest
	default:
		for _, target := range bindErrors {
			if errors.Is(err, target) {
				info.StatusCode = http.StatusBadRequest
				break
			}
		}
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// logError logs the error with request context
func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates an error handler that logs the error and renders
// it with the given renderer. A nil renderer falls back to plain text.
func NewErrorHandler(log *slog.Logger, render ErrorRenderer) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := ClassifyError(err)
		logError(log, ctx, err, info)

		if render == nil {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}

		if renderErr := render(info).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
