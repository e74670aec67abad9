// Package handler provides type-safe HTTP request handling for the blog API.
//
// Handlers are generic functions that receive an already-bound request value
// and return a Response. Wrap converts them into plain http.HandlerFunc values
// that work with any router:
//
//	type SubscribeRequest struct {
//		Email string `json:"email" form:"email"`
//	}
//
//	h := handler.HandlerFunc[handler.Context, SubscribeRequest](
//		func(ctx handler.Context, req SubscribeRequest) handler.Response {
//			return handler.JSON(map[string]string{"message": "ok"})
//		},
//	)
//
//	r.Post("/", handler.Wrap(h,
//		handler.WithBinders[handler.Context, SubscribeRequest](binder.JSON(), binder.Form()),
//	))
//
// # Errors
//
// Binding and rendering failures go to the configured ErrorHandler.
// ClassifyError maps errors to status codes: HTTPError values keep their code,
// binder errors become 400 (415 for an unsupported media type), validator
// errors become 400, and everything else is 500 with the error text preserved.
// NewErrorHandler logs the failure and delegates the body to an ErrorRenderer,
// so each endpoint keeps its own response shape.
package handler
