package handler

import "net/http"

// errorResponse defers to the ErrorHandler configured on Wrap.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that routes err to the handler's ErrorHandler,
// the same path binding failures take. A nil err becomes ErrInternalServerError.
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
