package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romeorayyy/beyonddevblog/binder"
	"github.com/romeorayyy/beyonddevblog/handler"
	"github.com/romeorayyy/beyonddevblog/pkg/validator"
)

type subscribeRequest struct {
	Email string `json:"email" form:"email"`
}

type messageBody struct {
	Message string `json:"message"`
}

func echoHandler(ctx handler.Context, req subscribeRequest) handler.Response {
	return handler.JSON(messageBody{Message: req.Email})
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) messageBody {
	t.Helper()
	var body messageBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrap_Binders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(handler.HandlerFunc[handler.Context, subscribeRequest](echoHandler),
		handler.WithBinders[handler.Context, subscribeRequest](binder.JSON(), binder.Form()),
	)

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":" reader@example.com "}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "reader@example.com", decodeMessage(t, rec).Message)
	})

	t.Run("form body skips json binder", func(t *testing.T) {
		t.Parallel()
		form := url.Values{"email": {"reader@example.com"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()

		h(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "reader@example.com", decodeMessage(t, rec).Message)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("reader@example.com"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()

		h(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, subscribeRequest](func(handler.Context, subscribeRequest) handler.Response {
			return nil
		}),
		handler.WithErrorHandler[handler.Context, subscribeRequest](func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.ErrorIs(t, got, handler.ErrNilResponse)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWrap_DecoratorOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, subscribeRequest] {
		return func(next handler.HandlerFunc[handler.Context, subscribeRequest]) handler.HandlerFunc[handler.Context, subscribeRequest] {
			return func(ctx handler.Context, req subscribeRequest) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(handler.HandlerFunc[handler.Context, subscribeRequest](echoHandler),
		handler.WithDecorators(mark("outer"), mark("inner")),
	)
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestWrap_ContextDelegatesToRequest(t *testing.T) {
	t.Parallel()

	type key struct{}
	h := handler.Wrap(handler.HandlerFunc[handler.Context, subscribeRequest](
		func(ctx handler.Context, _ subscribeRequest) handler.Response {
			v, _ := ctx.Value(key{}).(string)
			return handler.JSON(messageBody{Message: v}, handler.WithJSONStatus(http.StatusAccepted))
		},
	))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), key{}, "from-request"))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "from-request", decodeMessage(t, rec).Message)
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		level   slog.Level
	}{
		{
			name:   "http error keeps its code",
			err:    handler.ErrMethodNotAllowed,
			status: http.StatusMethodNotAllowed,
			level:  slog.LevelWarn,
		},
		{
			name:   "unsupported media type",
			err:    binder.ErrUnsupportedMediaType,
			status: http.StatusUnsupportedMediaType,
			level:  slog.LevelWarn,
		},
		{
			name:   "invalid json",
			err:    errors.Join(binder.ErrFailedToParseJSON, errors.New("eof")),
			status: http.StatusBadRequest,
			level:  slog.LevelWarn,
		},
		{
			name:   "missing content type",
			err:    binder.ErrMissingContentType,
			status: http.StatusBadRequest,
			level:  slog.LevelWarn,
		},
		{
			name:   "validation",
			err:    validator.Apply(validator.Required("email", "")),
			status: http.StatusBadRequest,
			level:  slog.LevelWarn,
		},
		{
			name:    "external failure keeps its text",
			err:     errors.New("googleapi: Error 403: The caller does not have permission"),
			status:  http.StatusInternalServerError,
			message: "googleapi: Error 403: The caller does not have permission",
			level:   slog.LevelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := handler.ClassifyError(tt.err)
			assert.Equal(t, tt.status, info.StatusCode)
			assert.Equal(t, tt.level, info.LogLevel)
			if tt.message != "" {
				assert.Equal(t, tt.message, info.Message)
			}
		})
	}
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("renders with endpoint shape and logs", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&logs, nil))
		eh := handler.NewErrorHandler(log, func(info handler.ErrorInfo) handler.Response {
			return handler.JSON(messageBody{Message: "An error occurred: " + info.Message}, handler.WithJSONStatus(info.StatusCode))
		})

		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, subscribeRequest](echoHandler),
			handler.WithBinder[handler.Context, subscribeRequest](func(*http.Request, any) error {
				return errors.New("token expired")
			}),
			handler.WithErrorHandler[handler.Context, subscribeRequest](eh),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/api/subscribe", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "An error occurred: token expired", decodeMessage(t, rec).Message)
		assert.Contains(t, logs.String(), `"status_code":500`)
		assert.Contains(t, logs.String(), `"path":"/api/subscribe"`)
	})

	t.Run("nil renderer writes plain text", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
		rec := httptest.NewRecorder()
		eh(handler.NewContext(rec, httptest.NewRequest(http.MethodPost, "/", nil)), handler.ErrBadRequest)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "bad_request")
	})
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handler.MethodNotAllowed(http.MethodPost)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
	assert.Empty(t, rec.Body.String())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Empty().Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestError_RoutesToErrorHandler(t *testing.T) {
	t.Parallel()

	upstream := errors.New("smtp: 421 service not available")
	var got error
	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, subscribeRequest](func(handler.Context, subscribeRequest) handler.Response {
			return handler.Error(upstream)
		}),
		handler.WithErrorHandler[handler.Context, subscribeRequest](func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(handler.ClassifyError(err).StatusCode)
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, upstream, got)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.Equal(t, handler.ErrInternalServerError, handler.Error(nil).Render(rec, nil))
}
