package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/romeorayyy/beyonddevblog/pkg/sanitizer"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	allowUnknownFields bool
}

// AllowUnknownFields makes the binder ignore keys the target does not declare.
// Without it such keys fail the request.
func AllowUnknownFields() JSONOption {
	return func(c *jsonConfig) {
		c.allowUnknownFields = true
	}
}

// JSON creates a JSON binder function.
//
// Form-encoded requests are reported with ErrBinderNotApplicable so the Form
// binder can take over when both are configured. Unknown fields are rejected
// unless AllowUnknownFields is given. NUL bytes are stripped from every decoded
// string; other whitespace is left to the caller.
//
// Example:
//
//	r.Post("/", handler.Wrap(h,
//		handler.WithBinders[handler.Context, Inquiry](
//			binder.JSON(binder.AllowUnknownFields()),
//			binder.Form(),
//		),
//	))
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := &jsonConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		mt := mediaType(r)
		switch {
		case mt == "":
			return fmt.Errorf("%w: expected %s", ErrMissingContentType, mediaTypeJSON)
		case isFormMediaType(mt):
			return ErrBinderNotApplicable
		case mt != mediaTypeJSON:
			return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mt, mediaTypeJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if !cfg.allowUnknownFields {
			decoder.DisallowUnknownFields()
		}

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		sanitizeStrings(reflect.ValueOf(v))
		return nil
	}
}

// sanitizeStrings walks v and cleans every settable string it finds.
func sanitizeStrings(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(cleanString(rv.String()))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if field := rv.Field(i); field.CanSet() {
				sanitizeStrings(field)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			sanitizeStrings(rv.Index(i))
		}
	case reflect.Ptr, reflect.Interface:
		if !rv.IsNil() {
			sanitizeStrings(rv.Elem())
		}
	}
}

func cleanString(s string) string {
	return sanitizer.RemoveNullBytes(s)
}
