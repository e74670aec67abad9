package subscribe

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/romeorayyy/beyonddevblog/binder"
	"github.com/romeorayyy/beyonddevblog/handler"
	"github.com/romeorayyy/beyonddevblog/pkg/logger"
	"github.com/romeorayyy/beyonddevblog/pkg/sanitizer"
	"github.com/romeorayyy/beyonddevblog/pkg/sheets"
	"github.com/romeorayyy/beyonddevblog/pkg/validator"
)

// SuccessMessage is returned after a row was appended.
const SuccessMessage = "Email appended successfully!"

// Request is a mailing-list signup.
type Request struct {
	Email string `json:"email" form:"email"`
}

// Normalize trims the address and lowercases its domain.
func (r Request) Normalize() Request {
	r.Email = sanitizer.NormalizeEmail(r.Email)
	return r
}

func (r Request) Validate() error {
	rules := []validator.Rule{validator.Required("email", r.Email)}
	rules = append(rules, validator.When(r.Email != "", validator.ValidEmail("email", r.Email))...)
	return validator.Apply(rules...)
}

// Response is the JSON body of every subscribe response.
type Response struct {
	Message string `json:"message"`
}

// Service records subscriber addresses in a spreadsheet.
type Service struct {
	sheet sheets.Appender
	log   *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(sheet sheets.Appender, opts ...Option) *Service {
	s := &Service{sheet: sheet, log: logger.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe appends the address as one row. Repeated signups append again.
func (s *Service) Subscribe(ctx context.Context, req Request) error {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.sheet.AppendRow(ctx, req.Email); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "subscriber appended",
		logger.Component("subscribe"),
		logger.Email(req.Email),
	)
	return nil
}

// Handle serves POST / and answers any other method with 405.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(handler.MethodNotAllowed(http.MethodPost))

	r.Post("/", handler.Wrap(s.subscribe,
		handler.WithBinders[handler.Context, Request](binder.JSON(binder.AllowUnknownFields()), binder.Form()),
		handler.WithErrorHandler[handler.Context, Request](handler.NewErrorHandler(s.log, renderFailure)),
	))

	return r
}

func (s *Service) subscribe(ctx handler.Context, req Request) handler.Response {
	if err := s.Subscribe(ctx, req); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(Response{Message: SuccessMessage})
}

// renderFailure keeps {"message": ...} for every failure. Server-side errors
// carry the "An error occurred: " prefix clients already match on.
func renderFailure(info handler.ErrorInfo) handler.Response {
	msg := info.Message
	if info.StatusCode >= http.StatusInternalServerError {
		msg = "An error occurred: " + msg
	}
	return handler.JSON(Response{Message: msg}, handler.WithJSONStatus(info.StatusCode))
}
