package contact

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/romeorayyy/beyonddevblog/binder"
	"github.com/romeorayyy/beyonddevblog/handler"
	"github.com/romeorayyy/beyonddevblog/pkg/email"
	"github.com/romeorayyy/beyonddevblog/pkg/email/templates"
	"github.com/romeorayyy/beyonddevblog/pkg/logger"
)

const mailTag = "contact"

// Service forwards contact-form inquiries to the blog owner by email.
type Service struct {
	cfg  Config
	mail email.Sender
	log  *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(cfg Config, mail email.Sender, opts ...Option) *Service {
	s := &Service{cfg: cfg, mail: mail, log: logger.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendEmail validates the inquiry and sends exactly one notification to the
// owner. The visitor's address is both sender and reply-to. Nothing is retried.
func (s *Service) SendEmail(ctx context.Context, in Inquiry) error {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(s.cfg.OwnerEmail) == "" {
		return fmt.Errorf("%w: set CONTACT_OWNER_EMAIL or EMAIL", ErrNotConfigured)
	}

	html, err := templates.Render(ctx, templates.Inquiry(templates.InquiryData{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Details: in.InquiryDetails,
	}))
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	err = s.mail.SendEmail(ctx, email.SendEmailParams{
		From:     in.Email,
		ReplyTo:  in.Email,
		SendTo:   s.cfg.OwnerEmail,
		Subject:  in.MailSubject(),
		BodyText: in.InquiryDetails,
		BodyHTML: html,
		Tag:      mailTag,
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "contact inquiry delivered",
		logger.Component("contact"),
		logger.Email(in.Email),
	)
	return nil
}

// Handle serves POST / and answers any other method with 405.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(handler.MethodNotAllowed(http.MethodPost))

	r.Post("/", handler.Wrap(s.sendEmail,
		handler.WithBinders[handler.Context, Inquiry](
			binder.JSON(binder.AllowUnknownFields()),
			binder.Form(), // plain HTML form posts
		),
		handler.WithErrorHandler[handler.Context, Inquiry](handler.NewErrorHandler(s.log, renderFailure)),
	))

	return r
}

func (s *Service) sendEmail(ctx handler.Context, in Inquiry) handler.Response {
	if err := s.SendEmail(ctx, in); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(Result{Success: true})
}

func renderFailure(info handler.ErrorInfo) handler.Response {
	return handler.JSON(
		Result{Success: false, Message: info.Message},
		handler.WithJSONStatus(info.StatusCode),
	)
}
