package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/romeorayyy/beyonddevblog/pkg/logger"
)

// Dialer opens an SMTP session and sends messages. *gomail.Dialer implements it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender sends mail through an authenticated SMTP relay (Gmail by default).
type SMTPSender struct {
	cfg    Config
	dialer Dialer
	log    *slog.Logger
}

// NewSMTPSender creates an SMTP sender. Credentials are checked on every send.
func NewSMTPSender(cfg Config, opts ...Option) *SMTPSender {
	o := newOptions(opts)
	d := o.dialer
	if d == nil {
		d = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password)
	}
	return &SMTPSender{cfg: cfg, dialer: d, log: o.logger}
}

// SendEmail delivers params in one SMTP session. No retry is attempted.
// ctx is checked before dialing only. Once the session starts it runs to
// completion, so the returned error always matches the delivery outcome.
func (s *SMTPSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	msg := s.message(params)
	start := time.Now()

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	s.log.DebugContext(ctx, "email sent",
		logger.Provider(string(ProviderSMTP)),
		logger.Email(params.SendTo),
		logger.Duration(time.Since(start)),
	)
	return nil
}

func (s *SMTPSender) message(p SendEmailParams) *gomail.Message {
	from := p.From
	if from == "" {
		from = s.cfg.Username
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", p.SendTo)
	if p.ReplyTo != "" {
		m.SetHeader("Reply-To", p.ReplyTo)
	}
	m.SetHeader("Subject", p.Subject)

	switch {
	case p.BodyText != "" && p.BodyHTML != "":
		m.SetBody("text/plain", p.BodyText)
		m.AddAlternative("text/html", p.BodyHTML)
	case p.BodyHTML != "":
		m.SetBody("text/html", p.BodyHTML)
	default:
		m.SetBody("text/plain", p.BodyText)
	}
	return m
}
