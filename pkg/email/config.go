package email

import (
	"errors"
	"fmt"
	"strings"
)

// Provider selects the mail transport.
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderPostmark Provider = "postmark"
	ProviderDev      Provider = "dev"
)

// Config holds the mail transport settings. Username and Password are the
// Gmail account used for SMTP; Username is also the default inbox for
// contact notifications. Nothing is required at load time so the process can
// start with partial configuration and report it per request.
type Config struct {
	Provider             Provider `env:"MAIL_PROVIDER" envDefault:"smtp"`
	Username             string   `env:"EMAIL"`
	Password             string   `env:"PASSWORD"`
	SMTPHost             string   `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort             int      `env:"SMTP_PORT" envDefault:"587"`
	PostmarkServerToken  string   `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string   `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string   `env:"SENDER_EMAIL"`
	DevDir               string   `env:"MAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// Validate reports every setting the selected provider is missing.
// The returned error wraps ErrMissingCredentials.
func (c Config) Validate() error {
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	switch c.provider() {
	case ProviderSMTP:
		require("EMAIL", c.Username)
		require("PASSWORD", c.Password)
		require("SMTP_HOST", c.SMTPHost)
		if c.SMTPPort <= 0 {
			missing = append(missing, "SMTP_PORT")
		}
	case ProviderPostmark:
		require("POSTMARK_SERVER_TOKEN", c.PostmarkServerToken)
		require("POSTMARK_ACCOUNT_TOKEN", c.PostmarkAccountToken)
		require("SENDER_EMAIL", c.SenderEmail)
	case ProviderDev:
		require("MAIL_DEV_DIR", c.DevDir)
	default:
		return fmt.Errorf("%w: unknown MAIL_PROVIDER %q", ErrInvalidConfig, c.Provider)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

func (c Config) provider() Provider {
	if c.Provider == "" {
		return ProviderSMTP
	}
	return Provider(strings.ToLower(string(c.Provider)))
}

// NewSender builds the sender for the configured provider. Missing
// credentials are not an error here; the returned sender reports them on use.
func NewSender(cfg Config, opts ...Option) (Sender, error) {
	switch cfg.provider() {
	case ProviderSMTP:
		return NewSMTPSender(cfg, opts...), nil
	case ProviderPostmark:
		return NewPostmarkSender(cfg, opts...), nil
	case ProviderDev:
		return NewDevSender(cfg.DevDir, opts...), nil
	default:
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.Provider))
	}
}
