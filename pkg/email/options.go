package email

import (
	"log/slog"
	"net/http"

	"github.com/romeorayyy/beyonddevblog/pkg/logger"
)

// Option configures a sender.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	dialer     Dialer
	httpClient *http.Client
}

func newOptions(opts []Option) *options {
	o := &options{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDialer replaces the gomail SMTP dialer, mostly for tests.
func WithDialer(d Dialer) Option {
	return func(o *options) {
		if d != nil {
			o.dialer = d
		}
	}
}

// WithHTTPClient sets the HTTP client used by the Postmark sender.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}
