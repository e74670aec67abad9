package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/romeorayyy/beyonddevblog/pkg/email"
	"github.com/romeorayyy/beyonddevblog/pkg/sheets"
)

// Result label values.
const (
	ResultSuccess       = "success"
	ResultFailure       = "failure"
	ResultNotConfigured = "not_configured"
)

// Metrics holds the counters for outbound calls.
type Metrics struct {
	MailSend    *prometheus.CounterVec
	SheetAppend *prometheus.CounterVec
	gatherer    prometheus.Gatherer
}

// New registers the collectors on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return register(reg)
}

func register(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		MailSend: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blog_mail_send_total",
			Help: "Contact notification emails by delivery result",
		}, []string{"result"}),
		SheetAppend: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blog_sheet_append_total",
			Help: "Subscriber rows appended to the spreadsheet by result",
		}, []string{"result"}),
		gatherer: reg,
	}
	reg.MustRegister(m.MailSend, m.SheetAppend)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// InstrumentSender counts every SendEmail outcome of next.
func (m *Metrics) InstrumentSender(next email.Sender) email.Sender {
	return senderFunc(func(ctx context.Context, p email.SendEmailParams) error {
		err := next.SendEmail(ctx, p)
		m.MailSend.WithLabelValues(result(err, email.ErrMissingCredentials, email.ErrInvalidConfig)).Inc()
		return err
	})
}

// InstrumentAppender counts every AppendRow outcome of next.
func (m *Metrics) InstrumentAppender(next sheets.Appender) sheets.Appender {
	return appenderFunc(func(ctx context.Context, values ...any) error {
		err := next.AppendRow(ctx, values...)
		m.SheetAppend.WithLabelValues(result(err, sheets.ErrMissingCredentials)).Inc()
		return err
	})
}

func result(err error, notConfigured ...error) string {
	if err == nil {
		return ResultSuccess
	}
	for _, target := range notConfigured {
		if errors.Is(err, target) {
			return ResultNotConfigured
		}
	}
	return ResultFailure
}

type senderFunc func(ctx context.Context, p email.SendEmailParams) error

func (f senderFunc) SendEmail(ctx context.Context, p email.SendEmailParams) error { return f(ctx, p) }

type appenderFunc func(ctx context.Context, values ...any) error

func (f appenderFunc) AppendRow(ctx context.Context, values ...any) error { return f(ctx, values...) }
