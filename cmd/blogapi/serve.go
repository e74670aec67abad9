package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/romeorayyy/beyonddevblog/modules/site"
	"github.com/romeorayyy/beyonddevblog/pkg/clientip"
	"github.com/romeorayyy/beyonddevblog/pkg/config"
	"github.com/romeorayyy/beyonddevblog/pkg/email"
	"github.com/romeorayyy/beyonddevblog/pkg/environment"
	"github.com/romeorayyy/beyonddevblog/pkg/httpserver"
	"github.com/romeorayyy/beyonddevblog/pkg/logger"
	"github.com/romeorayyy/beyonddevblog/pkg/metrics"
	"github.com/romeorayyy/beyonddevblog/pkg/requestid"
	"github.com/romeorayyy/beyonddevblog/pkg/sheets"
	"github.com/romeorayyy/beyonddevblog/svc/contact"
	"github.com/romeorayyy/beyonddevblog/svc/subscribe"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				appCfg     appConfig
				httpCfg    httpserver.Config
				mailCfg    email.Config
				sheetCfg   sheets.Config
				contactCfg contact.Config
			)
			for _, load := range []func() error{
				func() error { return config.Load(&appCfg) },
				func() error { return config.Load(&httpCfg) },
				func() error { return config.Load(&mailCfg) },
				func() error { return config.Load(&sheetCfg) },
				func() error { return config.Load(&contactCfg) },
			} {
				if err := load(); err != nil {
					return err
				}
			}
			if addr != "" {
				httpCfg.Addr = addr
			}
			if contactCfg.OwnerEmail == "" {
				contactCfg.OwnerEmail = mailCfg.Username
			}

			log := logger.New(
				logger.WithEnvironment(appCfg.Env, appCfg.ServiceName),
				logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
			)
			logger.SetAsDefault(log)

			router, err := buildRouter(log, appCfg, mailCfg, sheetCfg, contactCfg)
			if err != nil {
				return err
			}

			opts := append([]httpserver.Option{httpserver.WithLogger(log)}, lifecycleHooks(time.Now)...)
			srv := httpserver.NewFromConfig(httpCfg, opts...)
			return srv.Run(cmd.Context(), router)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

// lifecycleHooks log the public endpoints once the listener is bound and the
// uptime when the server stops.
func lifecycleHooks(now func() time.Time) []httpserver.Option {
	var started time.Time
	return []httpserver.Option{
		httpserver.WithStartHook(func(log *slog.Logger, addr net.Addr) {
			started = now()
			log.Info("blogapi ready",
				slog.String("version", buildVersion()),
				slog.String("send_email", "http://"+addr.String()+"/api/sendEmail"),
				slog.String("subscribe", "http://"+addr.String()+"/api/subscribe"),
			)
		}),
		httpserver.WithStopHook(func(log *slog.Logger) {
			log.Info("blogapi stopped", logger.Duration(now().Sub(started)))
		}),
	}
}

func buildRouter(
	log *slog.Logger,
	appCfg appConfig,
	mailCfg email.Config,
	sheetCfg sheets.Config,
	contactCfg contact.Config,
) (http.Handler, error) {
	sender, err := email.NewSender(mailCfg, email.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("mail transport: %w", err)
	}
	appender := sheets.NewGoogleAppender(sheetCfg, sheets.WithLogger(log))

	// Incomplete configuration is reported per request; warn once at boot.
	for name, validate := range map[string]func() error{
		"mail":   mailCfg.Validate,
		"sheets": sheetCfg.Validate,
	} {
		if err := validate(); err != nil {
			log.Warn("configuration incomplete", logger.Component(name), logger.Error(err))
		}
	}

	m := metrics.New()
	env := environment.Parse(appCfg.Env)

	return site.Router(site.RouterOptions{
		Env:       env,
		Logger:    log,
		Contact:   contact.NewService(contactCfg, m.InstrumentSender(sender), contact.WithLogger(log)),
		Subscribe: subscribe.NewService(m.InstrumentAppender(appender), subscribe.WithLogger(log)),
		Metrics:   m.Handler(),
		ReadinessChecks: []httpserver.ReadinessCheck{
			{Name: "mail", Check: func(context.Context) error { return mailCfg.Validate() }},
			{Name: "sheets", Check: func(context.Context) error { return sheetCfg.Validate() }},
		},
		ProxyHeaders: appCfg.ProxyHeaders,
	}), nil
}
