package main

import (
	"github.com/spf13/cobra"

	"github.com/romeorayyy/beyonddevblog/pkg/config"
)

// appConfig holds process-wide settings.
type appConfig struct {
	Env          string   `env:"APP_ENV" envDefault:"development"`
	ServiceName  string   `env:"SERVICE_NAME" envDefault:"blogapi"`
	ProxyHeaders []string `env:"TRUSTED_PROXY_HEADERS" envSeparator:","`
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:          "blogapi",
		Short:        "Contact and newsletter API for the blog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.LoadEnv(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "additional .env files to load (repeatable)")

	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}
