// Package commands wires the CLI: an interactive wizard, a one-shot render
// command and the HTTP server.
package commands

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/internal/config"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/lookup"
)

var (
	configPath string
	cfg        config.Config
	logger     *log.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "kuendigungsassistent",
		Short:         "Erstellt Kündigungsschreiben für Entsorgungsverträge",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = log.InfoLevel
			}
			logger = log.NewWithOptions(os.Stderr, log.Options{Level: level})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Pfad zur YAML-Konfiguration")

	root.AddCommand(wizardCmd(), renderCmd(), serveCmd())
	return root.Execute()
}

func lookupClient() *lookup.Client {
	return lookup.NewClient(
		lookup.WithBaseURL(cfg.Lookup.BaseURL),
		lookup.WithUserAgent(cfg.Lookup.UserAgent),
	)
}
