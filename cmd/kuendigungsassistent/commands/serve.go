package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/internal/server"
)

func serveCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Startet den HTTP-Dienst des Assistenten",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv, err := server.New(
				server.WithLogger(logger),
				server.WithLookupClient(lookupClient()),
			)
			if err != nil {
				return err
			}

			addr := cfg.Listen
			if listen != "" {
				addr = listen
			}
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Adresse überschreiben (Standard aus Konfiguration)")
	return cmd
}
