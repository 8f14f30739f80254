package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	assistent "github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/internal/flow"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/internal/prompt"
)

func wizardCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Führt interaktiv durch alle Schritte und schreibt den fertigen Brief",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := assistent.NewSession()
			runner := flow.New(prompt.NewSurveyDriver(), flow.WithLookupClient(lookupClient()))

			if err := runner.Run(cmd.Context(), sess); err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					logger.Info("abgebrochen")
					return nil
				}
				return err
			}

			registry, err := assistent.NewRegistry()
			if err != nil {
				return err
			}
			renderer, err := registry.Get("print")
			if err != nil {
				return err
			}

			markup, err := renderer.Render(cmd.Context(), sess.Document(), assistent.RenderOptions{})
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, markup, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			logger.Info("Brief geschrieben", "path", output)
			fmt.Fprintf(cmd.OutOrStdout(), "Brief geschrieben: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "kuendigung.html", "Zieldatei für den Brief")
	return cmd
}
