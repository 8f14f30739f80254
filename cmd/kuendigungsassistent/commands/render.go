package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	assistent "github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/signature"
)

// renderInput is the JSON shape accepted by the render command.
type renderInput struct {
	Customer     letter.Customer `json:"customer"`
	Disposer     letter.Disposer `json:"disposer"`
	SignaturePNG string          `json:"signaturePng"`
}

func renderCmd() *cobra.Command {
	var (
		input  string
		target string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Rendert einen Brief aus einer JSON-Datei ohne Assistent",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read %s: %w", input, err)
			}

			var in renderInput
			if err := json.Unmarshal(data, &in); err != nil {
				return fmt.Errorf("parse %s: %w", input, err)
			}
			if in.Disposer.Country == "" {
				in.Disposer.Country = letter.DefaultCountry
			}

			var signatureDataURI string
			if in.SignaturePNG != "" {
				signatureDataURI, err = signature.FileDataURI(in.SignaturePNG)
				if err != nil {
					return err
				}
			}

			markup, err := assistent.Render(cmd.Context(), target, in.Customer, in.Disposer, signatureDataURI, assistent.RenderOptions{})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(markup)
				return err
			}
			if err := os.WriteFile(output, markup, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("Brief geschrieben", "target", target, "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON-Datei mit Kunden- und Entsorgerdaten")
	cmd.Flags().StringVarP(&target, "target", "t", "print", "Render-Ziel (preview oder print)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Zieldatei (Standard: stdout)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
