// Package flow drives a wizard session through its stages using terminal
// prompts. It owns no presentation beyond prompt wording; all gating lives in
// the wizard session.
package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/internal/prompt"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/lookup"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/signature"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/wizard"
)

var kindOptions = []struct {
	kind  letter.TerminationKind
	label string
}{
	{letter.TerminationOrdentlich, "Ordentliche Kündigung"},
	{letter.TerminationAusserordentlich, "Außerordentliche Kündigung"},
	{letter.TerminationFristlos, "Fristlose Kündigung"},
}

// Option customises the runner.
type Option func(*Runner)

// WithLookupClient injects the address search client used by the search
// prompts.
func WithLookupClient(client *lookup.Client) Option {
	return func(r *Runner) {
		if client != nil {
			r.lookup = client
		}
	}
}

// WithSignatureReader replaces how a signature file path is turned into a
// data URI, for tests.
func WithSignatureReader(reader func(string) (string, error)) Option {
	return func(r *Runner) {
		if reader != nil {
			r.readSignature = reader
		}
	}
}

// Runner walks a session from the customer stage to Done.
type Runner struct {
	driver        prompt.Driver
	lookup        *lookup.Client
	readSignature func(string) (string, error)
}

// New creates a runner on top of the given prompt driver.
func New(driver prompt.Driver, options ...Option) *Runner {
	r := &Runner{
		driver:        driver,
		lookup:        lookup.NewClient(),
		readSignature: signature.FileDataURI,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Run prompts stage by stage until the session reaches Done or the user
// aborts. A blocked advance re-enters the same stage.
func (r *Runner) Run(ctx context.Context, sess *wizard.Session) error {
	for sess.Stage() != wizard.StageDone {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch sess.Stage() {
		case wizard.StageCustomer:
			err = r.customerStage(ctx, sess)
		case wizard.StageDisposer:
			err = r.disposerStage(ctx, sess)
		case wizard.StagePreview:
			err = r.previewStage(ctx, sess)
		case wizard.StageSignature:
			err = r.signatureStage(ctx, sess)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) customerStage(ctx context.Context, sess *wizard.Session) error {
	if err := r.driver.Info(ctx, "== Kundendaten =="); err != nil {
		return err
	}

	if err := r.offerSearch(ctx, "Firmendaten online suchen?", func(result lookup.Result) {
		result.ApplyToCustomer(&sess.Customer)
	}); err != nil {
		return err
	}

	c := &sess.Customer
	fields := []struct {
		message string
		target  *string
	}{
		{"Firmenname", &c.CompanyName},
		{"Vorname", &c.FirstName},
		{"Nachname", &c.LastName},
		{"Straße und Hausnummer", &c.Street},
		{"PLZ", &c.Zip},
		{"Ort", &c.City},
		{"Kundennummer", &c.CustomerNumber},
		{"Vertragsnummer", &c.ContractNumber},
		{"Telefon", &c.Phone},
		{"E-Mail", &c.Email},
	}
	for _, f := range fields {
		value, err := r.driver.Input(ctx, prompt.InputConfig{Message: f.message, Default: *f.target})
		if err != nil {
			return err
		}
		*f.target = strings.TrimSpace(value)
	}

	if err := r.terminationPrompts(ctx, c); err != nil {
		return err
	}

	if !sess.Advance() {
		return r.driver.Info(ctx, "Bitte mindestens Firmenname oder Nachname angeben.")
	}
	return nil
}

func (r *Runner) terminationPrompts(ctx context.Context, c *letter.Customer) error {
	defaultIndex := 0
	for i, option := range kindOptions {
		if option.kind == c.TerminationKind {
			defaultIndex = i
		}
	}
	labels := make([]string, len(kindOptions))
	for i, option := range kindOptions {
		labels[i] = option.label
	}

	index, err := r.driver.Select(ctx, prompt.SelectConfig{
		Message:      "Art der Kündigung",
		Options:      labels,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}
	if index >= 0 && index < len(kindOptions) {
		c.SelectTerminationKind(kindOptions[index].kind)
	}

	if !c.TerminationImmediate {
		immediate, err := r.driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: "Zum nächstmöglichen Zeitpunkt kündigen?",
			Default: c.TerminationImmediate,
		})
		if err != nil {
			return err
		}
		c.TerminationImmediate = immediate
	}

	if !c.TerminationImmediate {
		date, err := r.driver.Input(ctx, prompt.InputConfig{
			Message: "Kündigung zum Datum (z. B. 31.12.2025, leer für Frist)",
			Default: c.TerminationDate,
		})
		if err != nil {
			return err
		}
		c.TerminationDate = strings.TrimSpace(date)
	}
	return nil
}

func (r *Runner) disposerStage(ctx context.Context, sess *wizard.Session) error {
	if err := r.driver.Info(ctx, "== Entsorger =="); err != nil {
		return err
	}

	if err := r.offerSearch(ctx, "Entsorger online suchen?", func(result lookup.Result) {
		result.ApplyToDisposer(&sess.Disposer)
	}); err != nil {
		return err
	}

	d := &sess.Disposer
	fields := []struct {
		message string
		target  *string
	}{
		{"Name des Entsorgers", &d.Name},
		{"Straße und Hausnummer", &d.Street},
		{"PLZ", &d.Zip},
		{"Ort", &d.City},
		{"Land", &d.Country},
	}
	for _, f := range fields {
		value, err := r.driver.Input(ctx, prompt.InputConfig{Message: f.message, Default: *f.target})
		if err != nil {
			return err
		}
		*f.target = strings.TrimSpace(value)
	}
	if d.Country == "" {
		d.Country = letter.DefaultCountry
	}

	if !sess.Advance() {
		return r.driver.Info(ctx, "Name, Straße und Ort des Entsorgers werden benötigt.")
	}
	return nil
}

func (r *Runner) offerSearch(ctx context.Context, message string, apply func(lookup.Result)) error {
	search, err := r.driver.Confirm(ctx, prompt.ConfirmConfig{Message: message})
	if err != nil {
		return err
	}
	if !search {
		return nil
	}

	query, err := r.driver.Input(ctx, prompt.InputConfig{Message: "Suchbegriff (Name und Ort)"})
	if err != nil {
		return err
	}

	result, err := r.lookup.Search(ctx, query)
	if err != nil {
		if errors.Is(err, lookup.ErrNotFound) {
			return r.driver.Info(ctx, "Adresse nicht gefunden. Bitte manuell eingeben.")
		}
		return r.driver.Info(ctx, "Adresssuche derzeit nicht verfügbar. Bitte manuell eingeben.")
	}

	apply(result)
	return r.driver.Info(ctx, fmt.Sprintf("Gefunden: %s, %s, %s %s", result.Name, result.Street, result.Zip, result.City))
}

func (r *Runner) previewStage(ctx context.Context, sess *wizard.Session) error {
	if err := r.driver.Info(ctx, "== Vorschau =="); err != nil {
		return err
	}

	doc := sess.Document()
	if err := r.driver.Info(ctx, strings.Join(doc.TextSegments(), "\n")); err != nil {
		return err
	}

	proceed, err := r.driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: "Weiter zur Unterschrift?",
		Default: true,
	})
	if err != nil {
		return err
	}
	if !proceed {
		sess.Back()
		return nil
	}
	sess.Advance()
	return nil
}

func (r *Runner) signatureStage(ctx context.Context, sess *wizard.Session) error {
	if err := r.driver.Info(ctx, "== Unterschrift =="); err != nil {
		return err
	}

	path, err := r.driver.Input(ctx, prompt.InputConfig{
		Message: "Pfad zu einer PNG-Datei mit Ihrer Unterschrift",
		Help:    "Die Datei wird in den Brief eingebettet.",
	})
	if err != nil {
		return err
	}

	dataURI, err := r.readSignature(strings.TrimSpace(path))
	if err != nil {
		return r.driver.Info(ctx, fmt.Sprintf("Unterschrift konnte nicht gelesen werden: %v", err))
	}

	sess.SetSignature(dataURI)
	if !sess.Advance() {
		return r.driver.Info(ctx, "Ohne Unterschrift kann der Brief nicht fertiggestellt werden.")
	}
	return nil
}
