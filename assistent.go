// Package assistent exposes the letter assistant's core surface from the
// module root: the domain records, the document model and a registry wired
// with both render targets.
package assistent

import (
	"context"
	"io/fs"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/renderers/preview"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/renderers/print"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/wizard"
)

// Customer is the party requesting the termination.
type Customer = letter.Customer

// Disposer is the provider being notified.
type Disposer = letter.Disposer

// Document is the assembled letter consumed by every render target.
type Document = render.Document

// RenderOptions carries per-request presentation hints.
type RenderOptions = render.RenderOptions

// Session is an assistant run with its stage tracking.
type Session = wizard.Session

// NewSession starts a fresh assistant run.
func NewSession() *Session {
	return wizard.NewSession()
}

// NewRegistry returns a registry with the preview and print targets
// registered.
func NewRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	previewRenderer, err := preview.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(previewRenderer); err != nil {
		return nil, err
	}

	printRenderer, err := print.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(printRenderer); err != nil {
		return nil, err
	}

	return registry, nil
}

// Render assembles the letter from the given records and renders it with the
// named target ("preview" or "print").
func Render(ctx context.Context, target string, customer Customer, disposer Disposer, signatureDataURI string, options RenderOptions) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(target)
	if err != nil {
		return nil, err
	}

	doc := render.Compose(customer, disposer, letter.DeriveContent(customer), signatureDataURI)
	return renderer.Render(ctx, doc, options)
}

// PreviewTemplates exposes the embedded preview page templates so callers can
// serve or extend them.
func PreviewTemplates() fs.FS {
	return preview.TemplatesFS()
}

// PrintTemplates exposes the embedded print document templates.
func PrintTemplates() fs.FS {
	return print.TemplatesFS()
}
