// Package print renders the letter as a self-contained paginated document
// (A4 page size, fixed margins, inline signature image, no external assets)
// ready for hand-off to a platform print or PDF-export facility.
package print

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render"
	rendertemplate "github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render/template"
	gotemplate "github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render/template/gotemplate"
)

const defaultTitle = "Kündigung"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the print renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("print renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "print"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render wraps the shared letter body in the paginated document envelope.
// Theme options are deliberately ignored; the artifact must not depend on
// anything outside itself.
func (r *Renderer) Render(ctx context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("print renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("print renderer: template renderer is nil")
	}

	title := options.Title
	if title == "" {
		title = defaultTitle
	}

	result, err := r.templates.RenderTemplate("templates/document.tmpl", map[string]any{
		"title": title,
		"body":  render.BodyHTML(doc),
	})
	if err != nil {
		return nil, fmt.Errorf("print renderer: render template: %w", err)
	}
	return []byte(result), nil
}
