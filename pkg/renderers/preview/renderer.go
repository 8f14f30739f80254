// Package preview renders the letter for on-screen review: a nominal A4 page
// with screen chrome around the shared letter body.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

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

// New constructs the preview renderer applying any provided options.
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
			return nil, fmt.Errorf("preview renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "preview"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("preview renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("preview renderer: template renderer is nil")
	}

	title := options.Title
	if title == "" {
		title = defaultTitle
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", map[string]any{
		"title":   title,
		"body":    render.BodyHTML(doc),
		"cssVars": cssVarBlock(options.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("preview renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// cssVarBlock flattens theme variables and tokens into a deterministic CSS
// declaration list for the page chrome.
func cssVarBlock(cfg *theme.RendererConfig) string {
	if cfg == nil {
		return ""
	}

	vars := make(map[string]string, len(cfg.CSSVars)+len(cfg.Tokens))
	for key, value := range cfg.Tokens {
		name := strings.TrimSpace(key)
		if name == "" || value == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		vars[name] = value
	}
	for key, value := range cfg.CSSVars {
		name := strings.TrimSpace(key)
		if name == "" || value == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		vars[name] = value
	}
	if len(vars) == 0 {
		return ""
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(vars[name])
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}
