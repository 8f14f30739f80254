package template

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract. Render targets depend on this seam so tests can substitute a stub
// engine.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
