package render

import "context"

// Renderer converts an assembled letter Document into a byte representation
// for one target (on-screen preview, printable document).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, options RenderOptions) ([]byte, error)
}
