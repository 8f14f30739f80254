package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-request presentation hints. They never influence
// the letter content itself; that is fixed by the Document.
type RenderOptions struct {
	// Title overrides the document title. Defaults to "Kündigung".
	Title string
	// Theme customises screen chrome (CSS variables, design tokens) for
	// targets that support it. The print target ignores it: the produced
	// document must stay self-contained.
	Theme *theme.RendererConfig
}
