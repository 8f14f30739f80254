package preview

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded page template so callers can reuse or
// replace the on-screen chrome.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
