package print

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded document template.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
