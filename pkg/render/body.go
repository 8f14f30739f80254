package render

import (
	"html"
	"strings"
)

// BodyHTML renders the letter body markup shared by every render target. The
// envelopes around it differ per target (screen chrome vs. paginated
// document), the body never does.
func BodyHTML(doc Document) string {
	var b strings.Builder
	b.Grow(2048)

	b.WriteString(`<div class="sl">`)
	b.WriteString(html.EscapeString(doc.SenderLine))
	b.WriteString("</div>\n")

	b.WriteString(`<div class="rcp"><strong>`)
	b.WriteString(html.EscapeString(doc.RecipientName))
	b.WriteString(`</strong>`)
	for _, line := range doc.RecipientLines {
		b.WriteString("<br>")
		b.WriteString(html.EscapeString(line))
	}
	b.WriteString("</div>\n")

	b.WriteString(`<div class="dt">`)
	b.WriteString(html.EscapeString(doc.DateLine))
	b.WriteString("</div>\n")

	b.WriteString(`<div class="sbj">`)
	b.WriteString(html.EscapeString(doc.Subject))
	b.WriteString("</div>\n")

	if doc.CustomerNumberLine != "" {
		b.WriteString(`<div class="sd">`)
		b.WriteString(html.EscapeString(doc.CustomerNumberLine))
		b.WriteString("</div>\n")
	}
	if doc.ContractNumberLine != "" {
		b.WriteString(`<div class="sd">`)
		b.WriteString(html.EscapeString(doc.ContractNumberLine))
		b.WriteString("</div>\n")
	}

	b.WriteString(`<div class="gap"></div>` + "\n")

	for _, paragraph := range doc.Paragraphs {
		b.WriteString(`<p>`)
		writeRuns(&b, paragraph)
		b.WriteString("</p>\n")
	}

	b.WriteString(`<p class="closing">`)
	b.WriteString(html.EscapeString(doc.Closing))
	b.WriteString("</p>\n")

	b.WriteString(`<div class="sig">` + "\n")
	if doc.Signature.ImageDataURI != "" {
		b.WriteString(`<img src="`)
		b.WriteString(html.EscapeString(doc.Signature.ImageDataURI))
		b.WriteString(`" alt="Unterschrift">` + "\n")
	} else {
		b.WriteString(`<div class="sl2"></div>` + "\n")
	}
	b.WriteString(`<div class="sn">`)
	for i, line := range doc.Signature.Lines {
		if i > 0 {
			b.WriteString("<br>")
		}
		b.WriteString(html.EscapeString(line))
	}
	b.WriteString("</div>\n</div>\n")

	return b.String()
}

func writeRuns(b *strings.Builder, paragraph Paragraph) {
	for _, run := range paragraph.Runs {
		if run.Strong {
			b.WriteString("<strong>")
			b.WriteString(html.EscapeString(run.Text))
			b.WriteString("</strong>")
			continue
		}
		b.WriteString(html.EscapeString(run.Text))
	}
}
