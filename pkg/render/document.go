package render

import (
	"fmt"
	"strings"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
)

// Subject is the fixed subject line of every letter.
const Subject = "Kündigung des Entsorgungsvertrages"

const (
	salutation       = "Sehr geehrte Damen und Herren,"
	confirmationPara = "Ich bitte Sie, den Eingang dieser Kündigung schriftlich zu bestätigen sowie mir das genaue Beendigungsdatum des Vertragsverhältnisses mitzuteilen."
	retrievalPara    = "Darüber hinaus bitte ich Sie, alle überlassenen Behälter, Geräte und sonstigen Gegenstände rechtzeitig abzuholen und sicherzustellen, dass zum Vertragsende keine offenen Forderungen zwischen uns bestehen."
	antiMarketing    = "Ich untersage ausdrücklich jede weitere Kontaktaufnahme zu Werbe-, Rückgewinnungs- oder sonstigen Marketingzwecken. Eine Kontaktaufnahme nach Zugang dieser Kündigung wird als unerwünschte Werbung gemäß §7 UWG betrachtet und entsprechend behandelt. Ich erwarte, dass Sie diese Anweisung vollumfänglich respektieren."
	closing          = "Mit freundlichen Grüßen"
)

// Run is a span of paragraph text, optionally emphasised.
type Run struct {
	Text   string
	Strong bool
}

// Paragraph is an ordered list of runs.
type Paragraph struct {
	Runs []Run
}

// Text flattens the paragraph into plain text.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, run := range p.Runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

func plain(text string) Paragraph {
	return Paragraph{Runs: []Run{{Text: text}}}
}

// SignatureBlock closes the letter: the captured signature image if present,
// otherwise render targets draw a blank rule of fixed dimensions, followed by
// the sender's name and address.
type SignatureBlock struct {
	// ImageDataURI is the inline-embeddable signature image, empty when no
	// signature was captured.
	ImageDataURI string
	Lines        []string
}

// Document is the assembled letter content every render target consumes. It
// fixes the order of all blocks and the outcome of every conditional, so the
// targets themselves contain no content logic to drift apart.
type Document struct {
	SenderLine         string
	RecipientName      string
	RecipientLines     []string
	DateLine           string
	Subject            string
	CustomerNumberLine string
	ContractNumberLine string
	Paragraphs         []Paragraph
	Closing            string
	Signature          SignatureBlock
}

// Compose assembles the letter from the current records, the derived content
// and the captured signature (empty string when absent). It is the single
// content-assembly routine behind every render target.
func Compose(c letter.Customer, d letter.Disposer, content letter.Content, signature string) Document {
	doc := Document{
		SenderLine:    fmt.Sprintf("%s · %s · %s %s", content.SenderName, c.Street, c.Zip, c.City),
		RecipientName: d.Name,
		RecipientLines: []string{
			d.Street,
			strings.TrimSpace(d.Zip + " " + d.City),
		},
		DateLine: fmt.Sprintf("%s, den %s", c.City, content.Today),
		Subject:  Subject,
		Closing:  closing,
		Signature: SignatureBlock{
			ImageDataURI: signature,
			Lines: []string{
				content.SenderName,
				c.Street,
				strings.TrimSpace(c.Zip + " " + c.City),
			},
		},
	}

	if d.Country != "" && d.Country != letter.DefaultCountry {
		doc.RecipientLines = append(doc.RecipientLines, d.Country)
	}
	if c.CustomerNumber != "" {
		doc.CustomerNumberLine = "Kundennummer: " + c.CustomerNumber
	}
	if c.ContractNumber != "" {
		doc.ContractNumberLine = "Vertragsnummer: " + c.ContractNumber
	}

	doc.Paragraphs = append(doc.Paragraphs, plain(salutation))
	doc.Paragraphs = append(doc.Paragraphs, declarationParagraph(c, content))
	doc.Paragraphs = append(doc.Paragraphs, plain(confirmationPara))
	doc.Paragraphs = append(doc.Paragraphs, plain(retrievalPara))
	if content.ContactLine != "" {
		doc.Paragraphs = append(doc.Paragraphs, plain("Für Rückfragen stehe ich Ihnen gerne unter "+content.ContactLine+" zur Verfügung."))
	}
	doc.Paragraphs = append(doc.Paragraphs, plain(antiMarketing))

	return doc
}

func declarationParagraph(c letter.Customer, content letter.Content) Paragraph {
	tail := " meines mit Ihnen bestehenden Entsorgungsvertrages"
	if c.ContractNumber != "" {
		tail += " (Vertragsnummer: " + c.ContractNumber + ")"
	}
	tail += " " + content.DateClause + "."

	return Paragraph{Runs: []Run{
		{Text: "hiermit erkläre ich die "},
		{Text: content.KindLabel, Strong: true},
		{Text: tail},
	}}
}

// TextSegments lists the non-empty textual segments of the letter in render
// order. Both render targets must produce exactly these segments; the
// equivalence tests compare against this.
func (d Document) TextSegments() []string {
	segments := make([]string, 0, 16+len(d.Paragraphs))
	appendSegment := func(s string) {
		if strings.TrimSpace(s) != "" {
			segments = append(segments, s)
		}
	}

	appendSegment(d.SenderLine)
	appendSegment(d.RecipientName)
	for _, line := range d.RecipientLines {
		appendSegment(line)
	}
	appendSegment(d.DateLine)
	appendSegment(d.Subject)
	appendSegment(d.CustomerNumberLine)
	appendSegment(d.ContractNumberLine)
	for _, paragraph := range d.Paragraphs {
		appendSegment(paragraph.Text())
	}
	appendSegment(d.Closing)
	for _, line := range d.Signature.Lines {
		appendSegment(line)
	}
	return segments
}
