// Package testsupport holds fixtures and helpers shared by the contract
// tests, most notably the extraction of textual segments from rendered HTML
// used to check render-target equivalence.
package testsupport

import (
	"context"
	"html"
	"strings"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
)

// Context returns the context used across contract tests.
func Context() context.Context {
	return context.Background()
}

// SampleCustomer returns the customer record used by the scenario tests.
func SampleCustomer() letter.Customer {
	return letter.Customer{
		CompanyName:     "Pizzeria Roma",
		Street:          "Hauptstr. 5",
		Zip:             "50667",
		City:            "Köln",
		TerminationKind: letter.TerminationOrdentlich,
		TerminationDate: "31.12.2025",
	}
}

// SampleDisposer returns the disposer record used by the scenario tests.
func SampleDisposer() letter.Disposer {
	return letter.Disposer{
		Name:    "AWB Köln",
		Street:  "Industriestr. 1",
		Zip:     "50999",
		City:    "Köln",
		Country: letter.DefaultCountry,
	}
}

// HTMLTextSegments extracts the ordered, non-empty textual segments from a
// rendered HTML page, ignoring the head (title, styles) and all markup. Two
// render targets are content-equivalent when their segment lists match.
func HTMLTextSegments(markup string) []string {
	if idx := strings.Index(markup, "</head>"); idx >= 0 {
		markup = markup[idx+len("</head>"):]
	}

	var segments []string
	var text strings.Builder
	flush := func() {
		segment := strings.TrimSpace(html.UnescapeString(text.String()))
		text.Reset()
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	inTag := false
	for _, r := range markup {
		switch {
		case r == '<':
			flush()
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			text.WriteRune(r)
		}
	}
	flush()
	return segments
}

// NormalizeWhitespace collapses runs of whitespace so texts assembled from
// different segmentations compare equal.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
