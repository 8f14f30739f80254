package print_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/renderers/preview"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/renderers/print"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/testsupport"
)

// Both render targets must emit the same textual content and take the same
// conditional branches for any domain snapshot; only layout may differ.
func TestRenderTargetEquivalence(t *testing.T) {
	withNumbers := testsupport.SampleCustomer()
	withNumbers.CustomerNumber = "KD-123456"
	withNumbers.ContractNumber = "VT-789012"
	withNumbers.Email = "info@roma.de"
	withNumbers.Phone = "+49 221 12345"

	immediate := testsupport.SampleCustomer()
	immediate.SelectTerminationKind(letter.TerminationFristlos)

	foreign := testsupport.SampleDisposer()
	foreign.Country = "Schweiz"

	cases := []struct {
		name      string
		customer  letter.Customer
		disposer  letter.Disposer
		signature string
	}{
		{"base scenario", testsupport.SampleCustomer(), testsupport.SampleDisposer(), ""},
		{"all optional fields", withNumbers, testsupport.SampleDisposer(), "data:image/png;base64,aGFsbG8="},
		{"immediate termination", immediate, testsupport.SampleDisposer(), ""},
		{"foreign disposer", testsupport.SampleCustomer(), foreign, ""},
		{"empty customer", letter.Customer{}, testsupport.SampleDisposer(), ""},
	}

	previewRenderer, err := preview.New()
	if err != nil {
		t.Fatalf("new preview renderer: %v", err)
	}
	printRenderer, err := print.New()
	if err != nil {
		t.Fatalf("new print renderer: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := render.Compose(tc.customer, tc.disposer, letter.DeriveContent(tc.customer), tc.signature)

			previewOut, err := previewRenderer.Render(testsupport.Context(), doc, render.RenderOptions{})
			if err != nil {
				t.Fatalf("preview render: %v", err)
			}
			printOut, err := printRenderer.Render(testsupport.Context(), doc, render.RenderOptions{})
			if err != nil {
				t.Fatalf("print render: %v", err)
			}

			previewSegments := testsupport.HTMLTextSegments(string(previewOut))
			printSegments := testsupport.HTMLTextSegments(string(printOut))
			if diff := cmp.Diff(previewSegments, printSegments); diff != "" {
				t.Fatalf("targets diverged (-preview +print):\n%s", diff)
			}

			// The rendered text must also match the assembled document, so
			// neither target can invent or drop content.
			wantText := testsupport.NormalizeWhitespace(strings.Join(doc.TextSegments(), " "))
			gotText := testsupport.NormalizeWhitespace(strings.Join(printSegments, " "))
			if gotText != wantText {
				t.Fatalf("rendered text mismatch:\nwant: %s\ngot:  %s", wantText, gotText)
			}
		})
	}
}
