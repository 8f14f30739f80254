package render_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render"
)

func sampleCustomer() letter.Customer {
	return letter.Customer{
		CompanyName:     "Pizzeria Roma",
		Street:          "Hauptstr. 5",
		Zip:             "50667",
		City:            "Köln",
		TerminationKind: letter.TerminationOrdentlich,
		TerminationDate: "31.12.2025",
	}
}

func sampleDisposer() letter.Disposer {
	return letter.Disposer{
		Name:    "AWB Köln",
		Street:  "Industriestr. 1",
		Zip:     "50999",
		City:    "Köln",
		Country: letter.DefaultCountry,
	}
}

func sampleContent() letter.Content {
	return letter.Content{
		Today:      "02.09.2025",
		SenderName: "Pizzeria Roma",
		DateClause: "zum 31.12.2025",
		KindLabel:  "ordentliche Kündigung",
	}
}

func TestCompose_BaseScenario(t *testing.T) {
	doc := render.Compose(sampleCustomer(), sampleDisposer(), sampleContent(), "")

	if doc.SenderLine != "Pizzeria Roma · Hauptstr. 5 · 50667 Köln" {
		t.Fatalf("sender line: %q", doc.SenderLine)
	}
	if doc.DateLine != "Köln, den 02.09.2025" {
		t.Fatalf("date line: %q", doc.DateLine)
	}
	if doc.Subject != "Kündigung des Entsorgungsvertrages" {
		t.Fatalf("subject: %q", doc.Subject)
	}

	// Default country never renders; number lines are absent when empty.
	wantRecipient := []string{"Industriestr. 1", "50999 Köln"}
	if diff := cmp.Diff(wantRecipient, doc.RecipientLines); diff != "" {
		t.Fatalf("recipient lines (-want +got):\n%s", diff)
	}
	if doc.CustomerNumberLine != "" || doc.ContractNumberLine != "" {
		t.Fatalf("number lines should be empty: %q / %q", doc.CustomerNumberLine, doc.ContractNumberLine)
	}

	declaration := doc.Paragraphs[1].Text()
	if declaration != "hiermit erkläre ich die ordentliche Kündigung meines mit Ihnen bestehenden Entsorgungsvertrages zum 31.12.2025." {
		t.Fatalf("declaration paragraph: %q", declaration)
	}
}

func TestCompose_ForeignCountryRendersCountryLine(t *testing.T) {
	disposer := sampleDisposer()
	disposer.Country = "Österreich"

	doc := render.Compose(sampleCustomer(), disposer, sampleContent(), "")
	last := doc.RecipientLines[len(doc.RecipientLines)-1]
	if last != "Österreich" {
		t.Fatalf("expected country line, got %q", last)
	}
}

func TestCompose_ContractNumberAppearsTwice(t *testing.T) {
	customer := sampleCustomer()
	customer.ContractNumber = "VT-789012"

	doc := render.Compose(customer, sampleDisposer(), sampleContent(), "")
	if doc.ContractNumberLine != "Vertragsnummer: VT-789012" {
		t.Fatalf("contract line: %q", doc.ContractNumberLine)
	}
	declaration := doc.Paragraphs[1].Text()
	if !strings.Contains(declaration, "(Vertragsnummer: VT-789012)") {
		t.Fatalf("declaration lacks contract parenthetical: %q", declaration)
	}
}

func TestCompose_ContactParagraphIsConditional(t *testing.T) {
	withoutContact := render.Compose(sampleCustomer(), sampleDisposer(), sampleContent(), "")

	content := sampleContent()
	content.ContactLine = "info@roma.de oder +49 221 12345"
	withContact := render.Compose(sampleCustomer(), sampleDisposer(), content, "")

	if len(withContact.Paragraphs) != len(withoutContact.Paragraphs)+1 {
		t.Fatalf("contact paragraph not conditional: %d vs %d", len(withContact.Paragraphs), len(withoutContact.Paragraphs))
	}
	contact := withContact.Paragraphs[4].Text()
	if contact != "Für Rückfragen stehe ich Ihnen gerne unter info@roma.de oder +49 221 12345 zur Verfügung." {
		t.Fatalf("contact paragraph: %q", contact)
	}
}

func TestCompose_EmptySenderStillAssembles(t *testing.T) {
	doc := render.Compose(letter.Customer{}, letter.NewDisposer(), letter.Content{Today: "02.09.2025", KindLabel: "Kündigung", DateClause: "zum nächstmöglichen Termin unter Einhaltung der vertraglichen Kündigungsfrist"}, "")
	if len(doc.TextSegments()) == 0 {
		t.Fatal("expected segments even for an empty customer")
	}
}

func TestTextSegments_SkipsEmptyAndKeepsOrder(t *testing.T) {
	doc := render.Compose(sampleCustomer(), sampleDisposer(), sampleContent(), "")
	segments := doc.TextSegments()

	for i, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			t.Fatalf("segment %d is empty", i)
		}
	}
	if segments[0] != doc.SenderLine {
		t.Fatalf("first segment %q, want sender line", segments[0])
	}
	if segments[len(segments)-1] != "50667 Köln" {
		t.Fatalf("last segment %q, want repeated sender address", segments[len(segments)-1])
	}
}

func TestBodyHTML_EscapesAndEmbedsSignature(t *testing.T) {
	customer := sampleCustomer()
	customer.CompanyName = "Schmidt & Söhne"
	content := sampleContent()
	content.SenderName = "Schmidt & Söhne"

	doc := render.Compose(customer, sampleDisposer(), content, "data:image/png;base64,aGFsbG8=")
	body := render.BodyHTML(doc)

	if !strings.Contains(body, "Schmidt &amp; Söhne") {
		t.Fatal("ampersand not escaped in body")
	}
	if !strings.Contains(body, `<img src="data:image/png;base64,aGFsbG8=" alt="Unterschrift">`) {
		t.Fatal("signature image missing")
	}
	if strings.Contains(body, `class="sl2"`) {
		t.Fatal("blank signature rule must not render when an image is present")
	}

	doc = render.Compose(customer, sampleDisposer(), content, "")
	body = render.BodyHTML(doc)
	if !strings.Contains(body, `<div class="sl2"></div>`) {
		t.Fatal("blank signature rule missing when no image is present")
	}
}
