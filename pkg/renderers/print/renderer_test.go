package print_test

import (
	"io"
	"strings"
	"testing"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/renderers/print"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/testsupport"
)

func composeSample(signature string) render.Document {
	customer := testsupport.SampleCustomer()
	return render.Compose(customer, testsupport.SampleDisposer(), letter.DeriveContent(customer), signature)
}

func TestRenderer_ProducesPaginatedDocument(t *testing.T) {
	renderer, err := print.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), composeSample(""), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	markup := string(output)
	if !strings.Contains(markup, "@page { size: A4; margin: 20mm 25mm 20mm 25mm; }") {
		t.Fatal("document envelope lacks the A4 page rule")
	}
	if !strings.Contains(markup, "<title>Kündigung</title>") {
		t.Fatal("default title missing")
	}
	if !strings.Contains(markup, "Kündigung des Entsorgungsvertrages") {
		t.Fatal("subject line missing")
	}
	if strings.Contains(markup, "href=") || strings.Contains(markup, "src=\"http") {
		t.Fatal("print document must not reference external assets")
	}
}

func TestRenderer_EmbedsSignatureInline(t *testing.T) {
	renderer, err := print.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), composeSample("data:image/png;base64,aGFsbG8="), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(output), `src="data:image/png;base64,aGFsbG8="`) {
		t.Fatal("signature image not embedded inline")
	}
}

func TestRenderer_CustomTitle(t *testing.T) {
	renderer, err := print.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), composeSample(""), render.RenderOptions{Title: "Kündigung AWB"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(output), "<title>Kündigung AWB</title>") {
		t.Fatal("custom title not applied")
	}
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{output: "custom-output"}

	renderer, err := print.New(print.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), composeSample(""), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "custom-output" {
		t.Fatalf("unexpected output: %s", out)
	}
	if !stub.called {
		t.Fatal("expected render template to be called")
	}
}

type stubTemplateRenderer struct {
	called bool
	output string
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	s.called = true
	return s.output, nil
}

func (s *stubTemplateRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return s.output, nil
}
