package preview_test

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/renderers/preview"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/testsupport"
)

func composeSample() render.Document {
	customer := testsupport.SampleCustomer()
	return render.Compose(customer, testsupport.SampleDisposer(), letter.DeriveContent(customer), "")
}

func TestRenderer_ProducesScreenPage(t *testing.T) {
	renderer, err := preview.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), composeSample(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	markup := string(output)
	if !strings.Contains(markup, `width: 210mm`) || !strings.Contains(markup, `min-height: 297mm`) {
		t.Fatal("preview page lacks nominal A4 dimensions")
	}
	if !strings.Contains(markup, `<div class="page">`) {
		t.Fatal("page container missing")
	}
	if !strings.Contains(markup, "Pizzeria Roma · Hauptstr. 5 · 50667 Köln") {
		t.Fatal("sender line missing")
	}
	if strings.Contains(markup, "@page") {
		t.Fatal("screen preview must not carry the print pagination rule")
	}
}

func TestRenderer_AppliesThemeVariables(t *testing.T) {
	renderer, err := preview.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	options := render.RenderOptions{
		Theme: &theme.RendererConfig{
			Tokens:  map[string]string{"backdrop": "#101418"},
			CSSVars: map[string]string{"--accent": "#22c55e"},
		},
	}
	output, err := renderer.Render(testsupport.Context(), composeSample(), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	markup := string(output)
	if !strings.Contains(markup, "--accent: #22c55e;") {
		t.Fatal("css var from theme config missing")
	}
	if !strings.Contains(markup, "--backdrop: #101418;") {
		t.Fatal("token not flattened into css var")
	}
}

func TestRenderer_NoThemeEmitsNoVarBlock(t *testing.T) {
	renderer, err := preview.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), composeSample(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(output), ":root {") {
		t.Fatal("empty theme must not emit a :root block")
	}
}
