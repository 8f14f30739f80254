package assistent

import (
	"context"
	"io/fs"
	"strings"
	"testing"
)

func TestNewRegistryHoldsBothTargets(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("expected registry to build: %v", err)
	}
	names := registry.List()
	if len(names) != 2 || names[0] != "preview" || names[1] != "print" {
		t.Fatalf("expected [preview print], got %v", names)
	}
}

func TestRenderProducesLetter(t *testing.T) {
	customer := Customer{LastName: "Schmidt"}
	disposer := Disposer{Name: "AWB Köln", Street: "Industriestr. 1", City: "Köln", Country: "Deutschland"}

	output, err := Render(context.Background(), "print", customer, disposer, "", RenderOptions{})
	if err != nil {
		t.Fatalf("expected render to succeed: %v", err)
	}
	if !strings.Contains(string(output), "Kündigung des Entsorgungsvertrages") {
		t.Fatalf("expected letter subject in output")
	}
}

func TestRenderUnknownTarget(t *testing.T) {
	_, err := Render(context.Background(), "pdf", Customer{LastName: "Schmidt"}, Disposer{}, "", RenderOptions{})
	if err == nil {
		t.Fatalf("expected error for unknown target")
	}
}

func TestTemplateBundlesReadable(t *testing.T) {
	if _, err := fs.ReadFile(PreviewTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("expected preview template to be readable: %v", err)
	}
	if _, err := fs.ReadFile(PrintTemplates(), "templates/document.tmpl"); err != nil {
		t.Fatalf("expected print template to be readable: %v", err)
	}
}
