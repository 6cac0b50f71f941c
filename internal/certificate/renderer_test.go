package certificate

import (
	"strings"
	"testing"
	"time"
)

func TestTextRendererIncludesDetails(t *testing.T) {
	issued := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	doc, err := TextRenderer{}.Render("Alice Mwangi", "Certificate: Go Basics", issued)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if doc.Name != "Certificate: Go Basics" {
		t.Errorf("doc.Name = %q", doc.Name)
	}
	for _, want := range []string{"Alice Mwangi", "Certificate: Go Basics", "15 March 2026"} {
		if !strings.Contains(doc.Body, want) {
			t.Errorf("certificate body missing %q", want)
		}
	}
}
