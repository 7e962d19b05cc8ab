package extract

import (
	"testing"

	"github.com/company-scout/scout/internal/page"
)

func mustParse(t *testing.T, html string) *page.Page {
	t.Helper()
	p, err := page.Parse(html)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return p
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		url      string
		wantName string
		wantTag  string
	}{
		{
			name:     "pipe separated title",
			html:     `<html><head><title>Pricing | Acme Corp</title></head><body><h1>Ship faster</h1></body></html>`,
			url:      "https://www.acme.com",
			wantName: "Acme Corp",
			wantTag:  "Ship faster",
		},
		{
			name:     "hyphen separated title",
			html:     `<html><head><title>Home - Widget Co</title></head><body></body></html>`,
			url:      "https://widget.co",
			wantName: "Widget Co",
			wantTag:  "",
		},
		{
			name:     "pipe wins over hyphen",
			html:     `<html><head><title>About - Us | Acme</title></head><body></body></html>`,
			url:      "https://acme.com",
			wantName: "Acme",
		},
		{
			name:     "single segment title",
			html:     `<html><head><title>Acme</title></head><body></body></html>`,
			url:      "https://acme.com",
			wantName: "Acme",
		},
		{
			name:     "no title falls back to domain",
			html:     `<html><body><p>hi</p></body></html>`,
			url:      "https://www.techcorp.io/home",
			wantName: "Techcorp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Identity(mustParse(t, tt.html), tt.url)
			if got.CompanyName != tt.wantName {
				t.Errorf("CompanyName = %q, want %q", got.CompanyName, tt.wantName)
			}
			if got.Website != tt.url {
				t.Errorf("Website = %q, want input URL %q", got.Website, tt.url)
			}
			if tt.wantTag != "" && got.Tagline != tt.wantTag {
				t.Errorf("Tagline = %q, want %q", got.Tagline, tt.wantTag)
			}
		})
	}
}

func TestIdentity_NeverEmpty(t *testing.T) {
	got := Identity(mustParse(t, `<html><body></body></html>`), "https://acme.com")
	if got.CompanyName == "" {
		t.Fatal("CompanyName is empty")
	}
}
