package report

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/company-scout/scout/pkg/models"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Acme Corp", "acme_corp"},
		{"A/B Testing Inc", "a_b_testing_inc"},
		{"lowercase", "lowercase"},
		{"Multi Word Company Name", "multi_word_company_name"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	result := &models.CrawlResult{
		Metadata: models.Metadata{
			Timestamp:    "2026-08-27T12:00:00Z",
			PagesCrawled: 2,
			Errors:       []string{},
		},
		Identity: &models.Identity{
			CompanyName: "Acme Corp",
			Website:     "https://example.com",
		},
		Description: "Acme builds widgets",
	}

	path, err := Save(result, dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	base := filepath.Base(path)
	if ok, _ := regexp.MatchString(`^acme_corp_\d{8}_\d{6}\.json$`, base); !ok {
		t.Errorf("filename = %q, want acme_corp_<timestamp>.json", base)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Identity == nil || loaded.Identity.CompanyName != "Acme Corp" {
		t.Errorf("loaded identity = %+v", loaded.Identity)
	}
	if loaded.Metadata.PagesCrawled != 2 {
		t.Errorf("loaded pages_crawled = %d, want 2", loaded.Metadata.PagesCrawled)
	}
	if loaded.Description != result.Description {
		t.Errorf("loaded description = %q", loaded.Description)
	}
}

func TestSave_CreatesDirAndFallsBackToUnknown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	result := &models.CrawlResult{
		Metadata: models.Metadata{Errors: []string{"navigation failed"}},
	}

	path, err := Save(result, dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "unknown_") {
		t.Errorf("filename = %q, want unknown_ prefix for failed run", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("report file not written: %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load of a missing file returned nil error")
	}
}

func TestListRuns(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, mod time.Time) {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatal(err)
		}
	}
	now := time.Now()
	write("older_run.json", now.Add(-2*time.Hour))
	write("newer_run.json", now.Add(-1*time.Hour))
	write("notes.txt", now)
	if err := os.Mkdir(filepath.Join(dir, "pages"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err := ListRuns(dir)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns = %d entries, want 2 (json files only)", len(runs))
	}
	if runs[0].Name != "newer_run.json" || runs[1].Name != "older_run.json" {
		t.Errorf("ListRuns order = [%s, %s], want newest first", runs[0].Name, runs[1].Name)
	}
}

func TestListRuns_MissingDir(t *testing.T) {
	runs, err := ListRuns(filepath.Join(t.TempDir(), "never-created"))
	if err != nil {
		t.Fatalf("ListRuns on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("ListRuns = %v, want empty", runs)
	}
}

func TestPrintSummary(t *testing.T) {
	result := &models.CrawlResult{
		Metadata: models.Metadata{PagesCrawled: 2, Errors: []string{}},
		Identity: &models.Identity{
			CompanyName: "Acme Corp",
			Website:     "https://example.com",
			Tagline:     "We make widgets",
		},
		Description: "Acme builds widgets",
		BusinessInfo: &models.BusinessInfo{
			Services: []string{"Widget platform"},
			Pricing: models.PricingInfo{
				Tiers:          []string{"Pro"},
				Prices:         []string{"$49/month"},
				TrialAvailable: true,
			},
			TargetCustomers: []string{"Enterprise"},
		},
		Contacts:    &models.Contacts{Emails: []string{"hello@acme.com"}},
		SocialLinks: map[string]string{"twitter": "https://twitter.com/acme"},
		KeyPages:    &models.KeyPages{Visited: []string{"https://example.com/about"}},
	}

	var sb strings.Builder
	PrintSummary(&sb, result)
	out := sb.String()

	for _, want := range []string{
		"Acme Corp",
		"https://example.com",
		"We make widgets",
		"Acme builds widgets",
		"Widget platform",
		"Enterprise",
		"$49/month",
		"Free Option: No",
		"Trial Available: Yes",
		"hello@acme.com",
		"TWITTER: https://twitter.com/acme",
		"Phones: N/A",
		"1. https://example.com/about",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSummary_FailedRun(t *testing.T) {
	result := &models.CrawlResult{
		Metadata: models.Metadata{Errors: []string{"navigation failed"}},
	}
	var sb strings.Builder
	PrintSummary(&sb, result)
	out := sb.String()

	if !strings.Contains(out, "Crawl failed") {
		t.Errorf("summary missing failure banner:\n%s", out)
	}
	if !strings.Contains(out, "navigation failed") {
		t.Errorf("summary missing the error detail:\n%s", out)
	}
}
