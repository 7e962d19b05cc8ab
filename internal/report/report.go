// Package report persists crawl results as JSON artifacts and renders the
// human-readable summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/company-scout/scout/internal/ui"
	"github.com/company-scout/scout/pkg/models"
)

// Save writes the result as pretty-printed JSON into dir, creating the
// directory when needed. The filename is the sanitized company name plus a
// timestamp, so repeated runs never clobber each other. Returns the full
// path of the written file.
func Save(result *models.CrawlResult, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	name := "unknown"
	if result.Identity != nil && result.Identity.CompanyName != "" {
		name = SanitizeName(result.Identity.CompanyName)
	}
	filename := fmt.Sprintf("%s_%s.json", name, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// SanitizeName lowercases a company name and replaces spaces and slashes
// with underscores so it is safe in a filename.
func SanitizeName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}

// Load reads a persisted report back from disk.
func Load(path string) (*models.CrawlResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var result models.CrawlResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return &result, nil
}

// RunInfo describes one persisted report file.
type RunInfo struct {
	Path    string
	Name    string
	ModTime time.Time
	Size    int64
}

// ListRuns returns the report files in dir, newest first. A missing
// directory yields an empty list, not an error.
func ListRuns(dir string) ([]RunInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read output dir: %w", err)
	}

	var runs []RunInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		runs = append(runs, RunInfo{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].ModTime.After(runs[j].ModTime)
	})
	return runs, nil
}

// PrintSummary writes the formatted crawl summary to w.
func PrintSummary(w io.Writer, result *models.CrawlResult) {
	divider := ui.Dim(strings.Repeat("=", 60))

	if result.Identity == nil {
		fmt.Fprintf(w, "\n%s\n", divider)
		fmt.Fprintf(w, "%s\n", ui.Error("Crawl failed"))
		for _, e := range result.Metadata.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
		fmt.Fprintf(w, "%s\n", divider)
		return
	}

	fmt.Fprintf(w, "\n%s\n", divider)
	fmt.Fprintf(w, "%s %s\n", ui.Bold("Company:"), result.Identity.CompanyName)
	fmt.Fprintf(w, "%s %s\n", ui.Bold("Website:"), result.Identity.Website)
	fmt.Fprintf(w, "%s %s\n", ui.Bold("Tagline:"), result.Identity.Tagline)
	fmt.Fprintf(w, "%s\n", divider)

	if result.Description != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", ui.Bold("What They Do:"), result.Description)
	}

	if bi := result.BusinessInfo; bi != nil {
		fmt.Fprintf(w, "\n%s\n", ui.Bold("Business Information:"))
		if len(bi.Services) > 0 {
			max := len(bi.Services)
			if max > 5 {
				max = 5
			}
			fmt.Fprintf(w, "  Services/Products: %s\n", strings.Join(bi.Services[:max], ", "))
		}
		if len(bi.TargetCustomers) > 0 {
			fmt.Fprintf(w, "  Target Customers: %s\n", strings.Join(bi.TargetCustomers, ", "))
		}
		if !bi.Pricing.Empty() {
			fmt.Fprintf(w, "\n%s\n", ui.Bold("Pricing Details:"))
			fmt.Fprintf(w, "  Tiers: %s\n", orNA(strings.Join(bi.Pricing.Tiers, ", ")))
			fmt.Fprintf(w, "  Prices: %s\n", orNA(strings.Join(bi.Pricing.Prices, ", ")))
			fmt.Fprintf(w, "  Free Option: %s\n", yesNo(bi.Pricing.FreeOption))
			fmt.Fprintf(w, "  Trial Available: %s\n", yesNo(bi.Pricing.TrialAvailable))
		}
	}

	if c := result.Contacts; c != nil {
		fmt.Fprintf(w, "\n%s\n", ui.Bold("Contacts:"))
		fmt.Fprintf(w, "  Emails: %s\n", orNA(strings.Join(c.Emails, ", ")))
		fmt.Fprintf(w, "  Phones: %s\n", orNA(strings.Join(c.Phones, ", ")))
	}

	if len(result.SocialLinks) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.Bold("Social Links:"))
		// Stable output order.
		platforms := make([]string, 0, len(result.SocialLinks))
		for platform := range result.SocialLinks {
			platforms = append(platforms, platform)
		}
		sort.Strings(platforms)
		for _, platform := range platforms {
			fmt.Fprintf(w, "  %s: %s\n", strings.ToUpper(platform), result.SocialLinks[platform])
		}
	}

	if kp := result.KeyPages; kp != nil {
		fmt.Fprintf(w, "\n%s %d\n", ui.Bold("Pages Visited:"), len(kp.Visited))
		for i, page := range kp.Visited {
			fmt.Fprintf(w, "  %d. %s\n", i+1, page)
		}
	}
	fmt.Fprintf(w, "%s\n", divider)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
