package report

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// SavePages converts each fetched page's HTML to Markdown and writes the
// files into a "pages" subdirectory of dir. Keys of pages are page URLs;
// filenames are derived from the URL path. Conversion failures skip the
// page and are reported together.
func SavePages(pages map[string]string, dir string) error {
	if len(pages) == 0 {
		return nil
	}
	pagesDir := filepath.Join(dir, "pages")
	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		return fmt.Errorf("failed to create pages dir: %w", err)
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	var failed []string
	for pageURL, source := range pages {
		cleaned, err := cleanHTML(source)
		if err != nil {
			failed = append(failed, pageURL)
			continue
		}
		mdStr, err := converter.ConvertString(cleaned)
		if err != nil {
			failed = append(failed, pageURL)
			continue
		}
		path := filepath.Join(pagesDir, pageFilename(pageURL))
		if err := os.WriteFile(path, []byte(mdStr), 0644); err != nil {
			failed = append(failed, pageURL)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to export %d page(s): %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

// cleanHTML strips non-content elements and attributes so the Markdown
// conversion stays readable.
func cleanHTML(source string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, link, meta, noscript, iframe, svg, form, input, button, select, textarea, canvas").Remove()

	doc.Find("*").Each(func(i int, s *goquery.Selection) {
		if len(s.Nodes) == 0 {
			return
		}
		node := s.Nodes[0]
		var kept []html.Attribute
		for _, attr := range node.Attr {
			switch node.Data {
			case "a":
				if attr.Key == "href" || attr.Key == "title" {
					kept = append(kept, attr)
				}
			case "img":
				if attr.Key == "src" || attr.Key == "alt" || attr.Key == "title" {
					kept = append(kept, attr)
				}
			}
		}
		node.Attr = kept
	})

	htmlStr, err := doc.Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(htmlStr), nil
}

// pageFilename derives a filesystem-safe markdown filename from a page URL.
func pageFilename(pageURL string) string {
	name := "index"
	if u, err := url.Parse(pageURL); err == nil {
		trimmed := strings.Trim(u.Path, "/")
		if trimmed != "" {
			name = trimmed
		}
	}
	name = strings.ReplaceAll(name, "/", "_")
	return SanitizeName(name) + ".md"
}
