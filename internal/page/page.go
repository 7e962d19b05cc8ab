// Package page wraps goquery behind the small document surface the crawler
// needs: visible text, title, tagline, anchors, and headings.
package page

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanText collapses all whitespace runs (including newlines) into single
// spaces and trims the result. Empty input yields an empty string.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Page is a parsed HTML document handle.
type Page struct {
	doc *goquery.Document
}

// Parse builds a Page from raw HTML.
func Parse(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &Page{doc: doc}, nil
}

// VisibleText returns the page's human-visible text with script, style and
// noscript content removed and whitespace collapsed.
func (p *Page) VisibleText() string {
	// Clone before removing nodes so repeated queries on the page still work.
	sel := p.doc.Selection.Clone()
	sel.Find("script, style, noscript").Remove()
	return CleanText(sel.Text())
}

// Title returns the document title, trimmed. Empty when absent.
func (p *Page) Title() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// FirstH1 returns the trimmed text of the first h1 element, or "".
func (p *Page) FirstH1() string {
	return strings.TrimSpace(p.doc.Find("h1").First().Text())
}

// Links returns the raw href values of all anchors, in document order.
// Empty hrefs are skipped; no resolution or deduplication happens here.
func (p *Page) Links() []string {
	var links []string
	p.doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		if href, exists := sel.Attr("href"); exists && href != "" {
			links = append(links, href)
		}
	})
	return links
}

// Headings returns up to max trimmed h1/h2/h3 texts in document order.
func (p *Page) Headings(max int) []string {
	var headings []string
	p.doc.Find("h1, h2, h3").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(headings) >= max {
			return false
		}
		headings = append(headings, strings.TrimSpace(sel.Text()))
		return true
	})
	return headings
}
