// Package links classifies hyperlinks found on a page: same-host vs
// external, social vs not, and "priority" pages worth a follow-up visit.
package links

import (
	"net/url"
	"strings"
)

// socialDomains are the markers used to recognize social-media links.
var socialDomains = []string{
	"linkedin.com",
	"twitter.com",
	"x.com",
	"facebook.com",
	"instagram.com",
	"youtube.com",
}

// priorityKeywords mark internal URLs likely to carry company information
// (about, pricing, careers and similar).
var priorityKeywords = []string{
	"about", "company", "products", "solutions",
	"industries", "pricing", "contact", "careers",
	"innovations", "about us", "blog", "news",
	"features", "services", "why", "use cases",
	"updates", "resources", "case studies",
	"contact", "contact us", "get in touch", "support",
	"help", "faq", "integrations", "partners",
	"jobs", "job", "hiring", "work with us", "join us",
	"team", "our team", "leadership",
}

// Internal resolves each href against base and keeps those whose host
// exactly matches the base host. The result is deduplicated and kept in
// first-seen order so selection downstream is reproducible.
func Internal(base string, hrefs []string) []string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var internal []string
	for _, href := range hrefs {
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		full := baseURL.ResolveReference(ref)
		if full.Host != baseURL.Host {
			continue
		}
		s := full.String()
		if !seen[s] {
			seen[s] = true
			internal = append(internal, s)
		}
	}
	return internal
}

// IsSocial reports whether the URL points at a known social-media domain.
func IsSocial(link string) bool {
	l := strings.ToLower(link)
	for _, domain := range socialDomains {
		if strings.Contains(l, domain) {
			return true
		}
	}
	return false
}

// Priority filters links down to those whose URL mentions a priority
// keyword. Deduplicated, first-seen order; the caller applies the page
// budget.
func Priority(all []string) []string {
	seen := make(map[string]bool)
	var selected []string
	for _, link := range all {
		if seen[link] {
			continue
		}
		lower := strings.ToLower(link)
		for _, key := range priorityKeywords {
			if strings.Contains(lower, key) {
				seen[link] = true
				selected = append(selected, link)
				break
			}
		}
	}
	return selected
}
