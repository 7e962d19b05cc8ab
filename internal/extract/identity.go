package extract

import (
	"net/url"
	"strings"

	"github.com/company-scout/scout/internal/page"
	"github.com/company-scout/scout/pkg/models"
)

// Identity derives the company name, website and tagline from the homepage.
//
// The name usually sits after the last " | " or " - " in the title
// ("Pricing | Acme", "Home - Acme"). When the title has no such separator
// the whole title is used, and when there is no title at all the first
// label of the host (minus "www.") is capitalized as a fallback.
func Identity(p *page.Page, rawURL string) models.Identity {
	name := domainFallback(rawURL)

	title := p.Title()
	if title != "" {
		name = nameFromTitle(title)
		if name == "" {
			name = domainFallback(rawURL)
		}
	}

	return models.Identity{
		CompanyName: name,
		Website:     rawURL,
		Tagline:     p.FirstH1(),
	}
}

func nameFromTitle(title string) string {
	// Pipe-separated titles take priority over hyphen-separated ones.
	collapsed := strings.ReplaceAll(title, " | ", "|")
	collapsed = strings.ReplaceAll(collapsed, " - ", "-")
	if parts := strings.Split(collapsed, "|"); len(parts) > 1 {
		return strings.TrimSpace(parts[len(parts)-1])
	}
	if parts := strings.Split(title, "-"); len(parts) > 1 {
		return strings.TrimSpace(parts[len(parts)-1])
	}
	return strings.TrimSpace(title)
}

func domainFallback(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ReplaceAll(u.Host, "www.", "")
	label := strings.SplitN(host, ".", 2)[0]
	return capitalize(label)
}
