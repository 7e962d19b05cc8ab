// Package crawler drives a single crawl run: fetch the homepage, pick
// priority pages, aggregate their visible text, and run the field
// extractors over the aggregate.
package crawler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/company-scout/scout/internal/extract"
	"github.com/company-scout/scout/internal/fetch"
	"github.com/company-scout/scout/internal/links"
	"github.com/company-scout/scout/internal/page"
	"github.com/company-scout/scout/internal/ratelimit"
	"github.com/company-scout/scout/pkg/models"
)

// DefaultMaxPages caps how many priority pages one run may fetch.
const DefaultMaxPages = 8

const previewLen = 500

// state tracks where the run is in its fetch/extract sequence. Used for
// log context only; transitions are linear.
type state string

const (
	stateFetchHome     state = "fetch_home"
	stateSelectPages   state = "select_pages"
	stateFetchPriority state = "fetch_priority"
	stateExtractFields state = "extract_fields"
)

// Options configures a Crawler.
type Options struct {
	// MaxPages bounds priority-page fetch attempts. A failed fetch still
	// consumes an attempt. Defaults to DefaultMaxPages.
	MaxPages int
	// Limiter, when set, is consulted before every navigation.
	Limiter ratelimit.Limiter
	// OnPage, when set, is called after each priority-page fetch attempt
	// completes, success or failure, with the 1-based attempt index and the
	// total number of selected pages.
	OnPage func(url string, index, total int)
	// KeepHTML retains the raw source of fetched pages for later export.
	KeepHTML bool
}

// Crawler runs the crawl sequence against an injected transport. The
// transport is owned by the crawler and closed when Run returns.
type Crawler struct {
	fetcher  fetch.Fetcher
	opts     Options
	pageHTML map[string]string
}

// New creates a Crawler around the given transport.
func New(fetcher fetch.Fetcher, opts Options) *Crawler {
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	return &Crawler{
		fetcher:  fetcher,
		opts:     opts,
		pageHTML: make(map[string]string),
	}
}

// PageHTML returns the raw source of each fetched page, keyed by URL.
// Populated only when Options.KeepHTML is set.
func (c *Crawler) PageHTML() map[string]string {
	return c.pageHTML
}

// Run crawls the site at rawURL and returns the assembled report. A
// homepage failure yields a report with only metadata populated; priority
// page failures are skipped without being recorded as errors. Run never
// returns a nil result.
func (c *Crawler) Run(ctx context.Context, rawURL string) *models.CrawlResult {
	defer c.fetcher.Close()

	result := &models.CrawlResult{
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Errors:    []string{},
		},
	}

	log.Debug().Str("url", rawURL).Str("state", string(stateFetchHome)).Msg("Fetching homepage")
	html, err := c.fetchPage(ctx, rawURL)
	if err != nil {
		log.Warn().Err(err).Str("url", rawURL).Msg("Homepage fetch failed")
		result.Metadata.Errors = append(result.Metadata.Errors, err.Error())
		return result
	}

	home, err := page.Parse(html)
	if err != nil {
		log.Warn().Err(err).Str("url", rawURL).Msg("Homepage parse failed")
		result.Metadata.Errors = append(result.Metadata.Errors, err.Error())
		return result
	}
	if c.opts.KeepHTML {
		c.pageHTML[rawURL] = html
	}

	identity := extract.Identity(home, rawURL)
	result.Identity = &identity

	allText := home.VisibleText()

	log.Debug().Str("state", string(stateSelectPages)).Msg("Selecting priority pages")
	internal := links.Internal(rawURL, home.Links())
	priority := links.Priority(internal)
	if len(priority) > c.opts.MaxPages {
		priority = priority[:c.opts.MaxPages]
	}
	log.Debug().
		Int("internal_links", len(internal)).
		Int("priority_pages", len(priority)).
		Msg("Priority pages selected")

	visited := []string{}
	details := make(map[string]models.PageDetail)
	socialSeen := make(map[string]bool)
	var socialCandidates []string

	visit := func(pageURL string) {
		log.Debug().Str("url", pageURL).Str("state", string(stateFetchPriority)).Msg("Fetching priority page")

		pageSource, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			// Non-fatal: the page is skipped and the attempt is spent.
			log.Warn().Err(err).Str("url", pageURL).Msg("Priority page fetch failed, skipping")
			return
		}
		p, err := page.Parse(pageSource)
		if err != nil {
			log.Warn().Err(err).Str("url", pageURL).Msg("Priority page parse failed, skipping")
			return
		}

		pageText := p.VisibleText()
		allText += " " + pageText
		visited = append(visited, pageURL)
		details[pageURL] = models.PageDetail{
			TextPreview: truncate(pageText, previewLen),
			Title:       p.Title(),
			Headings:    p.Headings(5),
		}
		if c.opts.KeepHTML {
			c.pageHTML[pageURL] = pageSource
		}

		for _, href := range p.Links() {
			if links.IsSocial(href) && !socialSeen[href] {
				socialSeen[href] = true
				socialCandidates = append(socialCandidates, href)
			}
		}
	}

	for i, pageURL := range priority {
		visit(pageURL)
		if c.opts.OnPage != nil {
			c.opts.OnPage(pageURL, i+1, len(priority))
		}
	}

	log.Debug().Str("state", string(stateExtractFields)).Msg("Running field extractors")
	contacts := extract.Contacts(allText)
	result.Contacts = &contacts
	result.SocialLinks = extract.SocialLinks(socialCandidates)
	result.Description = extract.Description(allText)
	result.BusinessInfo = &models.BusinessInfo{
		Services:        extract.Services(allText),
		Pricing:         extract.Pricing(allText),
		TargetCustomers: extract.TargetCustomers(allText),
	}
	result.KeyPages = &models.KeyPages{
		Visited:     visited,
		PageDetails: details,
	}
	result.Metadata.PagesCrawled = 1 + len(visited)

	log.Info().
		Str("company", identity.CompanyName).
		Int("pages_crawled", result.Metadata.PagesCrawled).
		Msg("Crawl complete")
	return result
}

func (c *Crawler) fetchPage(ctx context.Context, url string) (string, error) {
	if c.opts.Limiter != nil {
		if err := c.opts.Limiter.Wait(ctx, url); err != nil {
			return "", err
		}
	}
	return c.fetcher.Fetch(ctx, url)
}

// truncate cuts s to at most n runes, never splitting a multi-byte rune.
func truncate(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n])
	}
	return s
}
