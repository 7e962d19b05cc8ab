// Package models defines the report structures shared between the crawler
// core and its consumers. The JSON field names are the interchange contract
// for persisted reports, so they must stay stable.
package models

// CrawlResult is the root report produced by one crawl run. It is built in a
// single pass by the orchestrator and never mutated afterwards. When the
// homepage cannot be fetched, only Metadata is populated and every other
// section stays nil.
type CrawlResult struct {
	Metadata     Metadata          `json:"metadata"`
	Identity     *Identity         `json:"identity,omitempty"`
	Description  string            `json:"description,omitempty"`
	BusinessInfo *BusinessInfo     `json:"business_info,omitempty"`
	Contacts     *Contacts         `json:"contacts,omitempty"`
	SocialLinks  map[string]string `json:"social_links,omitempty"`
	KeyPages     *KeyPages         `json:"key_pages,omitempty"`
}

// Metadata records when the crawl ran and how it went.
type Metadata struct {
	// Timestamp is the capture instant in RFC 3339 UTC.
	Timestamp    string   `json:"timestamp"`
	PagesCrawled int      `json:"pages_crawled"`
	Errors       []string `json:"errors"`
}

// Identity holds the company's derived name, the input URL echoed verbatim,
// and the homepage tagline (first h1), which may be empty.
type Identity struct {
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Tagline     string `json:"tagline"`
}

// BusinessInfo aggregates what the company sells and to whom.
type BusinessInfo struct {
	Services        []string    `json:"services"`
	Pricing         PricingInfo `json:"pricing"`
	TargetCustomers []string    `json:"target_customers"`
}

// PricingInfo describes pricing signals found in the aggregate text.
// An all-zero value means "no pricing signal found"; callers must treat it
// the same as an absent object.
type PricingInfo struct {
	Tiers          []string `json:"tiers"`
	Prices         []string `json:"prices"`
	TrialAvailable bool     `json:"trial_available"`
	FreeOption     bool     `json:"free_option"`
}

// Empty reports whether no pricing signal of any kind was found.
func (p PricingInfo) Empty() bool {
	return len(p.Tiers) == 0 && len(p.Prices) == 0 && !p.TrialAvailable && !p.FreeOption
}

// Contacts holds deduplicated contact details extracted from the aggregate
// text. Order carries no meaning.
type Contacts struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// KeyPages records which priority pages were actually fetched, in visit
// order, along with a small per-page digest.
type KeyPages struct {
	Visited     []string              `json:"visited"`
	PageDetails map[string]PageDetail `json:"page_details"`
}

// PageDetail is the digest kept for each visited priority page.
type PageDetail struct {
	TextPreview string   `json:"text_preview"`
	Title       string   `json:"title"`
	Headings    []string `json:"headings"`
}
