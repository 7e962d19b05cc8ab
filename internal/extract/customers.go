package extract

import "strings"

// customerKeywords name the industries and segments a site may say it
// serves. "enterprise" appears twice upstream; the duplicate is harmless
// because output is deduplicated.
var customerKeywords = []string{
	"enterprise", "startup", "sme", "small business", "mid-market",
	"enterprise", "healthcare", "finance", "retail", "education",
	"manufacturing", "technology", "agency", "team", "business",
	"professional", "developer", "freelancer", "consultant",
}

// TargetCustomers returns the capitalized segment labels mentioned anywhere
// in the aggregate text, deduplicated in keyword order.
func TargetCustomers(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var customers []string
	for _, keyword := range customerKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		label := capitalize(keyword)
		if !seen[label] {
			seen[label] = true
			customers = append(customers, label)
		}
	}
	return customers
}
