package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/company-scout/scout/pkg/models"
)

var tierKeywords = []string{
	"starter", "basic", "pro", "premium", "enterprise", "business", "professional",
}

var (
	// $-prefixed amounts, optionally with a /month or /year suffix.
	dollarPriceRe = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?(?:/(?:month|year))?`)

	// Bare amounts with a /month|/year suffix. RE2 has no lookbehind, so the
	// not-preceded-by-a-letter condition is a captured leading character.
	suffixPriceRe = regexp.MustCompile(`(?:^|[^a-zA-Z])(\d{2,5}(?:\.\d{2})?/(?:month|year))`)

	// Standalone bare amounts; boundary conditions checked manually below.
	bareNumberRe = regexp.MustCompile(`\d{2,5}(?:\.\d{2})?`)
)

const maxPrices = 5

// Pricing scans the aggregate text for pricing signals: a free option, a
// trial, recognized tier names, and price amounts. Prices are normalized to
// a $ prefix and kept in lexicographic order, capped at 5. The sort is
// string order, not numeric ("$100" sorts before "$20"); that matches the
// persisted reports consumers already rely on.
func Pricing(text string) models.PricingInfo {
	var info models.PricingInfo
	if text == "" {
		return info
	}

	lower := strings.ToLower(text)
	info.FreeOption = strings.Contains(lower, "free")
	info.TrialAvailable = strings.Contains(lower, "trial")

	for _, tier := range tierKeywords {
		if strings.Contains(lower, tier) {
			info.Tiers = append(info.Tiers, capitalize(tier))
		}
	}

	prices := make(map[string]bool)
	for _, m := range dollarPriceRe.FindAllString(text, -1) {
		prices[m] = true
	}
	for _, m := range suffixPriceRe.FindAllStringSubmatch(text, -1) {
		prices["$"+m[1]] = true
	}
	for _, loc := range bareNumberRe.FindAllStringIndex(text, -1) {
		if standaloneNumber(text, loc[0], loc[1]) {
			prices["$"+text[loc[0]:loc[1]]] = true
		}
	}

	info.Prices = make([]string, 0, len(prices))
	for p := range prices {
		info.Prices = append(info.Prices, p)
	}
	sort.Strings(info.Prices)
	if len(info.Prices) > maxPrices {
		info.Prices = info.Prices[:maxPrices]
	}
	if len(info.Prices) == 0 {
		info.Prices = nil
	}
	return info
}

// standaloneNumber reports whether the match at [start,end) sits on word
// boundaries, is not $-prefixed, and is not followed by a digit or slash.
// This reproduces the source pattern `(?<!\$)\b\d{2,5}(?:\.\d{2})?\b(?![\d/])`
// without lookaround support.
func standaloneNumber(text string, start, end int) bool {
	if start > 0 {
		prev := text[start-1]
		if prev == '$' || isWordByte(prev) {
			return false
		}
	}
	if end < len(text) {
		next := text[end]
		if next == '/' || isWordByte(next) {
			return false
		}
	}
	return true
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
