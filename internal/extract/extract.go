// Package extract holds the heuristic field extractors. Each extractor is
// stateless, operates on the aggregated page text (or the parsed homepage
// for identity), and degrades to an empty value on missing input instead of
// returning an error.
package extract

import "strings"

// capitalize upper-cases the first rune and lower-cases the rest, matching
// how tier and customer labels are normalized.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
