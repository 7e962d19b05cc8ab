package extract

import (
	"strings"

	"github.com/company-scout/scout/internal/page"
)

const maxDescriptionLen = 500

// Description builds a short what-they-do blurb from the first five
// sentence-like segments of the aggregate text, capped at 500 characters.
func Description(text string) string {
	if text == "" {
		return ""
	}

	segments := strings.SplitN(text, ".", 6)
	if len(segments) > 5 {
		segments = segments[:5]
	}

	desc := page.CleanText(strings.Join(segments, ". "))
	if runes := []rune(desc); len(runes) > maxDescriptionLen {
		// Cut on a rune boundary so non-ASCII text stays valid UTF-8.
		desc = string(runes[:maxDescriptionLen]) + "..."
	}
	return desc
}
