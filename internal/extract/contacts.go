package extract

import (
	"regexp"
	"strings"

	"github.com/company-scout/scout/pkg/models"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Tolerates country codes, parentheses and -/./space separators; the
	// trailing 4-digit group keeps short numeric noise from matching.
	phoneRe = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{2,4}[-.\s]?\d{4}`)

	nonPhoneCharRe = regexp.MustCompile(`[^\d+]`)
	shortNumberRe  = regexp.MustCompile(`^\d{1,4}$`)
)

// Contacts extracts emails and phone numbers from the aggregate text.
func Contacts(text string) models.Contacts {
	return models.Contacts{
		Emails: Emails(text),
		Phones: Phones(text),
	}
}

// Emails returns the unique email addresses found in text, first-seen order.
func Emails(text string) []string {
	seen := make(map[string]bool)
	var emails []string
	for _, m := range emailRe.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			emails = append(emails, m)
		}
	}
	return emails
}

// Phones returns phone-number candidates with their original formatting,
// deduplicated by their digits-and-plus normal form. Candidates with fewer
// than 8 digits, or that reduce to a bare 1-4 digit numeral, are dropped as
// date/number noise.
func Phones(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var phones []string
	for _, m := range phoneRe.FindAllString(text, -1) {
		cleaned := nonPhoneCharRe.ReplaceAllString(m, "")
		if len(cleaned) < 8 || seen[cleaned] {
			continue
		}
		if shortNumberRe.MatchString(cleaned) {
			continue
		}
		seen[cleaned] = true
		phones = append(phones, strings.TrimSpace(m))
	}
	return phones
}
