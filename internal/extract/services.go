package extract

import "strings"

var serviceKeywords = []string{
	"service", "product", "solution", "tool", "platform",
	"feature", "offering", "plan", "package", "subscription",
	"software", "application", "api", "integration", "plugin",
}

const (
	maxServiceLines = 50
	maxServices     = 10
)

// Services scans the first lines of the aggregate text for ones that read
// like a service or product mention. A line qualifies when its trimmed form
// is at least 10 characters, its raw length sits between 16 and 199
// characters, and it contains one of the service keywords. Deduplicated,
// first-seen order, at most 10 entries.
func Services(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if len(lines) > maxServiceLines {
		lines = lines[:maxServiceLines]
	}

	seen := make(map[string]bool)
	var services []string
	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		if len(lower) < 10 {
			continue
		}
		for _, keyword := range serviceKeywords {
			if strings.Contains(lower, keyword) && len(line) > 15 && len(line) < 200 {
				trimmed := strings.TrimSpace(line)
				if !seen[trimmed] {
					seen[trimmed] = true
					services = append(services, trimmed)
				}
				break
			}
		}
	}

	if len(services) > maxServices {
		services = services[:maxServices]
	}
	return services
}
