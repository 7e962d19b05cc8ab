package extract

import "strings"

// SocialLinks buckets candidate social URLs by platform. Each platform
// holds a single slot and later links overwrite earlier ones, so with a
// deterministic input order the last matching link wins.
func SocialLinks(candidates []string) map[string]string {
	socials := make(map[string]string)
	for _, link := range candidates {
		l := strings.ToLower(link)
		switch {
		case strings.Contains(l, "linkedin"):
			socials["linkedin"] = link
		case strings.Contains(l, "twitter"), strings.Contains(l, "x.com"):
			socials["twitter"] = link
		case strings.Contains(l, "facebook"):
			socials["facebook"] = link
		case strings.Contains(l, "instagram"):
			socials["instagram"] = link
		case strings.Contains(l, "youtube"):
			socials["youtube"] = link
		}
	}
	return socials
}
