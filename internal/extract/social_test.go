package extract

import "testing"

func TestSocialLinks(t *testing.T) {
	candidates := []string{
		"https://linkedin.com/company/acme",
		"https://x.com/acme",
		"https://www.facebook.com/acme",
		"https://instagram.com/acme",
		"https://youtube.com/@acme",
	}
	got := SocialLinks(candidates)

	want := map[string]string{
		"linkedin":  "https://linkedin.com/company/acme",
		"twitter":   "https://x.com/acme",
		"facebook":  "https://www.facebook.com/acme",
		"instagram": "https://instagram.com/acme",
		"youtube":   "https://youtube.com/@acme",
	}
	if len(got) != len(want) {
		t.Fatalf("SocialLinks = %v, want %v", got, want)
	}
	for platform, url := range want {
		if got[platform] != url {
			t.Errorf("SocialLinks[%q] = %q, want %q", platform, got[platform], url)
		}
	}
}

func TestSocialLinks_LastWriteWins(t *testing.T) {
	got := SocialLinks([]string{
		"https://twitter.com/old-handle",
		"https://twitter.com/new-handle",
	})
	if got["twitter"] != "https://twitter.com/new-handle" {
		t.Errorf("SocialLinks[twitter] = %q, want the later link", got["twitter"])
	}
}

func TestSocialLinks_Empty(t *testing.T) {
	if got := SocialLinks(nil); len(got) != 0 {
		t.Errorf("SocialLinks(nil) = %v, want empty", got)
	}
}
