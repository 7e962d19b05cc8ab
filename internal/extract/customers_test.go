package extract

import "testing"

func TestTargetCustomers(t *testing.T) {
	text := "Built for startups and enterprise teams in healthcare and finance."
	got := toSet(TargetCustomers(text))

	want := []string{"Startup", "Enterprise", "Team", "Healthcare", "Finance"}
	for _, w := range want {
		if !got[w] {
			t.Errorf("TargetCustomers missing %q, got %v", w, got)
		}
	}
}

func TestTargetCustomers_Dedup(t *testing.T) {
	// "enterprise" appears twice in the keyword list; output must still
	// hold a single label.
	got := TargetCustomers("enterprise enterprise enterprise")
	count := 0
	for _, c := range got {
		if c == "Enterprise" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("TargetCustomers = %v, want exactly one Enterprise", got)
	}
}

func TestTargetCustomers_Empty(t *testing.T) {
	if got := TargetCustomers(""); len(got) != 0 {
		t.Errorf("TargetCustomers(\"\") = %v, want empty", got)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"starter", "Starter"},
		{"small business", "Small business"},
		{"SME", "Sme"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
