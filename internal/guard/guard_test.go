package guard

import "testing"

func TestIsSpam(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"too_short", "hi", true},
		{"short_after_trim", "  a  ", true},
		{"normal_question", "How much does it cost to open?", false},
		{"cyrillic_question", "Скільки коштує відкриття кіоску?", false},
		{"long_repeat", "helloooooooo there", true},
		{"repeat_below_threshold", "soooo, tell me more", false},
		{"punctuation_flood", "!!!???!!!???!!!", true},
		{"http_link", "check http://spam.example now", true},
		{"https_link", "https://spam.example", true},
		{"www_link", "visit www.spam.example", true},
		{"word_containing_www_marker", "visit www.spam", true},
		{"numbers_only", "35 cups", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSpam(tc.text); got != tc.want {
				t.Errorf("IsSpam(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestIsSpamIndependentOfCase(t *testing.T) {
	if !IsSpam("HTTPS://SPAM.EXAMPLE") {
		t.Error("uppercase URL should still be rejected")
	}
}
