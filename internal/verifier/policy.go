// Package verifier post-checks assistant drafts: numbers must come from an
// explicit allow-list and banned legacy phrases must not appear. Drafts that
// cannot be repaired are replaced with curated gold answers.
package verifier

import (
	"regexp"
	"strings"
)

// Policy is the data-driven allow/deny configuration. It has no behavior of
// its own beyond the pure Violations check.
type Policy struct {
	AllowedNumbers map[string]struct{}
	BannedPatterns []*regexp.Regexp
}

// Matches either a space-grouped figure ("9 800") or a single number with an
// optional decimal part. The alternation keeps "1.8, 30" as two tokens.
var numberRe = regexp.MustCompile(`\d{1,3}(?: \d{3})+|\d+(?:[.,]\d+)?`)

// DefaultPolicy allows exactly the calculator constants and the figures the
// knowledge base quotes, and bans legacy pricing terms.
func DefaultPolicy() Policy {
	allowed := []string{
		"1.8", "1,8", "30", "450", "600", "9800", "9 800",
		"1", "7", "200",
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, n := range allowed {
		allowedSet[normalizeNumber(n)] = struct{}{}
	}

	return Policy{
		AllowedNumbers: allowedSet,
		BannedPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)франшиз[аы]? за \d+`),
			regexp.MustCompile(`(?i)паушальн`),
			regexp.MustCompile(`(?i)роялти`),
			regexp.MustCompile(`(?i)lump[- ]sum fee`),
			regexp.MustCompile(`(?i)royalt`),
		},
	}
}

// Violations returns the out-of-allow-list numbers and banned phrases found
// in text. Empty result means the text passes.
func (p Policy) Violations(text string) []string {
	var violations []string

	for _, raw := range numberRe.FindAllString(text, -1) {
		n := normalizeNumber(raw)
		if n == "" {
			continue
		}

		if _, ok := p.AllowedNumbers[n]; !ok {
			violations = append(violations, n)
		}
	}

	for _, re := range p.BannedPatterns {
		if m := re.FindString(text); m != "" {
			violations = append(violations, m)
		}
	}

	return violations
}

// normalizeNumber strips grouping separators and trailing punctuation so
// "9 800" and "9800," compare equal, while keeping one decimal separator.
func normalizeNumber(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Trim(s, ".,")

	if s == "" {
		return ""
	}

	// Treat a single comma as a decimal point; drop commas used as
	// thousands separators.
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		frac := s[strings.Index(s, ",")+1:]
		if len(frac) > 0 && len(frac) < 3 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	return s
}
