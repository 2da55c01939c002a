// Package guard rejects junk input before it costs an assistant call and
// enforces a per-user message rate limit with a timed cooldown.
package guard

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minMeaningfulLength = 3
	repeatRuneThreshold = 7
	densityCheckLength  = 5
	minAlnumDensity     = 0.15
)

var urlMarkers = []string{"http://", "https://", "www."}

// IsSpam reports whether text looks like gibberish, flooding, or link spam.
// The heuristics are independent; any one of them rejects.
func IsSpam(text string) bool {
	trimmed := strings.TrimSpace(text)

	if utf8.RuneCountInString(trimmed) < minMeaningfulLength {
		return true
	}

	if hasLongRepeat(trimmed) {
		return true
	}

	if lowAlnumDensity(trimmed) {
		return true
	}

	return containsURL(trimmed)
}

// hasLongRepeat detects a single rune repeated repeatRuneThreshold times or
// more anywhere in the text.
func hasLongRepeat(text string) bool {
	var (
		prev  rune
		count int
	)

	for _, r := range text {
		if r == prev {
			count++
			if count >= repeatRuneThreshold {
				return true
			}

			continue
		}

		prev = r
		count = 1
	}

	return false
}

func lowAlnumDensity(text string) bool {
	total := utf8.RuneCountInString(text)
	if total < densityCheckLength {
		return false
	}

	alnum := 0

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			alnum++
		}
	}

	return float64(alnum)/float64(total) < minAlnumDensity
}

func containsURL(text string) bool {
	lower := strings.ToLower(text)

	for _, marker := range urlMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}
