package calculator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

// unitNeighborhood is how far (in bytes of the lowercased text) a number may
// sit from a cups-unit keyword to be treated as adjacent to it.
const unitNeighborhood = 16

var numberRe = regexp.MustCompile(`\d+`)

// profitCues trigger the calculator when paired with an extractable number.
// Stems, not full words, so that inflected forms match too.
var profitCues = map[locale.Language][]string{
	locale.Ukrainian: {"приб", "зароб", "чаш", "окупн", "дохід", "вигідн"},
	locale.Russian:   {"приб", "зараб", "чаш", "окупа", "доход", "выгодн"},
	locale.English:   {"profit", "earn", "cup", "payback", "income", "make"},
	locale.French:    {"profit", "gagn", "tasse", "rentab", "revenu"},
	locale.Dutch:     {"winst", "verdien", "kop", "terugverdien", "inkomen"},
}

// cupUnits mark a number as a cups/day figure when adjacent.
var cupUnits = map[locale.Language][]string{
	locale.Ukrainian: {"чаш"},
	locale.Russian:   {"чаш"},
	locale.English:   {"cup"},
	locale.French:    {"tasse"},
	locale.Dutch:     {"kop"},
}

// HasCue reports whether text contains a profit-question keyword for the
// given language.
func HasCue(text string, lang locale.Language) bool {
	lower := strings.ToLower(text)

	cues, ok := profitCues[lang]
	if !ok {
		cues = profitCues[locale.Default]
	}

	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			return true
		}
	}

	return false
}

// ExtractCups pulls a plausible cups/day figure out of free text. Numbers
// adjacent to a cups-unit keyword win; otherwise the first in-range number is
// used. Out-of-range numbers are ignored, never clamped.
func ExtractCups(text string, lang locale.Language) (int, bool) {
	lower := strings.ToLower(text)

	matches := numberRe.FindAllStringIndex(lower, -1)
	if len(matches) == 0 {
		return 0, false
	}

	units, ok := cupUnits[lang]
	if !ok {
		units = cupUnits[locale.Default]
	}

	type candidate struct {
		value int
		pos   int
	}

	var inRange []candidate

	for _, m := range matches {
		n, err := strconv.Atoi(lower[m[0]:m[1]])
		if err != nil || n < MinCupsPerDay || n > MaxCupsPerDay {
			continue
		}

		inRange = append(inRange, candidate{value: n, pos: m[0]})
	}

	if len(inRange) == 0 {
		return 0, false
	}

	for _, c := range inRange {
		if nearAny(lower, c.pos, units) {
			return c.value, true
		}
	}

	return inRange[0].value, true
}

func nearAny(lower string, pos int, keywords []string) bool {
	lo := pos - unitNeighborhood
	if lo < 0 {
		lo = 0
	}

	hi := pos + unitNeighborhood
	if hi > len(lower) {
		hi = len(lower)
	}

	window := lower[lo:hi]

	for _, kw := range keywords {
		if strings.Contains(window, kw) {
			return true
		}
	}

	return false
}
