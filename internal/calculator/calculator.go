// Package calculator answers "how much would I earn" questions with fixed
// constants instead of an assistant call, so the figures never drift.
package calculator

import (
	"fmt"

	"golang.org/x/text/message"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

// Single source of truth for the franchise economics. The assistant's
// knowledge base quotes the same figures.
const (
	MarginPerCup = 1.8
	DaysPerMonth = 30
	ExpenseMin   = 450.0
	ExpenseMax   = 600.0
	Investment   = 9800.0

	MinCupsPerDay = 1
	MaxCupsPerDay = 200
)

// Result holds the computed monthly figures for one cups/day input.
type Result struct {
	CupsPerDay int
	GrossMonth float64
	NetLow     float64
	NetHigh    float64

	// Payback range in months; zero when the corresponding net is not
	// positive.
	PaybackMonthsLow  float64
	PaybackMonthsHigh float64
}

// Compute is pure: the same cups value always yields the same result.
// Negative nets are presented as-is, without clipping.
func Compute(cupsPerDay int) Result {
	gross := MarginPerCup * float64(cupsPerDay) * DaysPerMonth

	r := Result{
		CupsPerDay: cupsPerDay,
		GrossMonth: gross,
		NetLow:     gross - ExpenseMax,
		NetHigh:    gross - ExpenseMin,
	}

	if r.NetHigh > 0 {
		r.PaybackMonthsLow = Investment / r.NetHigh
	}

	if r.NetLow > 0 {
		r.PaybackMonthsHigh = Investment / r.NetLow
	}

	return r
}

var resultTemplates = map[locale.Language]string{
	locale.Ukrainian: "☕ %s чашок/день × %s грн маржі × 30 днів\n" +
		"Валова маржа: ~%s грн/міс\n" +
		"Чистими (витрати %s–%s грн/міс): від %s до %s грн/міс%s",
	locale.Russian: "☕ %s чашек/день × %s грн маржи × 30 дней\n" +
		"Валовая маржа: ~%s грн/мес\n" +
		"Чистыми (расходы %s–%s грн/мес): от %s до %s грн/мес%s",
	locale.English: "☕ %s cups/day × %s margin × 30 days\n" +
		"Gross margin: ~%s per month\n" +
		"Net (expenses %s–%s per month): from %s to %s per month%s",
	locale.French: "☕ %s tasses/jour × %s de marge × 30 jours\n" +
		"Marge brute : ~%s par mois\n" +
		"Net (charges %s–%s par mois) : de %s à %s par mois%s",
	locale.Dutch: "☕ %s koppen/dag × %s marge × 30 dagen\n" +
		"Brutomarge: ~%s per maand\n" +
		"Netto (kosten %s–%s per maand): van %s tot %s per maand%s",
}

var paybackTemplates = map[locale.Language]string{
	locale.Ukrainian: "\nОкупність інвестиції %s: ~%s–%s міс.",
	locale.Russian:   "\nОкупаемость инвестиции %s: ~%s–%s мес.",
	locale.English:   "\nPayback on the %s investment: ~%s–%s months.",
	locale.French:    "\nRetour sur l'investissement de %s : ~%s–%s mois.",
	locale.Dutch:     "\nTerugverdientijd op de investering van %s: ~%s–%s maanden.",
}

// Format renders the result as a localized message. Currency totals are
// thousands-grouped without decimals; the per-cup margin keeps one decimal.
func Format(r Result, lang locale.Language) string {
	p := message.NewPrinter(locale.Tag(lang))

	tmpl, ok := resultTemplates[lang]
	if !ok {
		tmpl = resultTemplates[locale.Default]
	}

	payback := ""
	if r.PaybackMonthsLow > 0 && r.PaybackMonthsHigh > 0 {
		pbTmpl, ok := paybackTemplates[lang]
		if !ok {
			pbTmpl = paybackTemplates[locale.Default]
		}

		payback = fmt.Sprintf(pbTmpl,
			p.Sprintf("%d", int64(Investment)),
			p.Sprintf("%.1f", r.PaybackMonthsLow),
			p.Sprintf("%.1f", r.PaybackMonthsHigh),
		)
	}

	return fmt.Sprintf(tmpl,
		p.Sprintf("%d", int64(r.CupsPerDay)),
		p.Sprintf("%.1f", MarginPerCup),
		p.Sprintf("%d", int64(r.GrossMonth)),
		p.Sprintf("%d", int64(ExpenseMin)),
		p.Sprintf("%d", int64(ExpenseMax)),
		p.Sprintf("%d", int64(r.NetLow)),
		p.Sprintf("%d", int64(r.NetHigh)),
		payback,
	)
}
