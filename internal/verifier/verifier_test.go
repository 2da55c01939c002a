package verifier

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

type stubRewriter struct {
	out   string
	err   error
	calls int
}

func (s *stubRewriter) Rewrite(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.out, s.err
}

func newTestVerifier(rw Rewriter) *Verifier {
	logger := zerolog.Nop()
	return New(DefaultPolicy(), rw, &logger)
}

func TestVerifyPassesCleanDraftUntouched(t *testing.T) {
	rw := &stubRewriter{}
	v := newTestVerifier(rw)

	draft := "The margin is 1.8 per cup over 30 days, investment 9800."
	got := v.Verify(context.Background(), "payback?", draft, locale.English)

	assert.Equal(t, draft, got)
	assert.Zero(t, rw.calls, "clean draft must not trigger a rewrite")
}

func TestVerifyUsesRewriteWhenItRepairs(t *testing.T) {
	rw := &stubRewriter{out: "The investment is 9800 and the margin is 1.8."}
	v := newTestVerifier(rw)

	got := v.Verify(context.Background(), "cost?", "It costs 12500 to open.", locale.English)

	assert.Equal(t, rw.out, got)
	assert.Equal(t, 1, rw.calls)
}

func TestVerifyFallsBackToGoldOnBadRewrite(t *testing.T) {
	rw := &stubRewriter{out: "Still costs 12500."}
	v := newTestVerifier(rw)

	got := v.Verify(context.Background(), "how much does it cost?", "It costs 12500.", locale.English)

	assert.Equal(t, GoldAnswer(IntentPrice, locale.English), got)
}

func TestVerifyFallsBackToGoldOnRewriterError(t *testing.T) {
	rw := &stubRewriter{err: errors.New("api down")}
	v := newTestVerifier(rw)

	got := v.Verify(context.Background(), "скільки коштує відкриття?", "Це коштує 12500.", locale.Ukrainian)

	assert.Equal(t, GoldAnswer(IntentPrice, locale.Ukrainian), got)
	assert.NotEmpty(t, got)
}

func TestVerifyNeverReturnsEmpty(t *testing.T) {
	rw := &stubRewriter{err: errors.New("api down")}
	v := newTestVerifier(rw)

	got := v.Verify(context.Background(), "random off-topic", "Call 555 123 now!", locale.English)

	assert.NotEmpty(t, got)
}

func TestPolicyViolations(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name  string
		text  string
		clean bool
	}{
		{"allowed_constants", "margin 1.8, 30 days, expenses 450 to 600, investment 9800", true},
		{"grouped_investment", "investment of 9 800", true},
		{"comma_decimal_margin", "маржа 1,8 грн", true},
		{"no_numbers", "We will send you the details after your request.", true},
		{"foreign_number", "it costs 12500", false},
		{"banned_royalty_ru", "роялти отсутствует", false},
		{"banned_royalty_en", "no royalties at all", false},
		{"banned_lump_sum", "there is no lump-sum fee", false},
		{"banned_lump_sum_spaced", "no lump sum fee required", false},
		{"legacy_franchise_price", "франшиза за 5000", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			violations := p.Violations(tc.text)
			if tc.clean {
				assert.Empty(t, violations)
			} else {
				assert.NotEmpty(t, violations)
			}
		})
	}
}

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9800", "9800"},
		{"9 800", "9800"},
		{"9,800", "9800"},
		{"1,8", "1.8"},
		{"1.8", "1.8"},
		{"450.", "450"},
		{"600,", "600"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, normalizeNumber(tc.in), "input %q", tc.in)
	}
}

func TestGuessIntent(t *testing.T) {
	tests := []struct {
		question string
		want     Intent
	}{
		{"how much does it cost?", IntentPrice},
		{"скільки коштує, яка вартість?", IntentPrice},
		{"when is the payback?", IntentPayback},
		{"какая прибыль?", IntentPayback},
		{"what are the franchise terms?", IntentTerms},
		{"what is maison de café?", IntentWhat},
		{"do you ship to Mars?", IntentOther},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, GuessIntent(tc.question), "question %q", tc.question)
	}
}

func TestGoldAnswersPassPolicy(t *testing.T) {
	p := DefaultPolicy()

	for _, intent := range []Intent{IntentPrice, IntentPayback, IntentTerms, IntentWhat, IntentOther} {
		for _, lang := range locale.All {
			answer := GoldAnswer(intent, lang)
			assert.NotEmpty(t, answer, "%s/%s", intent, lang)
			assert.Empty(t, p.Violations(answer), "gold answer for %s/%s violates policy", intent, lang)
		}
	}
}
