package notify

import (
	"context"
	"errors"
	"mime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/gomail.v2"
)

func testLead() Lead {
	return Lead{
		ID:        "lead-1",
		UserID:    42,
		Username:  "johndoe",
		Name:      "John Doe",
		Phone:     "+380671234567",
		Email:     "john@example.com",
		Message:   "Interested in a kiosk",
		CreatedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
}

func TestLeadSummary(t *testing.T) {
	s := testLead().Summary()

	for _, want := range []string{"lead-1", "42", "@johndoe", "John Doe", "+380671234567", "john@example.com", "2026-08-29 12:00:00"} {
		assert.Contains(t, s, want)
	}
}

func TestLeadSummaryWithoutUsername(t *testing.T) {
	lead := testLead()
	lead.Username = ""

	s := lead.Summary()

	// The email line legitimately contains "@"; only the username line must
	// lose its prefix.
	assert.Contains(t, s, "Username: \n")
	assert.NotContains(t, s, "@johndoe")
}

type fakeNotifier struct {
	results []Result
}

func (f *fakeNotifier) SendLead(_ context.Context, _ Lead) []Result {
	return f.results
}

func TestMultiCollectsEveryChannel(t *testing.T) {
	m := Multi{
		&fakeNotifier{results: []Result{{Channel: "telegram"}}},
		&fakeNotifier{results: []Result{{Channel: "email", Err: errors.New("smtp down")}}},
	}

	results := m.SendLead(context.Background(), testLead())

	require.Len(t, results, 2)
	assert.Equal(t, "telegram", results[0].Channel)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "email", results[1].Channel)
	assert.Error(t, results[1].Err)
}

func TestTelegramNotifierWithoutOwner(t *testing.T) {
	n := NewTelegramNotifier(nil, 0)

	results := n.SendLead(context.Background(), testLead())

	require.Len(t, results, 1)
	assert.Equal(t, "telegram", results[0].Channel)
	assert.Error(t, results[0].Err)
}

func TestEmailNotifierBuildsMessage(t *testing.T) {
	n := NewEmailNotifier(EmailConfig{Host: "smtp.example.com", Port: 587, From: "bot@example.com", To: "owner@example.com"})

	var sent *gomail.Message

	n.send = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	results := n.SendLead(context.Background(), testLead())

	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	require.NotNil(t, sent)
	assert.Equal(t, []string{"bot@example.com"}, sent.GetHeader("From"))
	assert.Equal(t, []string{"owner@example.com"}, sent.GetHeader("To"))

	// gomail RFC-2047-encodes the non-ASCII subject; decode before asserting.
	require.NotEmpty(t, sent.GetHeader("Subject"))

	subject, err := new(mime.WordDecoder).DecodeHeader(sent.GetHeader("Subject")[0])
	require.NoError(t, err)
	assert.Contains(t, subject, "New lead")
}

func TestEmailNotifierReportsSendError(t *testing.T) {
	n := NewEmailNotifier(EmailConfig{Host: "smtp.example.com", Port: 587, From: "a@b.c", To: "d@e.f"})
	n.send = func(_ *gomail.Message) error { return errors.New("dial tcp: refused") }

	results := n.SendLead(context.Background(), testLead())

	require.Len(t, results, 1)
	assert.Equal(t, "email", results[0].Channel)
	assert.Error(t, results[0].Err)
}
