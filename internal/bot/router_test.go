package bot

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisondecafe/kiosk-bot/internal/assistant"
	"github.com/maisondecafe/kiosk-bot/internal/config"
	"github.com/maisondecafe/kiosk-bot/internal/guard"
	"github.com/maisondecafe/kiosk-bot/internal/leadform"
	"github.com/maisondecafe/kiosk-bot/internal/locale"
	"github.com/maisondecafe/kiosk-bot/internal/notify"
	"github.com/maisondecafe/kiosk-bot/internal/session"
	"github.com/maisondecafe/kiosk-bot/internal/verifier"
)

type fakeSender struct {
	sent    []tgbotapi.Chattable
	fileURL string
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) GetFileDirectURL(string) (string, error) {
	return f.fileURL, nil
}

func (f *fakeSender) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent, "no message was sent")

	msg, ok := f.sent[len(f.sent)-1].(tgbotapi.MessageConfig)
	require.True(t, ok, "last sent item is not a text message")

	return msg.Text
}

type noopNotifier struct{}

func (noopNotifier) SendLead(context.Context, notify.Lead) []notify.Result {
	return []notify.Result{{Channel: "telegram"}}
}

func newTestBot(mock *assistant.MockClient) (*Bot, *fakeSender, session.Store) {
	logger := zerolog.Nop()
	store := session.NewMemoryStore(locale.Ukrainian)
	sender := &fakeSender{}

	rw := &staticRewriter{}
	verif := verifier.New(verifier.DefaultPolicy(), rw, &logger)

	b := &Bot{
		cfg:       &config.Config{OwnerTelegramID: 100},
		sender:    sender,
		store:     store,
		assistant: mock,
		verifier:  verif,
		leads:     leadform.New(noopNotifier{}, &logger),
		limiter:   guard.NewRateLimiter(100, time.Minute, time.Minute),
		logger:    &logger,
	}

	return b, sender, store
}

type staticRewriter struct{}

func (staticRewriter) Rewrite(context.Context, string, string) (string, error) {
	return "", nil
}

func userMessage(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID, UserName: "tester"},
		Chat:      &tgbotapi.Chat{ID: userID},
		Text:      text,
	}
}

func TestRouteCalculatorBypassesAssistant(t *testing.T) {
	mock := &assistant.MockClient{}
	b, sender, _ := newTestBot(mock)

	b.routeText(context.Background(), userMessage(1, "скільки зароблю з 35 чашок на день?"), "скільки зароблю з 35 чашок на день?")

	out := sender.lastText(t)
	assert.Contains(t, out, "35")
	assert.Contains(t, out, "грн")
	assert.Zero(t, mock.AskCalls, "calculator questions must not reach the assistant")
}

func TestRouteCalculatorCueWithoutNumberAsksToClarify(t *testing.T) {
	mock := &assistant.MockClient{}
	b, sender, _ := newTestBot(mock)

	b.routeText(context.Background(), userMessage(1, "скільки я зароблю?"), "скільки я зароблю?")

	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextCalcClarify), sender.lastText(t))
	assert.Zero(t, mock.AskCalls)
}

func TestRouteSpamIsRejectedBeforeAssistant(t *testing.T) {
	mock := &assistant.MockClient{}
	b, sender, _ := newTestBot(mock)

	b.routeText(context.Background(), userMessage(1, "https://spam.example"), "https://spam.example")

	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextSpamStop), sender.lastText(t))
	assert.Zero(t, mock.AskCalls)
}

func TestRouteLanguagePick(t *testing.T) {
	mock := &assistant.MockClient{}
	b, sender, store := newTestBot(mock)

	name := locale.DisplayName(locale.French)
	b.routeText(context.Background(), userMessage(1, name), name)

	s, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, locale.French, s.Language)
	assert.Contains(t, sender.lastText(t), name)
}

func TestRouteContentButtonBindsLanguage(t *testing.T) {
	mock := &assistant.MockClient{DefaultAns: assistant.Answer{Text: "It is a turnkey kiosk format.", UsedFileSearch: true}}
	b, sender, store := newTestBot(mock)

	// Session starts Ukrainian; pressing the English button re-binds it.
	label := locale.Label(locale.English, locale.ActionWhat)
	b.routeText(context.Background(), userMessage(1, label), label)

	s, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, locale.English, s.Language)

	assert.Equal(t, 1, mock.AskCalls)
	assert.Equal(t, locale.English, mock.LastLanguage)
	assert.Equal(t, locale.ActionWhat, mock.LastAction)
	assert.Contains(t, mock.LastText, label)

	assert.Equal(t, "It is a turnkey kiosk format.", sender.lastText(t))
}

func TestRouteFreeTextComplianceGate(t *testing.T) {
	mock := &assistant.MockClient{DefaultAns: assistant.Answer{Text: "Made-up answer", UsedFileSearch: false}}
	b, sender, _ := newTestBot(mock)

	b.routeText(context.Background(), userMessage(1, "where do you source beans?"), "where do you source beans?")

	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextKBMissing), sender.lastText(t))
}

func TestRouteFreeTextKBMissingMarker(t *testing.T) {
	mock := &assistant.MockClient{DefaultAns: assistant.Answer{Text: "kb_missing", UsedFileSearch: true}}
	b, sender, _ := newTestBot(mock)

	b.routeText(context.Background(), userMessage(1, "tell me about insurance"), "tell me about insurance")

	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextKBMissing), sender.lastText(t))
}

func TestRouteFreeTextVerifierReplacesBadFigures(t *testing.T) {
	mock := &assistant.MockClient{DefaultAns: assistant.Answer{Text: "Відкриття коштує 12500.", UsedFileSearch: true}}
	b, sender, _ := newTestBot(mock)

	b.routeText(context.Background(), userMessage(1, "скільки коштує відкриття?"), "скільки коштує відкриття?")

	out := sender.lastText(t)
	assert.NotContains(t, out, "12500")
	assert.NotEmpty(t, out)
}

func TestRouteFreeTextAnswersPerQuestion(t *testing.T) {
	mock := &assistant.MockClient{
		Answers: map[string]assistant.Answer{
			"розкажіть про обладнання": {Text: "The kit includes the machine and grinder.", UsedFileSearch: true},
			"розкажіть про навчання":   {Text: "Training takes place before launch.", UsedFileSearch: true},
		},
	}
	b, sender, _ := newTestBot(mock)
	ctx := context.Background()

	b.routeText(ctx, userMessage(1, "розкажіть про обладнання"), "розкажіть про обладнання")
	assert.Equal(t, "The kit includes the machine and grinder.", sender.lastText(t))

	b.routeText(ctx, userMessage(1, "розкажіть про навчання"), "розкажіть про навчання")
	assert.Equal(t, "Training takes place before launch.", sender.lastText(t))

	assert.Equal(t, 2, mock.AskCalls)
}

func TestPresentationButtonWithoutFileID(t *testing.T) {
	mock := &assistant.MockClient{}
	b, sender, _ := newTestBot(mock)

	label := locale.Label(locale.Ukrainian, locale.ActionPresentation)
	b.routeText(context.Background(), userMessage(1, label), label)

	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextPresentationMissing), sender.lastText(t))
	assert.Zero(t, mock.AskCalls)
}

func TestRouteAssistantPersistsThread(t *testing.T) {
	mock := &assistant.MockClient{
		ThreadID:   "thread-77",
		DefaultAns: assistant.Answer{Text: "Fine answer without figures.", UsedFileSearch: true},
	}
	b, _, store := newTestBot(mock)

	b.routeText(context.Background(), userMessage(1, "розкажіть про підтримку партнерів"), "розкажіть про підтримку партнерів")

	s, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "thread-77", s.ThreadID)
}

func TestRouteRunTimeoutFallsBackToKBMissing(t *testing.T) {
	mock := &assistant.MockClient{AskErr: assistant.ErrRunTimeout}
	b, sender, _ := newTestBot(mock)

	b.routeText(context.Background(), userMessage(1, "детальне запитання про колаборацію"), "детальне запитання про колаборацію")

	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextKBMissing), sender.lastText(t))
}

func TestRouteLeadFormFlow(t *testing.T) {
	mock := &assistant.MockClient{}
	b, sender, store := newTestBot(mock)
	ctx := context.Background()

	label := locale.Label(locale.Ukrainian, locale.ActionLead)
	b.routeText(ctx, userMessage(1, label), label)
	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextLeadStart), sender.lastText(t))

	for _, step := range []string{"Іван", "0671234567", "ivan@example.com"} {
		b.routeText(ctx, userMessage(1, step), step)
	}

	b.routeText(ctx, userMessage(1, "Хочу кіоск у Львові"), "Хочу кіоск у Львові")

	out := sender.lastText(t)
	assert.Contains(t, out, "(telegram ✅)")

	s, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, s.Lead)
	assert.Zero(t, mock.AskCalls, "lead answers must not be routed to the assistant")
}

func TestHandleTextRateLimit(t *testing.T) {
	mock := &assistant.MockClient{DefaultAns: assistant.Answer{Text: "ok answer", UsedFileSearch: true}}
	b, sender, _ := newTestBot(mock)
	b.limiter = guard.NewRateLimiter(1, time.Minute, time.Minute)
	ctx := context.Background()

	b.handleText(ctx, userMessage(5, "перше питання про каву"), "перше питання про каву")
	require.Equal(t, 1, mock.AskCalls)

	b.handleText(ctx, userMessage(5, "друге питання про каву"), "друге питання про каву")
	assert.Equal(t, 1, mock.AskCalls, "rate-limited message must not reach the assistant")
	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextSpamStop), sender.lastText(t))

	// Inside the cooldown the bot goes silent entirely.
	sentBefore := len(sender.sent)
	b.handleText(ctx, userMessage(5, "третє питання про каву"), "третє питання про каву")
	assert.Len(t, sender.sent, sentBefore)
}
