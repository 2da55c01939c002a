package bot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisondecafe/kiosk-bot/internal/assistant"
	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

func voiceMessage(userID int64) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID, UserName: "tester"},
		Chat:      &tgbotapi.Chat{ID: userID},
		Voice:     &tgbotapi.Voice{FileID: "voice-file-1", FileSize: 4096},
	}
}

func TestHandleVoiceRoutesTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OggS fake audio"))
	}))
	defer srv.Close()

	mock := &assistant.MockClient{Transcript: "скільки зароблю з 35 чашок?"}
	b, sender, _ := newTestBot(mock)
	sender.fileURL = srv.URL

	b.handleVoice(context.Background(), voiceMessage(1))

	// The transcript hits the calculator, not the assistant.
	out := sender.lastText(t)
	assert.Contains(t, out, "35")
	assert.Zero(t, mock.AskCalls)
}

func TestHandleVoiceEmptyTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OggS fake audio"))
	}))
	defer srv.Close()

	mock := &assistant.MockClient{Transcript: "   "}
	b, sender, _ := newTestBot(mock)
	sender.fileURL = srv.URL

	b.handleVoice(context.Background(), voiceMessage(1))

	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextVoiceFail), sender.lastText(t))
}

func TestHandleVoiceDownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	b, sender, _ := newTestBot(&assistant.MockClient{Transcript: "irrelevant"})
	sender.fileURL = srv.URL

	b.handleVoice(context.Background(), voiceMessage(1))

	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextVoiceFail), sender.lastText(t))
}

func TestHandleVoiceRejectsOversizedFile(t *testing.T) {
	b, sender, _ := newTestBot(&assistant.MockClient{Transcript: "irrelevant"})

	msg := voiceMessage(1)
	msg.Voice.FileSize = maxVoiceBytes + 1

	b.handleVoice(context.Background(), msg)

	require.NotEmpty(t, sender.sent)
	assert.Equal(t, locale.Text(locale.Ukrainian, locale.TextVoiceFail), sender.lastText(t))
}
