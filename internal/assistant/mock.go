package assistant

import (
	"context"
	"io"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

// MockClient is a scriptable Client for tests.
type MockClient struct {
	ThreadID     string
	Answers      map[string]Answer
	DefaultAns   Answer
	Transcript   string
	AskErr       error
	AskCalls     int
	LastText     string
	LastLanguage locale.Language
	LastAction   locale.Action
}

func (m *MockClient) EnsureThread(_ context.Context, threadID string) (string, error) {
	if threadID != "" {
		return threadID, nil
	}

	if m.ThreadID != "" {
		return m.ThreadID, nil
	}

	return "thread-mock", nil
}

func (m *MockClient) Ask(_ context.Context, _, text string, lang locale.Language, action locale.Action) (Answer, error) {
	m.AskCalls++
	m.LastText = text
	m.LastLanguage = lang
	m.LastAction = action

	if m.AskErr != nil {
		return Answer{}, m.AskErr
	}

	if ans, ok := m.Answers[text]; ok {
		return ans, nil
	}

	return m.DefaultAns, nil
}

func (m *MockClient) Transcribe(_ context.Context, _ io.Reader, _ string) (string, error) {
	return m.Transcript, nil
}
