// Package assistant wraps the OpenAI Assistants API: one server-side thread
// per user, runs with per-language instructions, and a typed result that
// records whether the file-search tool was actually used.
package assistant

import (
	"context"
	"errors"
	"io"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

// Answer is one completed assistant turn. UsedFileSearch is the compliance
// signal: callers must discard Text when it is false.
type Answer struct {
	Text           string
	UsedFileSearch bool
}

// ErrRunTimeout is returned when a run does not complete within the
// configured total timeout.
var ErrRunTimeout = errors.New("assistant run did not complete in time")

// ErrRunFailed is returned when the collaborator reports a terminal
// non-completed run status.
var ErrRunFailed = errors.New("assistant run failed")

// Client is the collaborator boundary used by the router.
type Client interface {
	// EnsureThread returns threadID unchanged when non-empty, otherwise
	// creates a new conversation thread.
	EnsureThread(ctx context.Context, threadID string) (string, error)

	// Ask submits text as a new turn on the thread and waits for the run to
	// complete. action selects an optional per-button task prompt.
	Ask(ctx context.Context, threadID, text string, lang locale.Language, action locale.Action) (Answer, error)

	// Transcribe converts a voice clip to text.
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}
