// Package session holds per-user conversation state and the Store interface
// that isolates its persistence (in-memory map, JSON file, or Postgres).
package session

import (
	"context"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

// LeadStep is the position in the lead-intake form. It only advances forward
// or resets fully to LeadNone.
type LeadStep string

const (
	LeadNone    LeadStep = ""
	LeadName    LeadStep = "name"
	LeadPhone   LeadStep = "phone"
	LeadEmail   LeadStep = "email"
	LeadMessage LeadStep = "message"
)

// LeadState accumulates the lead form fields as the user answers.
type LeadState struct {
	Step    LeadStep `json:"step"`
	Name    string   `json:"name,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Session is the per-user state. ThreadID names the server-side assistant
// conversation; it is opaque here.
type Session struct {
	UserID   int64           `json:"-"`
	Language locale.Language `json:"language"`
	ThreadID string          `json:"thread_id,omitempty"`
	Lead     *LeadState      `json:"-"`
}

// Stats summarizes store contents for the /status command.
type Stats struct {
	Sessions int
	Threads  int
	Leads    int
	Blocked  int
}

// Store is the key-value session store. Implementations must be safe for
// concurrent use from update handlers.
type Store interface {
	// Get returns the session for a user, creating a fresh one with the
	// default language if none exists yet.
	Get(ctx context.Context, userID int64) (*Session, error)
	Put(ctx context.Context, s *Session) error

	Block(ctx context.Context, userID int64) error
	Unblock(ctx context.Context, userID int64) error
	IsBlocked(ctx context.Context, userID int64) (bool, error)

	Stats(ctx context.Context) (Stats, error)
	Ping(ctx context.Context) error
	Close() error
}

func newSession(userID int64, lang locale.Language) *Session {
	if !locale.Valid(string(lang)) {
		lang = locale.Default
	}

	return &Session{UserID: userID, Language: lang}
}
