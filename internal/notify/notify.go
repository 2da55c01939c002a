// Package notify delivers completed leads to the operator over independent
// channels (Telegram DM, SMTP email).
package notify

import (
	"context"
	"fmt"
	"time"
)

// Lead is a completed intake record ready for hand-off.
type Lead struct {
	ID        string
	UserID    int64
	Username  string
	Name      string
	Phone     string
	Email     string
	Message   string
	CreatedAt time.Time
}

// Summary renders the human-readable operator message.
func (l Lead) Summary() string {
	username := l.Username
	if username != "" {
		username = "@" + username
	}

	return fmt.Sprintf(
		"New lead %s\nTelegram user_id: %d\nUsername: %s\nName: %s\nPhone: %s\nEmail: %s\nMessage: %s\nTime: %s",
		l.ID, l.UserID, username, l.Name, l.Phone, l.Email, l.Message,
		l.CreatedAt.Format("2006-01-02 15:04:05"),
	)
}

// Result reports one delivery channel's outcome.
type Result struct {
	Channel string
	Err     error
}

// Notifier fans a lead out to the configured channels. Implementations must
// attempt every channel and report per-channel outcomes instead of failing
// on the first error.
type Notifier interface {
	SendLead(ctx context.Context, lead Lead) []Result
}

// Multi attempts each wrapped channel independently.
type Multi []Notifier

func (m Multi) SendLead(ctx context.Context, lead Lead) []Result {
	var results []Result

	for _, n := range m {
		results = append(results, n.SendLead(ctx, lead)...)
	}

	return results
}
