// Package leadform implements the linear lead-intake form: name, phone,
// email, free-text message, then operator hand-off.
package leadform

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
	"github.com/maisondecafe/kiosk-bot/internal/notify"
	"github.com/maisondecafe/kiosk-bot/internal/observability"
	"github.com/maisondecafe/kiosk-bot/internal/session"
)

const minPhoneDigits = 7

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Form advances lead state and delivers completed leads. The zero step order
// is fixed: Name -> Phone -> Email -> Message.
type Form struct {
	notifier notify.Notifier
	logger   *zerolog.Logger
	now      func() time.Time
}

func New(notifier notify.Notifier, logger *zerolog.Logger) *Form {
	return &Form{
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Reply is what the handler should send back to the user after a step.
type Reply struct {
	Key  locale.TextKey
	Args []interface{}
}

// Start puts the session at the first step.
func (f *Form) Start(s *session.Session) Reply {
	s.Lead = &session.LeadState{Step: session.LeadName}

	return Reply{Key: locale.TextLeadStart}
}

// Step consumes one user message for the current step. It returns the reply
// to show and whether the form is still in progress afterwards.
func (f *Form) Step(ctx context.Context, s *session.Session, username, text string) (Reply, bool) {
	if s.Lead == nil || s.Lead.Step == session.LeadNone {
		return Reply{}, false
	}

	if locale.IsCancelWord(text) {
		s.Lead = nil

		return Reply{Key: locale.TextLeadCancelled}, false
	}

	text = strings.TrimSpace(text)

	switch s.Lead.Step {
	case session.LeadName:
		s.Lead.Name = text
		s.Lead.Step = session.LeadPhone

		return Reply{Key: locale.TextLeadPhone}, true

	case session.LeadPhone:
		if countDigits(text) < minPhoneDigits {
			return Reply{Key: locale.TextLeadBadPhone}, true
		}

		s.Lead.Phone = text
		s.Lead.Step = session.LeadEmail

		return Reply{Key: locale.TextLeadEmail}, true

	case session.LeadEmail:
		if !emailRe.MatchString(text) {
			return Reply{Key: locale.TextLeadBadEmail}, true
		}

		s.Lead.Email = text
		s.Lead.Step = session.LeadMessage

		return Reply{Key: locale.TextLeadMessage}, true

	case session.LeadMessage:
		s.Lead.Message = text
		note := f.finish(ctx, s, username)
		s.Lead = nil

		return Reply{Key: locale.TextLeadDone, Args: []interface{}{note}}, false
	}

	return Reply{}, false
}

// finish formats the lead summary and fans it out to every delivery channel.
// Channel failures are logged and reduced to the confirmation footnote; they
// never abort the flow.
func (f *Form) finish(ctx context.Context, s *session.Session, username string) string {
	lead := notify.Lead{
		ID:        uuid.NewString(),
		UserID:    s.UserID,
		Username:  username,
		Name:      s.Lead.Name,
		Phone:     s.Lead.Phone,
		Email:     s.Lead.Email,
		Message:   s.Lead.Message,
		CreatedAt: f.now().UTC(),
	}

	results := f.notifier.SendLead(ctx, lead)

	for _, res := range results {
		if res.Err != nil {
			observability.LeadsSubmitted.WithLabelValues(res.Channel, "error").Inc()
			f.logger.Error().Err(res.Err).Str("channel", res.Channel).Str("lead_id", lead.ID).Msg("lead delivery failed")
		} else {
			observability.LeadsSubmitted.WithLabelValues(res.Channel, "ok").Inc()
			f.logger.Info().Str("channel", res.Channel).Str("lead_id", lead.ID).Msg("lead delivered")
		}
	}

	return deliveryNote(results)
}

func deliveryNote(results []notify.Result) string {
	var ok []string

	for _, res := range results {
		if res.Err == nil {
			ok = append(ok, res.Channel)
		}
	}

	if len(ok) == 0 {
		return ""
	}

	return fmt.Sprintf("(%s ✅)", strings.Join(ok, ", "))
}

func countDigits(s string) int {
	n := 0

	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}

	return n
}
