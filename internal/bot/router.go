package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/maisondecafe/kiosk-bot/internal/assistant"
	"github.com/maisondecafe/kiosk-bot/internal/calculator"
	"github.com/maisondecafe/kiosk-bot/internal/guard"
	"github.com/maisondecafe/kiosk-bot/internal/locale"
	"github.com/maisondecafe/kiosk-bot/internal/observability"
	"github.com/maisondecafe/kiosk-bot/internal/session"
)

// handleText applies the rate limit and routes the message. Voice transcripts
// enter at routeText instead because their rate-limit slot was already spent
// on the voice message itself.
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message, text string) {
	switch b.limiter.Check(msg.From.ID) {
	case guard.Drop:
		observability.SpamRejected.WithLabelValues("cooldown").Inc()
		return
	case guard.Cooldown:
		observability.SpamRejected.WithLabelValues("rate_limit").Inc()

		s := b.session(ctx, msg.From.ID)
		b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextSpamStop), b.mainKeyboard(s.Language))

		return
	}

	b.routeText(ctx, msg, text)
}

// routeText is the intent router. Priority order: lead form in progress,
// language picker, language choice, menu buttons, calculator cue, assistant
// fallback. Matching is exact string equality against the label tables.
func (b *Bot) routeText(ctx context.Context, msg *tgbotapi.Message, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	userID := msg.From.ID
	s := b.session(ctx, userID)

	if s.Lead != nil && s.Lead.Step != session.LeadNone {
		b.handleLeadStep(ctx, msg, s, text)
		return
	}

	if guard.IsSpam(text) {
		observability.SpamRejected.WithLabelValues("heuristic").Inc()
		b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextSpamStop), b.mainKeyboard(s.Language))

		return
	}

	if lang, ok := locale.MatchLanguageName(text); ok {
		b.setLanguage(ctx, msg, s, lang)
		return
	}

	if action, btnLang, ok := locale.MatchButton(text); ok {
		b.handleMenuAction(ctx, msg, s, action, btnLang)
		return
	}

	if calculator.HasCue(text, s.Language) {
		if cups, ok := calculator.ExtractCups(text, s.Language); ok {
			observability.CalculatorAnswers.Inc()

			result := calculator.Compute(cups)
			b.reply(msg.Chat.ID, calculator.Format(result, s.Language), b.mainKeyboard(s.Language))

			return
		}

		b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextCalcClarify), b.mainKeyboard(s.Language))

		return
	}

	b.askAssistant(ctx, msg, s, text, s.Language, "")
}

func (b *Bot) handleLeadStep(ctx context.Context, msg *tgbotapi.Message, s *session.Session, text string) {
	reply, _ := b.leads.Step(ctx, s, msg.From.UserName, text)
	b.saveSession(ctx, s)

	if reply.Key == "" {
		return
	}

	out := locale.Text(s.Language, reply.Key)
	if len(reply.Args) > 0 {
		out = fmt.Sprintf(out, reply.Args...)
	}

	b.reply(msg.Chat.ID, out, b.mainKeyboard(s.Language))
}

func (b *Bot) setLanguage(ctx context.Context, msg *tgbotapi.Message, s *session.Session, lang locale.Language) {
	s.Language = lang
	b.saveSession(ctx, s)

	confirmation := fmt.Sprintf(locale.Text(lang, locale.TextLangSet), locale.DisplayName(lang))
	b.reply(msg.Chat.ID, confirmation, b.mainKeyboard(lang))
}

func (b *Bot) handleMenuAction(ctx context.Context, msg *tgbotapi.Message, s *session.Session, action locale.Action, btnLang locale.Language) {
	switch action {
	case locale.ActionLanguage:
		b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextChooseLang), b.languageKeyboard())

	case locale.ActionContacts:
		b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextContacts), b.mainKeyboard(s.Language))

	case locale.ActionLead:
		reply := b.leads.Start(s)
		b.saveSession(ctx, s)
		b.reply(msg.Chat.ID, locale.Text(s.Language, reply.Key), b.mainKeyboard(s.Language))

	case locale.ActionPresentation:
		b.sendPresentation(msg.Chat.ID, s.Language)

	default:
		// Content buttons hard-bind the session language to the language of
		// the pressed button.
		if s.Language != btnLang {
			s.Language = btnLang
			b.saveSession(ctx, s)
		}

		commandText := fmt.Sprintf("[BUTTON:%s] %s", action, locale.Label(btnLang, action))
		b.askAssistant(ctx, msg, s, commandText, btnLang, action)
	}
}

func (b *Bot) sendPresentation(chatID int64, lang locale.Language) {
	if b.cfg.PresentationFileID == "" {
		b.reply(chatID, locale.Text(lang, locale.TextPresentationMissing), b.mainKeyboard(lang))
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileID(b.cfg.PresentationFileID))
	doc.Caption = locale.Text(lang, locale.TextPresentation)

	if _, err := b.sender.Send(doc); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send presentation")
		b.reply(chatID, locale.Text(lang, locale.TextGenericError), b.mainKeyboard(lang))
	}
}

// askAssistant runs the LLM pipeline: thread, run, compliance gate, verifier.
// Every failure path degrades to a fixed localized message.
func (b *Bot) askAssistant(ctx context.Context, msg *tgbotapi.Message, s *session.Session, text string, lang locale.Language, action locale.Action) {
	threadID, err := b.assistant.EnsureThread(ctx, s.ThreadID)
	if err != nil {
		b.logger.Error().Err(err).Int64("user_id", s.UserID).Msg("thread create failed")
		observability.UpdatesHandled.WithLabelValues("assistant_error").Inc()
		b.reply(msg.Chat.ID, locale.Text(lang, locale.TextGenericError), b.mainKeyboard(lang))

		return
	}

	if threadID != s.ThreadID {
		s.ThreadID = threadID
		b.saveSession(ctx, s)
	}

	answer, err := b.assistant.Ask(ctx, threadID, text, lang, action)
	if err != nil {
		b.logger.Error().Err(err).Int64("user_id", s.UserID).Msg("assistant run failed")
		observability.UpdatesHandled.WithLabelValues("assistant_error").Inc()

		if errors.Is(err, assistant.ErrRunTimeout) {
			b.reply(msg.Chat.ID, locale.Text(lang, locale.TextKBMissing), b.mainKeyboard(lang))
		} else {
			b.reply(msg.Chat.ID, locale.Text(lang, locale.TextGenericError), b.mainKeyboard(lang))
		}

		return
	}

	draft := strings.TrimSpace(answer.Text)

	// Compliance gate: an answer that skipped file search is unsourced and
	// must not reach the user.
	if !answer.UsedFileSearch || draft == "" || draft == "kb_missing" {
		observability.UpdatesHandled.WithLabelValues("kb_missing").Inc()
		b.reply(msg.Chat.ID, locale.Text(lang, locale.TextKBMissing), b.mainKeyboard(lang))

		return
	}

	final := b.verifier.Verify(ctx, text, draft, lang)

	observability.UpdatesHandled.WithLabelValues("answered").Inc()
	b.reply(msg.Chat.ID, final, b.mainKeyboard(lang))
}
