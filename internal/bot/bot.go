// Package bot owns the Telegram transport and the intent router that decides
// which handler gets each incoming turn.
package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/maisondecafe/kiosk-bot/internal/assistant"
	"github.com/maisondecafe/kiosk-bot/internal/config"
	"github.com/maisondecafe/kiosk-bot/internal/guard"
	"github.com/maisondecafe/kiosk-bot/internal/leadform"
	"github.com/maisondecafe/kiosk-bot/internal/locale"
	"github.com/maisondecafe/kiosk-bot/internal/session"
	"github.com/maisondecafe/kiosk-bot/internal/verifier"
)

const updateTimeoutSeconds = 60

// telegramSender is the narrow slice of the Telegram API the handlers use.
type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFileDirectURL(fileID string) (string, error)
}

type Bot struct {
	cfg       *config.Config
	api       *tgbotapi.BotAPI
	sender    telegramSender
	store     session.Store
	assistant assistant.Client
	verifier  *verifier.Verifier
	leads     *leadform.Form
	limiter   *guard.RateLimiter
	logger    *zerolog.Logger
}

func New(
	cfg *config.Config,
	store session.Store,
	assistantClient assistant.Client,
	verif *verifier.Verifier,
	logger *zerolog.Logger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram api init: %w", err)
	}

	return &Bot{
		cfg:       cfg,
		api:       api,
		sender:    api,
		store:     store,
		assistant: assistantClient,
		verifier:  verif,
		limiter:   guard.NewRateLimiter(cfg.RateLimitMessages, cfg.RateLimitWindow, cfg.RateLimitCooldown),
		logger:    logger,
	}, nil
}

// SetLeadForm attaches the lead form after construction. The form's owner DM
// channel needs the bot's own API client, so it cannot exist before New.
func (b *Bot) SetLeadForm(f *leadform.Form) {
	b.leads = f
}

// API exposes the underlying client so lead delivery can share the bot token.
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

// Run long-polls for updates until ctx is done. Each update is handled in
// its own goroutine so one slow assistant run does not stall other users.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info().Str("username", b.api.Self.UserName).Msg("Bot started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			go b.handleUpdate(ctx, update.Message)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	blocked, err := b.store.IsBlocked(ctx, userID)
	if err != nil {
		b.logger.Error().Err(err).Int64("user_id", userID).Msg("blocklist check failed")
	}

	if blocked {
		return
	}

	switch {
	case msg.IsCommand():
		b.handleCommand(ctx, msg)
	case msg.Voice != nil:
		b.handleVoice(ctx, msg)
	case msg.Text != "":
		b.handleText(ctx, msg, msg.Text)
	default:
		// Photos, documents, stickers and the rest.
		s := b.session(ctx, userID)
		b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextNoFiles), b.mainKeyboard(s.Language))
	}
}

func (b *Bot) session(ctx context.Context, userID int64) *session.Session {
	s, err := b.store.Get(ctx, userID)
	if err != nil {
		b.logger.Error().Err(err).Int64("user_id", userID).Msg("session load failed")

		return &session.Session{UserID: userID, Language: locale.Language(b.cfg.DefaultLanguage)}
	}

	return s
}

func (b *Bot) saveSession(ctx context.Context, s *session.Session) {
	if err := b.store.Put(ctx, s); err != nil {
		b.logger.Error().Err(err).Int64("user_id", s.UserID).Msg("session save failed")
	}
}

func (b *Bot) reply(chatID int64, text string, keyboard interface{}) {
	if text == "" {
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}

	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send reply")
	}
}
