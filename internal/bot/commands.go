package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	b.logger.Info().Str("command", msg.Command()).Int64("user_id", msg.From.ID).Msg("Handling command")

	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "reset":
		b.handleReset(ctx, msg)
	case "status":
		b.handleStatus(ctx, msg)
	case "block":
		b.handleBlock(ctx, msg, true)
	case "unblock":
		b.handleBlock(ctx, msg, false)
	default:
		s := b.session(ctx, msg.From.ID)
		b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextWelcome), b.mainKeyboard(s.Language))
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	s := b.session(ctx, msg.From.ID)
	b.saveSession(ctx, s)

	b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextWelcome), b.mainKeyboard(s.Language))
}

// handleReset discards the caller's conversation thread. Available to every
// user; it only affects their own session.
func (b *Bot) handleReset(ctx context.Context, msg *tgbotapi.Message) {
	s := b.session(ctx, msg.From.ID)
	s.ThreadID = ""
	s.Lead = nil
	b.saveSession(ctx, s)

	b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextThreadReset), b.mainKeyboard(s.Language))
}

func (b *Bot) isOwner(userID int64) bool {
	return b.cfg.OwnerTelegramID != 0 && userID == b.cfg.OwnerTelegramID
}

func (b *Bot) handleStatus(ctx context.Context, msg *tgbotapi.Message) {
	// Unauthorized callers get no reply at all, to not reveal the command.
	if !b.isOwner(msg.From.ID) {
		return
	}

	stats, err := b.store.Stats(ctx)
	if err != nil {
		b.reply(msg.Chat.ID, fmt.Sprintf("Status error: %v", err), nil)
		return
	}

	lines := []string{
		fmt.Sprintf("Sessions: %d", stats.Sessions),
		fmt.Sprintf("Threads: %d", stats.Threads),
		fmt.Sprintf("Lead forms in progress: %d", stats.Leads),
		fmt.Sprintf("Blocked: %d", stats.Blocked),
	}

	b.reply(msg.Chat.ID, strings.Join(lines, "\n"), nil)
}

func (b *Bot) handleBlock(ctx context.Context, msg *tgbotapi.Message, block bool) {
	if !b.isOwner(msg.From.ID) {
		return
	}

	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		b.reply(msg.Chat.ID, fmt.Sprintf("Usage: /%s <telegram_user_id>", msg.Command()), nil)
		return
	}

	targetID, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "Invalid user id", nil)
		return
	}

	if block {
		err = b.store.Block(ctx, targetID)
	} else {
		err = b.store.Unblock(ctx, targetID)
	}

	if err != nil {
		b.logger.Error().Err(err).Int64("target_id", targetID).Bool("block", block).Msg("blocklist update failed")
		b.reply(msg.Chat.ID, fmt.Sprintf("Error: %v", err), nil)

		return
	}

	if block {
		b.reply(msg.Chat.ID, "✅ Blocked.", nil)
	} else {
		b.reply(msg.Chat.ID, "✅ Unblocked.", nil)
	}
}
