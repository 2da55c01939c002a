package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const channelTelegram = "telegram"

// TelegramNotifier sends the lead summary as a direct message to the owner.
type TelegramNotifier struct {
	api     *tgbotapi.BotAPI
	ownerID int64
}

func NewTelegramNotifier(api *tgbotapi.BotAPI, ownerID int64) *TelegramNotifier {
	return &TelegramNotifier{api: api, ownerID: ownerID}
}

func (t *TelegramNotifier) SendLead(_ context.Context, lead Lead) []Result {
	if t.ownerID == 0 {
		return []Result{{Channel: channelTelegram, Err: fmt.Errorf("owner id not configured")}}
	}

	msg := tgbotapi.NewMessage(t.ownerID, lead.Summary())
	if _, err := t.api.Send(msg); err != nil {
		return []Result{{Channel: channelTelegram, Err: fmt.Errorf("send owner dm: %w", err)}}
	}

	return []Result{{Channel: channelTelegram}}
}
