package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

func (b *Bot) mainKeyboard(lang locale.Language) tgbotapi.ReplyKeyboardMarkup {
	rows := locale.MenuRows(lang)
	kbRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))

	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}

		kbRows = append(kbRows, buttons)
	}

	kb := tgbotapi.NewReplyKeyboard(kbRows...)
	kb.ResizeKeyboard = true

	return kb
}

func (b *Bot) languageKeyboard() tgbotapi.ReplyKeyboardMarkup {
	names := locale.LanguageNames()
	rows := make([][]tgbotapi.KeyboardButton, 0, len(names))

	for _, name := range names {
		rows = append(rows, []tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(name)})
	}

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true

	return kb
}
