package bot

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/maisondecafe/kiosk-bot/internal/guard"
	"github.com/maisondecafe/kiosk-bot/internal/locale"
	"github.com/maisondecafe/kiosk-bot/internal/observability"
)

const (
	voiceDownloadTimeout = 30 * time.Second
	maxVoiceBytes        = 20 << 20
)

// handleVoice transcribes a voice clip and feeds the transcript through the
// same routing as typed text. Rate limiting happens here, before the
// download, so voice spam cannot burn transcription quota.
func (b *Bot) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	s := b.session(ctx, msg.From.ID)

	switch b.limiter.Check(msg.From.ID) {
	case guard.Drop:
		observability.SpamRejected.WithLabelValues("cooldown").Inc()
		return
	case guard.Cooldown:
		observability.SpamRejected.WithLabelValues("rate_limit").Inc()
		b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextSpamStop), b.mainKeyboard(s.Language))

		return
	}

	transcript, err := b.transcribeVoice(ctx, msg.Voice)
	if err != nil {
		b.logger.Error().Err(err).Int64("user_id", msg.From.ID).Msg("voice transcription failed")
		observability.UpdatesHandled.WithLabelValues("voice_failed").Inc()
		b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextVoiceFail), nil)

		return
	}

	if strings.TrimSpace(transcript) == "" {
		observability.UpdatesHandled.WithLabelValues("voice_empty").Inc()
		b.reply(msg.Chat.ID, locale.Text(s.Language, locale.TextVoiceFail), nil)

		return
	}

	b.logger.Debug().Int64("user_id", msg.From.ID).Str("transcript", transcript).Msg("voice transcribed")
	observability.UpdatesHandled.WithLabelValues("voice").Inc()

	b.routeText(ctx, msg, transcript)
}

func (b *Bot) transcribeVoice(ctx context.Context, voice *tgbotapi.Voice) (string, error) {
	if voice.FileSize > maxVoiceBytes {
		return "", fmt.Errorf("voice file too large: %d bytes", voice.FileSize)
	}

	url, err := b.sender.GetFileDirectURL(voice.FileID)
	if err != nil {
		return "", fmt.Errorf("resolve file url: %w", err)
	}

	dctx, cancel := context.WithTimeout(ctx, voiceDownloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(dctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build download request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download voice: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download voice: status %d", resp.StatusCode)
	}

	// Telegram serves voice notes as OGG/Opus; the extension tells the
	// transcription API the container format.
	return b.assistant.Transcribe(ctx, resp.Body, voice.FileID+".ogg")
}
