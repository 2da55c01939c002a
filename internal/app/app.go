// Package app wires the bot's dependencies together and runs them.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maisondecafe/kiosk-bot/internal/assistant"
	"github.com/maisondecafe/kiosk-bot/internal/bot"
	"github.com/maisondecafe/kiosk-bot/internal/config"
	"github.com/maisondecafe/kiosk-bot/internal/leadform"
	"github.com/maisondecafe/kiosk-bot/internal/notify"
	"github.com/maisondecafe/kiosk-bot/internal/observability"
	"github.com/maisondecafe/kiosk-bot/internal/session"
	"github.com/maisondecafe/kiosk-bot/internal/verifier"
)

// App holds the application dependencies and runs the bot.
type App struct {
	cfg    *config.Config
	store  session.Store
	bot    *bot.Bot
	logger *zerolog.Logger
}

func New(cfg *config.Config, store session.Store, logger *zerolog.Logger) (*App, error) {
	assistantClient := assistant.NewOpenAI(cfg, logger)

	rewriter := verifier.NewOpenAIRewriter(cfg.OpenAIAPIKey, cfg.VerifierModel)
	verif := verifier.New(verifier.DefaultPolicy(), rewriter, logger)

	b, err := bot.New(cfg, store, assistantClient, verif, logger)
	if err != nil {
		return nil, fmt.Errorf("bot init: %w", err)
	}

	notifiers := notify.Multi{notify.NewTelegramNotifier(b.API(), cfg.OwnerTelegramID)}
	if cfg.SMTPConfigured() {
		notifiers = append(notifiers, notify.NewEmailNotifier(notify.EmailConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
			To:   cfg.SMTPTo,
		}))
		logger.Info().Str("smtp_host", cfg.SMTPHost).Msg("Email lead delivery enabled")
	}

	b.SetLeadForm(leadform.New(notifiers, logger))

	return &App{
		cfg:    cfg,
		store:  store,
		bot:    b,
		logger: logger,
	}, nil
}

// StartHealthServer starts the health check and metrics server.
func (a *App) StartHealthServer(ctx context.Context) error {
	return observability.NewServer(a.store, a.cfg.HealthPort, a.logger).Start(ctx)
}

// Run long-polls Telegram updates until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	return a.bot.Run(ctx)
}
