package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisondecafe/kiosk-bot/internal/app"
	"github.com/maisondecafe/kiosk-bot/internal/config"
	"github.com/maisondecafe/kiosk-bot/internal/locale"
	"github.com/maisondecafe/kiosk-bot/internal/platform/proclock"
	"github.com/maisondecafe/kiosk-bot/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.AppEnv)

	lock, err := proclock.Acquire(cfg.LockPath)
	if err != nil {
		if errors.Is(err, proclock.ErrAlreadyRunning) {
			logger.Fatal().Str("lock_path", cfg.LockPath).Msg("another instance is already running")
		}

		logger.Fatal().Err(err).Msg("failed to acquire process lock")
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Error().Err(err).Msg("failed to release process lock")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := newStore(ctx, cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init session store")
	}
	defer store.Close()

	application, err := app.New(cfg, store, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init application")
	}

	go func() {
		if err := application.StartHealthServer(ctx); err != nil {
			logger.Error().Err(err).Msg("health check server error")
		}
	}()

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("application stopped")
			return
		}

		logger.Fatal().Err(err).Msg("application error")
	}
}

func newStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (session.Store, error) {
	lang := locale.Language(cfg.DefaultLanguage)
	if !locale.Valid(cfg.DefaultLanguage) {
		lang = locale.Default
	}

	if cfg.SessionsDSN != "" {
		store, err := session.NewPostgresStore(ctx, cfg.SessionsDSN, lang, logger)
		if err != nil {
			return nil, err
		}

		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}

		logger.Info().Msg("using postgres session store")

		return store, nil
	}

	logger.Info().Str("path", cfg.SessionsPath).Msg("using file session store")

	return session.NewFileStore(cfg.SessionsPath, lang)
}

func newLogger(appEnv string) zerolog.Logger {
	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
