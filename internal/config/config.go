package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string `env:"APP_ENV" envDefault:"local"`
	BotToken        string `env:"BOT_TOKEN,required"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY,required"`
	AssistantID     string `env:"ASSISTANT_ID,required"`
	OwnerTelegramID int64  `env:"OWNER_TELEGRAM_ID"`

	DefaultLanguage    string `env:"DEFAULT_LANGUAGE" envDefault:"ua"`
	PresentationFileID string `env:"PRESENTATION_FILE_ID"`

	// Assistant run tuning
	Temperature     float32       `env:"TEMPERATURE" envDefault:"0"`
	VerifierModel   string        `env:"VERIFIER_MODEL" envDefault:"gpt-4o-mini"`
	TranscribeModel string        `env:"TRANSCRIBE_MODEL" envDefault:"whisper-1"`
	RunPollInterval time.Duration `env:"RUN_POLL_INTERVAL" envDefault:"700ms"`
	RunTimeout      time.Duration `env:"RUN_TIMEOUT" envDefault:"45s"`
	OpenAIRPS       int           `env:"OPENAI_RPS" envDefault:"2"`

	// Per-user inbound rate limit
	RateLimitMessages int           `env:"RATE_LIMIT_MESSAGES" envDefault:"8"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"30s"`
	RateLimitCooldown time.Duration `env:"RATE_LIMIT_COOLDOWN" envDefault:"2m"`

	// Session persistence: SessionsDSN selects the Postgres store, otherwise
	// sessions are kept in SessionsPath as a JSON file.
	SessionsPath string `env:"SESSIONS_PATH" envDefault:"./sessions.json"`
	SessionsDSN  string `env:"SESSIONS_DSN"`

	LockPath   string `env:"LOCK_PATH" envDefault:"/tmp/maison-kiosk-bot.lock"`
	HealthPort int    `env:"HEALTH_PORT" envDefault:"8080"`

	// SMTP lead delivery (optional; leads fall back to owner DM only)
	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	SMTPFrom string `env:"SMTP_FROM"`
	SMTPTo   string `env:"SMTP_TO"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SMTPConfigured reports whether all values needed for email delivery are set.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && c.SMTPTo != ""
}
