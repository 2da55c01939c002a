package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
	"github.com/maisondecafe/kiosk-bot/migrations"
)

const migrationLockID = int64(48112)

// PostgresStore persists sessions and the blocklist in Postgres. Lead form
// progress stays in memory, matching the file store.
type PostgresStore struct {
	pool        *pgxpool.Pool
	defaultLang locale.Language
	logger      *zerolog.Logger

	leads *MemoryStore
}

func NewPostgresStore(ctx context.Context, dsn string, defaultLang locale.Language, logger *zerolog.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect sessions db: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping sessions db: %w", err)
	}

	return &PostgresStore{
		pool:        pool,
		defaultLang: defaultLang,
		logger:      logger,
		leads:       NewMemoryStore(defaultLang),
	}, nil
}

type gooseLogger struct {
	logger *zerolog.Logger
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

// Migrate applies the embedded goose migrations, serialized by an advisory
// lock so concurrent starts don't race.
func (p *PostgresStore) Migrate(ctx context.Context) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("acquire advisory lock: %w", err)
	}

	defer func() {
		_, _ = conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", migrationLockID)
	}()

	dbSQL := stdlib.OpenDB(*p.pool.Config().ConnConfig)

	defer func() {
		_ = dbSQL.Close()
	}()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseLogger{logger: p.logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(dbSQL, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func (p *PostgresStore) Get(ctx context.Context, userID int64) (*Session, error) {
	s := newSession(userID, p.defaultLang)

	err := p.pool.QueryRow(ctx,
		`SELECT language, thread_id FROM sessions WHERE user_id = $1`, userID,
	).Scan(&s.Language, &s.ThreadID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if !locale.Valid(string(s.Language)) {
		s.Language = p.defaultLang
	}

	lead, err := p.leads.Get(ctx, userID)
	if err == nil {
		s.Lead = lead.Lead
	}

	return s, nil
}

func (p *PostgresStore) Put(ctx context.Context, s *Session) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO sessions (user_id, language, thread_id, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id)
		 DO UPDATE SET language = $2, thread_id = $3, updated_at = now()`,
		s.UserID, string(s.Language), s.ThreadID,
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}

	return p.leads.Put(ctx, s)
}

func (p *PostgresStore) Block(ctx context.Context, userID int64) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO blocked_users (user_id) VALUES ($1) ON CONFLICT DO NOTHING`, userID)
	if err != nil {
		return fmt.Errorf("block user: %w", err)
	}

	return nil
}

func (p *PostgresStore) Unblock(ctx context.Context, userID int64) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM blocked_users WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("unblock user: %w", err)
	}

	return nil
}

func (p *PostgresStore) IsBlocked(ctx context.Context, userID int64) (bool, error) {
	var blocked bool

	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM blocked_users WHERE user_id = $1)`, userID,
	).Scan(&blocked)
	if err != nil {
		return false, fmt.Errorf("check blocked: %w", err)
	}

	return blocked, nil
}

func (p *PostgresStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats

	err := p.pool.QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE thread_id <> '') FROM sessions`,
	).Scan(&st.Sessions, &st.Threads)
	if err != nil {
		return Stats{}, fmt.Errorf("session stats: %w", err)
	}

	if err := p.pool.QueryRow(ctx, `SELECT count(*) FROM blocked_users`).Scan(&st.Blocked); err != nil {
		return Stats{}, fmt.Errorf("blocklist stats: %w", err)
	}

	leadStats, err := p.leads.Stats(ctx)
	if err == nil {
		st.Leads = leadStats.Leads
	}

	return st, nil
}

func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
