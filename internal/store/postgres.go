package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hoopgrid/hoopgrid-server/internal/battle"
)

const battlesSchema = `
CREATE TABLE IF NOT EXISTS battles (
	code        TEXT PRIMARY KEY,
	state       JSONB NOT NULL,
	host_name   TEXT NOT NULL,
	difficulty  TEXT NOT NULL,
	has_guest   BOOLEAN NOT NULL DEFAULT FALSE,
	finished    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS battles_waiting_idx ON battles (created_at DESC) WHERE NOT has_guest AND NOT finished;
`

// Postgres stores battle sessions in a battles table, one JSONB row per
// code with a few extracted columns for listing and retention queries.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgres connects a pool and ensures the schema exists.
func NewPostgres(ctx context.Context, dsn string, logger *zap.Logger) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, battlesSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure battles schema: %w", err)
	}

	stats := pool.Stat()
	logger.Info("battle store connected",
		zap.Int32("total_conns", stats.TotalConns()),
		zap.Int32("idle_conns", stats.IdleConns()),
	)
	return &Postgres{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// Get loads a session by code.
func (p *Postgres) Get(ctx context.Context, code string) (*battle.Session, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx, `SELECT state FROM battles WHERE code = $1`, code).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, battle.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load battle %s: %w", code, err)
	}

	var session battle.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode battle %s: %w", code, err)
	}
	return &session, nil
}

// Put overwrites the stored session.
func (p *Postgres) Put(ctx context.Context, session *battle.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode battle %s: %w", session.Code, err)
	}
	tag, err := p.pool.Exec(ctx, `
		UPDATE battles
		SET state = $2, has_guest = $3, finished = $4, updated_at = now()
		WHERE code = $1`,
		session.Code, raw, session.Guest != nil, session.RoundStatus == battle.StatusFinished,
	)
	if err != nil {
		return fmt.Errorf("update battle %s: %w", session.Code, err)
	}
	if tag.RowsAffected() == 0 {
		return battle.ErrNotFound
	}
	return nil
}

// Create inserts a new session, reporting code collisions as ErrCodeTaken.
func (p *Postgres) Create(ctx context.Context, session *battle.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode battle %s: %w", session.Code, err)
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO battles (code, state, host_name, difficulty, has_guest, finished, created_at)
		VALUES ($1, $2, $3, $4, FALSE, FALSE, $5)`,
		session.Code, raw, session.Host.Name, string(session.Difficulty), session.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return battle.ErrCodeTaken
		}
		return fmt.Errorf("insert battle %s: %w", session.Code, err)
	}
	return nil
}

// DeleteOlderThan removes battles created more than age ago.
func (p *Postgres) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM battles WHERE created_at < $1`, time.Now().Add(-age))
	if err != nil {
		return 0, fmt.Errorf("delete stale battles: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListWaiting returns recent battles without a guest, newest first.
func (p *Postgres) ListWaiting(ctx context.Context, limit int) ([]battle.WaitingBattle, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := p.pool.Query(ctx, `
		SELECT code, host_name, difficulty, created_at
		FROM battles
		WHERE NOT has_guest AND NOT finished AND created_at > $1
		ORDER BY created_at DESC
		LIMIT $2`,
		time.Now().Add(-24*time.Hour), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list waiting battles: %w", err)
	}
	defer rows.Close()

	var waiting []battle.WaitingBattle
	for rows.Next() {
		var w battle.WaitingBattle
		if err := rows.Scan(&w.Code, &w.HostName, &w.Difficulty, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan waiting battle: %w", err)
		}
		waiting = append(waiting, w)
	}
	return waiting, rows.Err()
}
