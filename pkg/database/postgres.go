package database

import (
	"context"
	"fmt"
	"time"

	"letterboxd/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIface is the subset of a pgx pool the repositories use.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

// DB wraps a pgx pool
type DB struct {
	pool *pgxpool.Pool
}

func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.pool.Query(ctx, sql, args...)
}

func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}

func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return db.pool.Exec(ctx, sql, args...)
}

func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *DB) Close() {
	db.pool.Close()
}

const watchStateSchema = `
CREATE TABLE IF NOT EXISTS watch_states (
	id            UUID PRIMARY KEY,
	movie_id      TEXT NOT NULL,
	user_name     TEXT NOT NULL,
	status        TEXT NOT NULL DEFAULT '',
	rating        SMALLINT NOT NULL DEFAULT 0,
	liked         BOOLEAN NOT NULL DEFAULT FALSE,
	date_added    TEXT NOT NULL DEFAULT '',
	date_watched  TEXT NOT NULL DEFAULT '',
	notes         TEXT NOT NULL DEFAULT '',
	in_watchlist  BOOLEAN NOT NULL DEFAULT FALSE,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (movie_id, user_name)
)`

// tables created before watchlist membership had its own column
const watchStateMigration = `ALTER TABLE watch_states
	ADD COLUMN IF NOT EXISTS in_watchlist BOOLEAN NOT NULL DEFAULT FALSE`

// InitDB opens the pool used by the postgres watch-state backend and makes
// sure its table exists.
func InitDB(config utils.DatabaseConfig) (PgxIface, error) {
	connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s port=%s",
		config.User, config.Password, config.Name, config.Host, config.Port)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	if config.MaxConns > 0 {
		poolConfig.MaxConns = config.MaxConns
	}
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	for _, stmt := range []string{watchStateSchema, watchStateMigration} {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("create watch_states table: %w", err)
		}
	}

	return &DB{pool: pool}, nil
}
