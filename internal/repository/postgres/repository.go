package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/BloggingApp/dailylight-service/internal/config"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const postsTableSQL = `CREATE TABLE IF NOT EXISTS posts (
	id UUID PRIMARY KEY,
	quote TEXT NOT NULL,
	reference TEXT NOT NULL,
	insight TEXT NOT NULL,
	remember TEXT,
	likes BIGINT NOT NULL DEFAULT 0 CHECK (likes >= 0),
	date DATE NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, cfg.DSN())
}

// EnsureSchema creates the posts table and its unique date index if missing.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, postsTableSQL); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
