package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ConnectPostgres opens a pool, pings it and makes sure the schema exists.
func ConnectPostgres(ctx context.Context, dsn string, log *zap.Logger) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	log.Info("connected to postgres", zap.String("host", config.ConnConfig.Host))

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	log.Info("schema initialized")
	return pool, nil
}

// initSchema creates the two tables the site uses. Both are created with
// IF NOT EXISTS so boot is idempotent.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id VARCHAR(64) PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			category TEXT NOT NULL,
			image TEXT NOT NULL,
			tags TEXT[],
			position INTEGER NOT NULL DEFAULT 0
		)
	`
	if _, err := pool.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CONTACT SUBMISSIONS (APPEND ONLY)
	// -------------------------------
	contactSQL := `
		CREATE TABLE IF NOT EXISTS contact_submissions (
			id UUID PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NULL,
			reservation_date TEXT NULL,
			party_size TEXT NULL,
			special_requests TEXT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, contactSQL); err != nil {
		return err
	}

	return nil
}
