package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

const defaultTimeout = 10 * time.Second

// uniqueViolation is the SQLSTATE postgres reports for a unique constraint hit.
const uniqueViolation = "23505"

//go:embed schema.sql
var schema string

// Store owns the connection pool and exposes the repositories built on it.
type Store struct {
	db       *sql.DB
	Users    *UserRepository
	Visitors *VisitorRepository
}

// Open connects to dsn, pings the server and applies the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{
		db:       db,
		Users:    NewUserRepository(db),
		Visitors: NewVisitorRepository(db),
	}, nil
}

// Ping is used by the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close(context.Context) error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
