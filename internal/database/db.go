// Package database defines the narrow store contract the usuario and
// historico repositories are written against. The pgx-backed pool in
// database/postgres is the only production implementation.
package database

import (
	"context"
	"database/sql"
)

// DB is the pooled connection handle handed to repositories. Exec reports
// the number of rows affected; SQLDB exposes the stdlib bridge the
// migration runner needs.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Begin(ctx context.Context) (Tx, error)

	SQLDB() *sql.DB
}

// Tx carries the same query surface as DB inside a transaction. Rollback
// after a Commit only reports the already-closed transaction, so a
// deferred Rollback may discard its error.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
