package repository

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql methods shared by *sql.DB and *sql.Tx.
// Write methods take a DBTX so services can group multi-step mutations into a
// single transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
