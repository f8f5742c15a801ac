// Package dbx holds the database plumbing shared by the Postgres
// repositories: the DBTX handle, transaction scoping and SQLSTATE checks.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is what a repository needs from a connection. *sql.DB and *sql.Tx
// both implement it, so one repository type serves both.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFunc is run by WithTx with the transaction as its handle.
type TxFunc func(ctx context.Context, tx DBTX) error

// WithTx runs fn in a transaction on db. The transaction commits when fn
// returns nil and rolls back when it returns an error or panics; a panic
// is re-raised after the rollback.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFunc) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		_ = tx.Rollback()
		if p := recover(); p != nil {
			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	committed = true
	return tx.Commit()
}
