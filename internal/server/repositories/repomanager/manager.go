package repomanager

import (
	"context"

	"github.com/dmitrijs2005/docledger/internal/dbx"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/assets"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/records"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a connection or a
// transaction, and owns the schema lifecycle.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	// Conn returns the handle for reads outside a transaction.
	Conn() dbx.DBTX
	// WithTx runs fn inside a transaction and commits when fn succeeds.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error
	Users(db dbx.DBTX) users.Repository
	Assets(db dbx.DBTX) assets.Repository
	Records(db dbx.DBTX) records.Repository
}
