package repomanager

import (
	"context"

	"github.com/dmitrijs2005/docledger/internal/dbx"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/assets"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/records"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves every caller the same in-memory
// repositories and ignores the DBTX argument.
//
// WithTx gives no isolation and no rollback: writes made before fn fails
// stay in place.
type InMemoryRepositoryManager struct {
	users   *users.MemoryRepository
	assets  *assets.MemoryRepository
	records *records.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:   users.NewMemoryRepository(),
		assets:  assets.NewMemoryRepository(),
		records: records.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Conn() dbx.DBTX {
	return nil
}

func (m *InMemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Assets(dbx.DBTX) assets.Repository {
	return m.assets
}

func (m *InMemoryRepositoryManager) Records(dbx.DBTX) records.Repository {
	return m.records
}
