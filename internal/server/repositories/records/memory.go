package records

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.DataRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.DataRecord)}
}

func (r *MemoryRepository) Create(ctx context.Context, records ...*models.DataRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		if _, ok := r.items[rec.GUID]; ok {
			return fmt.Errorf("record %s: %w", rec.GUID, common.ErrorConflict)
		}
		r.items[rec.GUID] = *rec
	}
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, guid string) (*models.DataRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[guid]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", guid, common.ErrorNotFound)
	}
	return &rec, nil
}

func (r *MemoryRepository) GetMany(ctx context.Context, guids []string) ([]*models.DataRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.DataRecord
	for _, g := range guids {
		if rec, ok := r.items[g]; ok {
			out = append(out, &rec)
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]*models.DataRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.DataRecord, 0, len(r.items))
	for _, rec := range r.items {
		out = append(out, &rec)
	}
	slices.SortFunc(out, func(a, b *models.DataRecord) int { return strings.Compare(a.GUID, b.GUID) })
	return out, nil
}
