package assets

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/server/access"
	"github.com/dmitrijs2005/docledger/internal/server/models"
)

// MemoryRepository keeps assets in process memory. It returns copies, so
// callers cannot mutate stored state.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*models.Asset
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*models.Asset)}
}

func (r *MemoryRepository) Create(ctx context.Context, assets ...*models.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range assets {
		if _, ok := r.items[a.GUID]; ok {
			return fmt.Errorf("asset %s: %w", a.GUID, common.ErrorConflict)
		}
		c := a.Clone()
		if c.AuthorizedUsers == nil {
			c.AuthorizedUsers = []string{}
		}
		r.items[a.GUID] = c
	}
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, guid string) (*models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[guid]
	if !ok {
		return nil, fmt.Errorf("asset %s: %w", guid, common.ErrorNotFound)
	}
	return a.Clone(), nil
}

func (r *MemoryRepository) GetByFirstVersion(ctx context.Context, firstVersion, requester string) ([]*models.Asset, error) {
	return r.filter(func(a *models.Asset) bool {
		return a.FirstVersion == firstVersion && access.Validate(a, requester)
	}), nil
}

func (r *MemoryRepository) GetAllOfUser(ctx context.Context, requester string) ([]*models.Asset, error) {
	return r.filter(func(a *models.Asset) bool {
		return access.Validate(a, requester)
	}), nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]*models.Asset, error) {
	return r.filter(func(*models.Asset) bool { return true }), nil
}

func (r *MemoryRepository) GetPublishSources(ctx context.Context) ([]*models.Asset, error) {
	return r.filter(func(a *models.Asset) bool {
		return a.IsPublishSource()
	}), nil
}

func (r *MemoryRepository) GetPublishedFrom(ctx context.Context, source string) ([]*models.Asset, error) {
	return r.filter(func(a *models.Asset) bool {
		return a.SourceOfPublish == source && a.GUID != source
	}), nil
}

func (r *MemoryRepository) Update(ctx context.Context, guid string, upd Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.items[guid]
	if !ok {
		return fmt.Errorf("asset %s: %w", guid, common.ErrorNotFound)
	}
	if upd.AuthorizedUsers != nil {
		a.AuthorizedUsers = slices.Clone(*upd.AuthorizedUsers)
	}
	if upd.Active != nil {
		a.Active = *upd.Active
	}
	return nil
}

// filter returns matching copies ordered newest first, like the SQL queries.
func (r *MemoryRepository) filter(keep func(*models.Asset) bool) []*models.Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Asset
	for _, a := range r.items {
		if keep(a) {
			out = append(out, a.Clone())
		}
	}

	slices.SortFunc(out, func(x, y *models.Asset) int {
		if c := y.LastChangedAt.Compare(x.LastChangedAt); c != 0 {
			return c
		}
		switch {
		case x.GUID > y.GUID:
			return -1
		case x.GUID < y.GUID:
			return 1
		}
		return 0
	})

	return out
}
