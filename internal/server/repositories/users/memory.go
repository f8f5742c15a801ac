package users

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[user.UserName]; ok {
		return nil, fmt.Errorf("user %s: %w", user.UserName, common.ErrorConflict)
	}
	if user.Role == common.RoleInstructor {
		for _, u := range r.items {
			if u.Role == common.RoleInstructor {
				return nil, fmt.Errorf("instructor already registered: %w", common.ErrorUnauthorized)
			}
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	stored := *user
	r.items[user.UserName] = &stored

	return user, nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[login]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", login, common.ErrorNotFound)
	}
	c := *u
	c.Logins = slices.Clone(u.Logins)
	return &c, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.User, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, &models.User{ID: u.ID, UserName: u.UserName, Role: u.Role, CreatedAt: u.CreatedAt})
	}
	slices.SortFunc(out, func(a, b *models.User) int { return strings.Compare(a.UserName, b.UserName) })
	return out, nil
}

func (r *MemoryRepository) HasInstructor(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Role == common.RoleInstructor {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) AddLogin(ctx context.Context, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.ID == userID {
			u.Logins = append(u.Logins, at)
			return nil
		}
	}
	return fmt.Errorf("user id %s: %w", userID, common.ErrorNotFound)
}
