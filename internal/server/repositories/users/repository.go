// Package users stores registered users and their login history.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/docledger/internal/server/models"
)

// Repository persists users. Usernames are stored normalized; lookups by
// an unknown name return common.ErrorNotFound and a duplicate Create
// returns common.ErrorConflict.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	// List returns every user ordered by username.
	List(ctx context.Context) ([]*models.User, error)
	HasInstructor(ctx context.Context) (bool, error)
	// AddLogin appends at to the user's login history.
	AddLogin(ctx context.Context, userID string, at time.Time) error
}
