// Package assets stores asset metadata: ownership, access lists and the
// version and publish links between stored records.
package assets

import (
	"context"

	"github.com/dmitrijs2005/docledger/internal/server/models"
)

// Update is a partial asset update. Nil fields are left untouched.
type Update struct {
	AuthorizedUsers *[]string
	Active          *bool
}

type Repository interface {
	Create(ctx context.Context, assets ...*models.Asset) error
	Get(ctx context.Context, guid string) (*models.Asset, error)
	// GetByFirstVersion returns the lineage members readable by requester.
	GetByFirstVersion(ctx context.Context, firstVersion, requester string) ([]*models.Asset, error)
	// GetAllOfUser returns every asset requester owns or is authorized on.
	GetAllOfUser(ctx context.Context, requester string) ([]*models.Asset, error)
	GetAll(ctx context.Context) ([]*models.Asset, error)
	// GetPublishSources returns the canonical copies of published documents.
	GetPublishSources(ctx context.Context) ([]*models.Asset, error)
	// GetPublishedFrom returns recipient copies of the given publish source.
	GetPublishedFrom(ctx context.Context, source string) ([]*models.Asset, error)
	Update(ctx context.Context, guid string, upd Update) error
}
