// Package records stores the immutable encrypted payloads.
package records

import (
	"context"

	"github.com/dmitrijs2005/docledger/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, records ...*models.DataRecord) error
	Get(ctx context.Context, guid string) (*models.DataRecord, error)
	// GetMany returns the records that exist among guids, in no particular order.
	GetMany(ctx context.Context, guids []string) ([]*models.DataRecord, error)
	GetAll(ctx context.Context) ([]*models.DataRecord, error)
}
