package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/dbx"
	"github.com/dmitrijs2005/docledger/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, records ...*models.DataRecord) error {
	query :=
		`INSERT INTO records (guid, data)
		 VALUES ($1, $2)
		 `

	for _, rec := range records {
		if _, err := r.db.ExecContext(ctx, query, rec.GUID, rec.Data); err != nil {
			if dbx.IsUniqueViolation(err) {
				return fmt.Errorf("record %s: %w", rec.GUID, common.ErrorConflict)
			}
			return fmt.Errorf("db error: %w", err)
		}
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, guid string) (*models.DataRecord, error) {
	query :=
		`SELECT guid, data FROM records
		 WHERE guid = $1
		 `

	rec := &models.DataRecord{}
	err := r.db.QueryRowContext(ctx, query, guid).Scan(&rec.GUID, &rec.Data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("record %s: %w", guid, common.ErrorNotFound)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) GetMany(ctx context.Context, guids []string) ([]*models.DataRecord, error) {
	if len(guids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(guids))
	args := make([]any, len(guids))
	for i, g := range guids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = g
	}

	query := `SELECT guid, data FROM records WHERE guid IN (` + strings.Join(placeholders, ", ") + `)`

	return r.list(ctx, query, args...)
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.DataRecord, error) {
	return r.list(ctx, `SELECT guid, data FROM records ORDER BY guid`)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.DataRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.DataRecord
	for rows.Next() {
		rec := &models.DataRecord{}
		if err := rows.Scan(&rec.GUID, &rec.Data); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}
