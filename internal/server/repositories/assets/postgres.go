package assets

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/dbx"
	"github.com/dmitrijs2005/docledger/internal/server/models"
)

const assetColumns = `guid, original_name, mime_type, owner, last_changed_by, last_changed_at,
		active, authorized_users, last_version, first_version, source_of_publish`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, assets ...*models.Asset) error {
	query :=
		`INSERT INTO assets (` + assetColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 `

	for _, a := range assets {
		acl, err := encodeUsers(a.AuthorizedUsers)
		if err != nil {
			return err
		}

		_, err = r.db.ExecContext(ctx, query,
			a.GUID, a.OriginalName, a.MimeType, a.Owner, a.LastChangedBy, a.LastChangedAt,
			a.Active, acl, nullString(a.LastVersion), a.FirstVersion, nullString(a.SourceOfPublish))
		if err != nil {
			if dbx.IsUniqueViolation(err) {
				return fmt.Errorf("asset %s: %w", a.GUID, common.ErrorConflict)
			}
			return fmt.Errorf("db error: %w", err)
		}
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, guid string) (*models.Asset, error) {
	query :=
		`SELECT ` + assetColumns + ` FROM assets
		 WHERE guid = $1
		 `

	a, err := scanAsset(r.db.QueryRowContext(ctx, query, guid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset %s: %w", guid, common.ErrorNotFound)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) GetByFirstVersion(ctx context.Context, firstVersion, requester string) ([]*models.Asset, error) {
	query :=
		`SELECT ` + assetColumns + ` FROM assets
		 WHERE first_version = $1
		   AND (owner = $2 OR authorized_users @> jsonb_build_array($2::text))
		 ORDER BY last_changed_at DESC, guid DESC
		 `

	return r.list(ctx, query, firstVersion, requester)
}

func (r *PostgresRepository) GetAllOfUser(ctx context.Context, requester string) ([]*models.Asset, error) {
	query :=
		`SELECT ` + assetColumns + ` FROM assets
		 WHERE owner = $1 OR authorized_users @> jsonb_build_array($1::text)
		 ORDER BY last_changed_at DESC, guid DESC
		 `

	return r.list(ctx, query, requester)
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.Asset, error) {
	query :=
		`SELECT ` + assetColumns + ` FROM assets
		 ORDER BY last_changed_at DESC, guid DESC
		 `

	return r.list(ctx, query)
}

func (r *PostgresRepository) GetPublishSources(ctx context.Context) ([]*models.Asset, error) {
	query :=
		`SELECT ` + assetColumns + ` FROM assets
		 WHERE guid = source_of_publish
		 ORDER BY last_changed_at DESC, guid DESC
		 `

	return r.list(ctx, query)
}

func (r *PostgresRepository) GetPublishedFrom(ctx context.Context, source string) ([]*models.Asset, error) {
	query :=
		`SELECT ` + assetColumns + ` FROM assets
		 WHERE source_of_publish = $1 AND guid <> $1
		 ORDER BY last_changed_at DESC, guid DESC
		 `

	return r.list(ctx, query, source)
}

func (r *PostgresRepository) Update(ctx context.Context, guid string, upd Update) error {
	var (
		sets []string
		args []any
	)

	if upd.AuthorizedUsers != nil {
		acl, err := encodeUsers(*upd.AuthorizedUsers)
		if err != nil {
			return err
		}
		args = append(args, acl)
		sets = append(sets, fmt.Sprintf("authorized_users = $%d", len(args)))
	}
	if upd.Active != nil {
		args = append(args, *upd.Active)
		sets = append(sets, fmt.Sprintf("active = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, guid)
	query := fmt.Sprintf(`UPDATE assets SET %s WHERE guid = $%d`, strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("asset %s: %w", guid, common.ErrorNotFound)
	}

	return nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Asset, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(s scanner) (*models.Asset, error) {
	var (
		a           models.Asset
		acl         []byte
		lastVersion sql.NullString
		source      sql.NullString
	)

	err := s.Scan(&a.GUID, &a.OriginalName, &a.MimeType, &a.Owner, &a.LastChangedBy, &a.LastChangedAt,
		&a.Active, &acl, &lastVersion, &a.FirstVersion, &source)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(acl, &a.AuthorizedUsers); err != nil {
		return nil, fmt.Errorf("decode authorized_users: %w", err)
	}
	if a.AuthorizedUsers == nil {
		a.AuthorizedUsers = []string{}
	}
	a.LastVersion = lastVersion.String
	a.SourceOfPublish = source.String

	return &a, nil
}

func encodeUsers(users []string) (string, error) {
	if users == nil {
		users = []string{}
	}
	b, err := json.Marshal(users)
	if err != nil {
		return "", fmt.Errorf("encode authorized_users: %w", err)
	}
	return string(b), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
