package records

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+records\s*\(guid,\s*data\)\s*VALUES\s*\(\$1,\s*\$2\)\s*$`
	mock.ExpectExec(q).WithArgs("g1", "aa").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("g2", "bb").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.DataRecord{GUID: "g1", Data: "aa"}, &models.DataRecord{GUID: "g2", Data: "bb"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+records`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &models.DataRecord{GUID: "g1", Data: "aa"})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+guid,\s*data\s+FROM\s+records\s+WHERE\s+guid\s*=\s*\$1\s*$`).
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows([]string{"guid", "data"}).AddRow("g1", "aa"))

	got, err := repo.Get(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, &models.DataRecord{GUID: "g1", Data: "aa"}, got)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+records`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGet_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+records`).WithArgs("g1").WillReturnError(errors.New("db err"))

	_, err := repo.Get(context.Background(), "g1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetMany(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT guid, data FROM records WHERE guid IN \(\$1, \$2\)$`).
		WithArgs("g1", "g2").
		WillReturnRows(sqlmock.NewRows([]string{"guid", "data"}).AddRow("g1", "aa").AddRow("g2", "bb"))

	got, err := repo.GetMany(context.Background(), []string{"g1", "g2"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetMany_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	got, err := repo.GetMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"guid", "data"}).AddRow("g1", "aa").RowError(0, errors.New("broken"))
	mock.ExpectQuery(`FROM\s+records`).WillReturnRows(rows)

	_, err := repo.GetAll(context.Background())
	require.Error(t, err)
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	require.NoError(t, r.Create(ctx, &models.DataRecord{GUID: "b", Data: "2"}, &models.DataRecord{GUID: "a", Data: "1"}))
	assert.ErrorIs(t, r.Create(ctx, &models.DataRecord{GUID: "a"}), common.ErrorConflict)

	got, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", got.Data)

	_, err = r.Get(ctx, "zzz")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	many, err := r.GetMany(ctx, []string{"a", "zzz"})
	require.NoError(t, err)
	assert.Len(t, many, 1)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].GUID)
}
