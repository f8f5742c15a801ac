package assets

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"guid", "original_name", "mime_type", "owner", "last_changed_by", "last_changed_at",
	"active", "authorized_users", "last_version", "first_version", "source_of_publish",
}

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

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a := &models.Asset{GUID: "g1", Owner: "alice", LastChangedBy: "alice", LastChangedAt: ts, Active: true, FirstVersion: "g1"}
	b := &models.Asset{GUID: "g2", Owner: "bob", LastChangedBy: "bob", LastChangedAt: ts, Active: true,
		AuthorizedUsers: []string{"carol"}, LastVersion: "g1", FirstVersion: "g1", SourceOfPublish: "src"}

	q := `(?s)^INSERT\s+INTO\s+assets\s*\(guid,.*source_of_publish\)\s*VALUES\s*\(\$1,.*\$11\)\s*$`
	mock.ExpectExec(q).
		WithArgs("g1", "", "", "alice", "alice", ts, true, "[]", nil, "g1", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).
		WithArgs("g2", "", "", "bob", "bob", ts, true, `["carol"]`, "g1", "g1", "src").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), a, b))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+assets`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &models.Asset{GUID: "g1", FirstVersion: "g1"})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+assets`).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.Asset{GUID: "g1", FirstVersion: "g1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow("g2", "doc.json", "application/json", "alice", "bob", ts, true, []byte(`["bob"]`), "g1", "g1", nil)

	mock.ExpectQuery(`(?s)^SELECT\s+guid,.*FROM\s+assets\s+WHERE\s+guid\s*=\s*\$1\s*$`).
		WithArgs("g2").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "g2")
	require.NoError(t, err)

	want := &models.Asset{
		GUID: "g2", OriginalName: "doc.json", MimeType: "application/json", Owner: "alice", LastChangedBy: "bob",
		LastChangedAt: ts, Active: true, AuthorizedUsers: []string{"bob"}, LastVersion: "g1", FirstVersion: "g1",
	}
	assert.Equal(t, want, got)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+assets`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetAllOfUser_FiltersByOwnerOrACL(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow("g2", "", "", "alice", "alice", ts, true, `[]`, nil, "g2", nil).
		AddRow("g1", "", "", "bob", "bob", ts.Add(-time.Hour), true, `["alice"]`, nil, "g1", nil)

	mock.ExpectQuery(`(?s)WHERE\s+owner\s*=\s*\$1\s+OR\s+authorized_users\s*@>\s*jsonb_build_array\(\$1::text\)`).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetAllOfUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "g2", got[0].GUID)
	assert.Equal(t, []string{"alice"}, got[1].AuthorizedUsers)
}

func TestGetByFirstVersion(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	ts := time.Now().UTC()
	rows := sqlmock.NewRows(columns).
		AddRow("g2", "", "", "alice", "alice", ts, true, `[]`, "g1", "g1", nil)

	mock.ExpectQuery(`(?s)WHERE\s+first_version\s*=\s*\$1\s+AND\s+\(owner\s*=\s*\$2`).
		WithArgs("g1", "alice").
		WillReturnRows(rows)

	got, err := repo.GetByFirstVersion(context.Background(), "g1", "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "g1", got[0].LastVersion)
}

func TestGetPublishSourcesAndCopies(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	ts := time.Now().UTC()
	mock.ExpectQuery(`(?s)WHERE\s+guid\s*=\s*source_of_publish`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("s", "", "", "prof", "prof", ts, true, `[]`, nil, "s", "s"))
	mock.ExpectQuery(`(?s)WHERE\s+source_of_publish\s*=\s*\$1\s+AND\s+guid\s*<>\s*\$1`).
		WithArgs("s").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("c1", "", "", "x", "x", ts, true, `[]`, nil, "c1", "s"))

	sources, err := repo.GetPublishSources(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.True(t, sources[0].IsPublishSource())

	copies, err := repo.GetPublishedFrom(context.Background(), "s")
	require.NoError(t, err)
	require.Len(t, copies, 1)
	assert.Equal(t, "s", copies[0].SourceOfPublish)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+assets`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("g", "", "", "a", "a", time.Now(), true, `not-json`, nil, "g", nil))

	_, err := repo.GetAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authorized_users")
}

func TestUpdate_AuthorizedUsers(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^UPDATE assets SET authorized_users = \$1 WHERE guid = \$2$`).
		WithArgs(`["bob","carol"]`, "g1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	users := []string{"bob", "carol"}
	require.NoError(t, repo.Update(context.Background(), "g1", Update{AuthorizedUsers: &users}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_BothFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^UPDATE assets SET authorized_users = \$1, active = \$2 WHERE guid = \$3$`).
		WithArgs(`[]`, false, "g1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	users := []string{}
	active := false
	require.NoError(t, repo.Update(context.Background(), "g1", Update{AuthorizedUsers: &users, Active: &active}))
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE assets`).WillReturnResult(sqlmock.NewResult(0, 0))

	active := true
	err := repo.Update(context.Background(), "ghost", Update{Active: &active})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	require.NoError(t, repo.Update(context.Background(), "g1", Update{}))
	require.NoError(t, mock.ExpectationsWereMet())
}
