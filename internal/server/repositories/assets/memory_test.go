package assets

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) *MemoryRepository {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewMemoryRepository()
	require.NoError(t, r.Create(context.Background(),
		&models.Asset{GUID: "a1", Owner: "alice", LastChangedAt: base, FirstVersion: "a1"},
		&models.Asset{GUID: "a2", Owner: "alice", LastChangedAt: base.Add(time.Minute), FirstVersion: "a1", LastVersion: "a1", AuthorizedUsers: []string{"bob"}},
		&models.Asset{GUID: "s", Owner: "prof", LastChangedAt: base, FirstVersion: "s", SourceOfPublish: "s"},
		&models.Asset{GUID: "c", Owner: "bob", LastChangedAt: base.Add(time.Second), FirstVersion: "c", SourceOfPublish: "s"},
	))
	return r
}

func guids(as []*models.Asset) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.GUID)
	}
	return out
}

func TestMemoryRepository_Queries(t *testing.T) {
	ctx := context.Background()
	r := seed(t)

	mine, err := r.GetAllOfUser(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "c"}, guids(mine))

	lineage, err := r.GetByFirstVersion(ctx, "a1", "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a1"}, guids(lineage))

	lineage, err = r.GetByFirstVersion(ctx, "a1", "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, guids(lineage))

	sources, err := r.GetPublishSources(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s"}, guids(sources))

	copies, err := r.GetPublishedFrom(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, guids(copies))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMemoryRepository_CopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := seed(t)

	a, err := r.Get(ctx, "a2")
	require.NoError(t, err)
	a.AuthorizedUsers[0] = "mallory"

	again, err := r.Get(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, again.AuthorizedUsers)
}

func TestMemoryRepository_Errors(t *testing.T) {
	ctx := context.Background()
	r := seed(t)

	_, err := r.Get(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = r.Create(ctx, &models.Asset{GUID: "a1"})
	assert.ErrorIs(t, err, common.ErrorConflict)

	err = r.Update(ctx, "ghost", Update{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	r := seed(t)

	users := []string{"carol"}
	inactive := false
	require.NoError(t, r.Update(ctx, "a1", Update{AuthorizedUsers: &users, Active: &inactive}))

	a, err := r.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"carol"}, a.AuthorizedUsers)
	assert.False(t, a.Active)
}
