package access

import (
	"testing"

	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	a := &models.Asset{GUID: "g", Owner: "alice", AuthorizedUsers: []string{"bob"}}

	tests := []struct {
		name      string
		asset     *models.Asset
		requester string
		want      bool
	}{
		{"owner", a, "alice", true},
		{"authorized", a, "bob", true},
		{"stranger", a, "carol", false},
		{"empty requester", a, "", false},
		{"nil asset", nil, "alice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.asset, tt.requester))
		})
	}
}

func TestPlanGrant(t *testing.T) {
	a := &models.Asset{GUID: "g", Owner: "alice", AuthorizedUsers: []string{"bob"}}
	known := func(u string) bool { return u != "ghost" }

	plan := PlanGrant(a, []string{"Carol", "carol", "ALICE", "bob", " dave ", "ghost", ""}, known)

	assert.Equal(t, []string{"carol", "dave"}, plan.Added)
	assert.Equal(t, []string{"ghost"}, plan.Unknown)
	assert.Equal(t, []string{"bob", "carol", "dave"}, plan.AuthorizedUsers)
	assert.Equal(t, []string{"bob"}, a.AuthorizedUsers, "asset must not be mutated")
}

func TestPlanGrant_NothingToAdd(t *testing.T) {
	a := &models.Asset{GUID: "g", Owner: "alice"}

	plan := PlanGrant(a, []string{"alice"}, func(string) bool { return true })

	assert.Empty(t, plan.Added)
	assert.NotNil(t, plan.Added)
	assert.Equal(t, []string{}, plan.AuthorizedUsers)
}

func TestRevoke(t *testing.T) {
	a := &models.Asset{GUID: "g", Owner: "alice", AuthorizedUsers: []string{"bob", "carol"}}

	out, removed := Revoke(a, "BOB")
	assert.True(t, removed)
	assert.Equal(t, []string{"carol"}, out)

	out, removed = Revoke(a, "zed")
	assert.False(t, removed)
	assert.Equal(t, []string{"bob", "carol"}, out)
}
