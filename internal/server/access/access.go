// Package access implements the per-record access rules: the read/write
// gate and the grant and revoke mutations of an asset's access list.
//
// Checks are per record. Being authorized on one version of a document
// says nothing about its other versions.
package access

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/docledger/internal/server/models"
)

// Validate reports whether requester owns a or is on its access list.
func Validate(a *models.Asset, requester string) bool {
	if a == nil || requester == "" {
		return false
	}
	return a.Owner == requester || slices.Contains(a.AuthorizedUsers, requester)
}

// NormalizeUsername lower-cases and trims a username.
func NormalizeUsername(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// GrantPlan is the outcome of filtering grant candidates against an asset.
type GrantPlan struct {
	// Added are the usernames to append, in request order.
	Added []string
	// Unknown are candidates that passed the asset filters but are not
	// registered users.
	Unknown []string
	// AuthorizedUsers is the access list after the grant.
	AuthorizedUsers []string
}

// PlanGrant normalizes and deduplicates candidates, drops the owner and
// users already authorized, then drops usernames that known rejects.
func PlanGrant(a *models.Asset, candidates []string, known func(string) bool) GrantPlan {
	seen := make(map[string]struct{}, len(candidates))
	plan := GrantPlan{Added: []string{}}

	for _, c := range candidates {
		u := NormalizeUsername(c)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}

		if u == a.Owner || slices.Contains(a.AuthorizedUsers, u) {
			continue
		}
		if !known(u) {
			plan.Unknown = append(plan.Unknown, u)
			continue
		}
		plan.Added = append(plan.Added, u)
	}

	plan.AuthorizedUsers = append(slices.Clone(a.AuthorizedUsers), plan.Added...)
	if plan.AuthorizedUsers == nil {
		plan.AuthorizedUsers = []string{}
	}
	return plan
}

// Revoke returns a's access list without username and whether it was
// present. Absence is not an error.
func Revoke(a *models.Asset, username string) ([]string, bool) {
	u := NormalizeUsername(username)
	out := make([]string, 0, len(a.AuthorizedUsers))
	removed := false
	for _, v := range a.AuthorizedUsers {
		if v == u {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out, removed
}
