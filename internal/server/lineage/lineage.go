// Package lineage resolves the latest version of each document lineage.
package lineage

import (
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/server/models"
)

// Result holds one representative asset per lineage.
type Result struct {
	// Latest is ordered newest first.
	Latest []*models.Asset
	// ChangedAt maps each representative guid to its change time.
	ChangedAt map[string]time.Time
}

// GUIDs returns the guids of Latest in order.
func (r *Result) GUIDs() []string {
	out := make([]string, len(r.Latest))
	for i, a := range r.Latest {
		out[i] = a.GUID
	}
	return out
}

// OrganizeToLatest groups assets by FirstVersion and keeps the most
// recently changed asset of each group. Equal change times are broken by
// the lexically greatest guid.
//
// No access checks happen here: callers filter assets first.
func OrganizeToLatest(assets []*models.Asset) (*Result, error) {
	best := make(map[string]*models.Asset)
	for _, a := range assets {
		cur, ok := best[a.FirstVersion]
		if !ok || Newer(a, cur) {
			best[a.FirstVersion] = a
		}
	}

	res := &Result{
		Latest:    make([]*models.Asset, 0, len(best)),
		ChangedAt: make(map[string]time.Time, len(best)),
	}
	for _, a := range best {
		res.Latest = append(res.Latest, a)
		res.ChangedAt[a.GUID] = a.LastChangedAt
	}
	SortNewestFirst(res.Latest)

	if err := checkOnePerLineage(assets, res.Latest); err != nil {
		return nil, err
	}

	return res, nil
}

// Newer reports whether a should be preferred over b as a lineage head.
func Newer(a, b *models.Asset) bool {
	if c := a.LastChangedAt.Compare(b.LastChangedAt); c != 0 {
		return c > 0
	}
	return a.GUID > b.GUID
}

// SortNewestFirst orders assets by change time, newest first, using the
// same tie-break as Newer.
func SortNewestFirst(assets []*models.Asset) {
	slices.SortStableFunc(assets, func(x, y *models.Asset) int {
		switch {
		case Newer(x, y):
			return -1
		case Newer(y, x):
			return 1
		}
		return 0
	})
}

func checkOnePerLineage(in, out []*models.Asset) error {
	lineages := make(map[string]struct{}, len(in))
	for _, a := range in {
		lineages[a.FirstVersion] = struct{}{}
	}

	seen := make(map[string]struct{}, len(out))
	for _, a := range out {
		if _, dup := seen[a.FirstVersion]; dup {
			return fmt.Errorf("%w: lineage %s resolved twice", common.ErrorInternal, a.FirstVersion)
		}
		seen[a.FirstVersion] = struct{}{}
	}

	if len(out) != len(lineages) {
		return fmt.Errorf("%w: resolved %d heads for %d lineages", common.ErrorInternal, len(out), len(lineages))
	}
	return nil
}
