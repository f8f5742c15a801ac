package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/server/models"
)

// Versions walks the lastVersion pointers back from guid and returns one
// descriptor per hop, newest first. Only the starting version is access
// checked. A missing predecessor ends the chain.
func (s *DocumentService) Versions(ctx context.Context, guid, requester string) ([]models.VersionInfo, error) {
	start, err := s.authorize(ctx, guid, requester)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Assets(s.repomanager.Conn())
	seen := map[string]struct{}{}
	var chain []models.VersionInfo

	for cur := start; ; {
		if _, loop := seen[cur.GUID]; loop {
			return nil, fmt.Errorf("%w: version chain of %s loops at %s", common.ErrorInternal, guid, cur.GUID)
		}
		seen[cur.GUID] = struct{}{}

		chain = append(chain, models.VersionInfo{
			GUID:          cur.GUID,
			LastChangedAt: cur.LastChangedAt,
			LastChangedBy: cur.LastChangedBy,
		})

		if cur.IsFirstVersion() {
			return chain, nil
		}

		prev, err := repo.Get(ctx, cur.LastVersion)
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "version chain truncated", "guid", cur.GUID, "missing", cur.LastVersion)
			return chain, nil
		}
		if err != nil {
			return nil, err
		}
		cur = prev
	}
}
