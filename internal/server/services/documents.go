package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/cryptox"
	"github.com/dmitrijs2005/docledger/internal/dbx"
	"github.com/dmitrijs2005/docledger/internal/logging"
	"github.com/dmitrijs2005/docledger/internal/server/access"
	"github.com/dmitrijs2005/docledger/internal/server/lineage"
	"github.com/dmitrijs2005/docledger/internal/server/metrics"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/assets"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/repomanager"
)

// DocumentService implements create, read, update, list, trace and the
// access list operations on stored documents. Callers pass an already
// authenticated requester.
type DocumentService struct {
	sealer
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	metrics     *metrics.Metrics
}

func NewDocumentService(m repomanager.RepositoryManager, codec *cryptox.Codec, log logging.Logger, mt *metrics.Metrics) *DocumentService {
	return &DocumentService{
		sealer:      sealer{codec: codec, now: time.Now},
		repomanager: m,
		log:         log.With("module", "documents"),
		metrics:     mt,
	}
}

func (s *DocumentService) observe(op string, err error) {
	s.metrics.ObserveOperation(op, err)
}

// PostData stores content as the first version of a new document owned by
// username and returns its guid.
func (s *DocumentService) PostData(ctx context.Context, username string, content any) (guid string, err error) {
	defer func() { s.observe("postData", err) }()

	record, asset, err := s.seal(content, s.timestamp())
	if err != nil {
		return "", err
	}
	asset.Owner = username
	asset.LastChangedBy = username

	if err := s.store(ctx, record, asset); err != nil {
		return "", err
	}

	s.log.Info(ctx, "document created", "guid", asset.GUID, "owner", username)
	return asset.GUID, nil
}

// store writes a record and its asset together.
func (s *DocumentService) store(ctx context.Context, record *models.DataRecord, asset *models.Asset) error {
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Records(tx).Create(ctx, record); err != nil {
			return err
		}
		return s.repomanager.Assets(tx).Create(ctx, asset)
	})
	if err != nil {
		s.log.Error(ctx, "error storing document", "guid", asset.GUID, "error", err)
		return fmt.Errorf("error storing document: %w", err)
	}
	return nil
}

// load returns the asset and record of guid, checking existence before
// access.
func (s *DocumentService) load(ctx context.Context, guid, requester string) (*models.Asset, *models.DataRecord, error) {
	conn := s.repomanager.Conn()

	asset, err := s.repomanager.Assets(conn).Get(ctx, guid)
	if err != nil {
		return nil, nil, err
	}

	record, err := s.repomanager.Records(conn).Get(ctx, guid)
	if err != nil {
		return nil, nil, err
	}

	if !access.Validate(asset, requester) {
		return nil, nil, fmt.Errorf("document %s: %w", guid, common.ErrorForbidden)
	}

	return asset, record, nil
}

// authorize returns the asset of guid if requester may read it.
func (s *DocumentService) authorize(ctx context.Context, guid, requester string) (*models.Asset, error) {
	asset, err := s.repomanager.Assets(s.repomanager.Conn()).Get(ctx, guid)
	if err != nil {
		return nil, err
	}
	if !access.Validate(asset, requester) {
		return nil, fmt.Errorf("document %s: %w", guid, common.ErrorForbidden)
	}
	return asset, nil
}

func (s *DocumentService) GetData(ctx context.Context, guid, requester string) (content any, err error) {
	defer func() { s.observe("getData", err) }()

	_, record, err := s.load(ctx, guid, requester)
	if err != nil {
		return nil, err
	}
	return s.open(record)
}

// PutData stores content as a new version following guid and returns the
// new guid. The previous version is left untouched.
func (s *DocumentService) PutData(ctx context.Context, guid, requester string, content any) (newGUID string, err error) {
	defer func() { s.observe("putData", err) }()

	prev, err := s.authorize(ctx, guid, requester)
	if err != nil {
		return "", err
	}

	// versions of one lineage must order by change time
	at := s.timestamp()
	if !at.After(prev.LastChangedAt) {
		at = prev.LastChangedAt.Add(time.Microsecond)
	}

	record, asset, err := s.seal(content, at)
	if err != nil {
		return "", err
	}
	asset.Owner = prev.Owner
	asset.AuthorizedUsers = append([]string{}, prev.AuthorizedUsers...)
	asset.FirstVersion = prev.FirstVersion
	asset.SourceOfPublish = prev.SourceOfPublish
	asset.LastVersion = prev.GUID
	asset.LastChangedBy = requester

	if err := s.store(ctx, record, asset); err != nil {
		return "", err
	}

	s.log.Info(ctx, "document updated", "guid", asset.GUID, "previous", prev.GUID, "by", requester)
	return asset.GUID, nil
}

// GetAllData returns the latest readable version of every document the
// requester can see, most recently changed first.
func (s *DocumentService) GetAllData(ctx context.Context, requester string) (docs []models.Document, err error) {
	defer func() { s.observe("getAllData", err) }()

	conn := s.repomanager.Conn()

	visible, err := s.repomanager.Assets(conn).GetAllOfUser(ctx, requester)
	if err != nil {
		return nil, err
	}

	res, err := lineage.OrganizeToLatest(visible)
	if err != nil {
		s.log.Error(ctx, "lineage resolution failed", "requester", requester, "error", err)
		return nil, err
	}

	return s.openAll(ctx, res.GUIDs())
}

// openAll fetches and decrypts guids, keeping their order.
func (s *DocumentService) openAll(ctx context.Context, guids []string) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(guids))
	if len(guids) == 0 {
		return docs, nil
	}

	records, err := s.repomanager.Records(s.repomanager.Conn()).GetMany(ctx, guids)
	if err != nil {
		return nil, err
	}
	byGUID := make(map[string]*models.DataRecord, len(records))
	for _, r := range records {
		byGUID[r.GUID] = r
	}

	for _, guid := range guids {
		r, ok := byGUID[guid]
		if !ok {
			return nil, fmt.Errorf("record %s: %w", guid, common.ErrorNotFound)
		}
		content, err := s.open(r)
		if err != nil {
			return nil, err
		}
		docs = append(docs, models.Document{GUID: guid, Content: content})
	}
	return docs, nil
}

// GetLatestData returns the most recent version of guid's lineage that the
// requester can read, or guid itself when none resolves.
func (s *DocumentService) GetLatestData(ctx context.Context, guid, requester string) (doc *models.Document, err error) {
	defer func() { s.observe("getLatestData", err) }()

	asset, err := s.authorize(ctx, guid, requester)
	if err != nil {
		return nil, err
	}

	members, err := s.repomanager.Assets(s.repomanager.Conn()).GetByFirstVersion(ctx, asset.FirstVersion, requester)
	if err != nil {
		return nil, err
	}

	latest := guid
	res, err := lineage.OrganizeToLatest(members)
	if err != nil {
		return nil, err
	}
	if len(res.Latest) > 0 {
		latest = res.Latest[0].GUID
	}

	_, record, err := s.load(ctx, latest, requester)
	if err != nil {
		return nil, err
	}
	content, err := s.open(record)
	if err != nil {
		return nil, err
	}
	return &models.Document{GUID: latest, Content: content}, nil
}

// Trace returns the readable history of guid, newest first. Each entry
// carries the lastChangedAt and lastChangedBy of its version. Versions the
// requester cannot read are left out.
func (s *DocumentService) Trace(ctx context.Context, guid, requester string) (out []any, err error) {
	defer func() { s.observe("trace", err) }()

	chain, err := s.Versions(ctx, guid, requester)
	if err != nil {
		return nil, err
	}

	out = make([]any, 0, len(chain))
	for _, v := range chain {
		_, record, err := s.load(ctx, v.GUID, requester)
		if errors.Is(err, common.ErrorForbidden) {
			s.log.Warn(ctx, "trace hop skipped", "guid", v.GUID, "requester", requester)
			continue
		}
		if err != nil {
			return nil, err
		}

		content, err := s.open(record)
		if err != nil {
			return nil, err
		}
		out = append(out, annotate(content, v))
	}
	return out, nil
}

// GrantAccess adds the known candidates to guid's access list and returns
// the usernames actually added.
func (s *DocumentService) GrantAccess(ctx context.Context, guid, requester string, candidates []string) (added []string, err error) {
	defer func() { s.observe("grantAccess", err) }()

	asset, err := s.authorize(ctx, guid, requester)
	if err != nil {
		return nil, err
	}

	conn := s.repomanager.Conn()
	registered, err := s.repomanager.Users(conn).List(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(registered))
	for _, u := range registered {
		known[u.UserName] = struct{}{}
	}

	plan := access.PlanGrant(asset, candidates, func(u string) bool {
		_, ok := known[u]
		return ok
	})
	if len(plan.Unknown) > 0 {
		s.log.Warn(ctx, "unknown users dropped from grant", "guid", guid, "users", plan.Unknown)
	}
	if len(plan.Added) == 0 {
		return plan.Added, nil
	}

	if err := s.repomanager.Assets(conn).Update(ctx, guid, assets.Update{AuthorizedUsers: &plan.AuthorizedUsers}); err != nil {
		return nil, fmt.Errorf("error updating access list: %w", err)
	}

	s.log.Info(ctx, "access granted", "guid", guid, "by", requester, "users", plan.Added)
	return plan.Added, nil
}

// RevokeAccess removes username from guid's access list. Removing an absent
// user is not an error.
func (s *DocumentService) RevokeAccess(ctx context.Context, guid, requester, username string) (err error) {
	defer func() { s.observe("revokeAccess", err) }()

	asset, err := s.authorize(ctx, guid, requester)
	if err != nil {
		return err
	}

	remaining, removed := access.Revoke(asset, username)
	if !removed {
		return nil
	}

	if err := s.repomanager.Assets(s.repomanager.Conn()).Update(ctx, guid, assets.Update{AuthorizedUsers: &remaining}); err != nil {
		return fmt.Errorf("error updating access list: %w", err)
	}

	s.log.Info(ctx, "access revoked", "guid", guid, "by", requester, "user", access.NormalizeUsername(username))
	return nil
}

func (s *DocumentService) GetAccessInfo(ctx context.Context, guid, requester string) (users []string, err error) {
	defer func() { s.observe("getAccessInfo", err) }()

	asset, err := s.authorize(ctx, guid, requester)
	if err != nil {
		return nil, err
	}
	if asset.AuthorizedUsers == nil {
		return []string{}, nil
	}
	return asset.AuthorizedUsers, nil
}
