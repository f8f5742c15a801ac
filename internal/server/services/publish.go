package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/cryptox"
	"github.com/dmitrijs2005/docledger/internal/dbx"
	"github.com/dmitrijs2005/docledger/internal/logging"
	"github.com/dmitrijs2005/docledger/internal/server/lineage"
	"github.com/dmitrijs2005/docledger/internal/server/metrics"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/repomanager"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// FanoutOptions bounds the per-recipient copy writes.
type FanoutOptions struct {
	Parallelism int
	MaxRetries  int
}

// PublishService broadcasts instructor documents to every user as
// independent copies.
type PublishService struct {
	sealer
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	metrics     *metrics.Metrics
	opts        FanoutOptions
	newBackOff  func() backoff.BackOff
}

func NewPublishService(m repomanager.RepositoryManager, codec *cryptox.Codec, log logging.Logger, mt *metrics.Metrics, opts FanoutOptions) *PublishService {
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &PublishService{
		sealer:      sealer{codec: codec, now: time.Now},
		repomanager: m,
		log:         log.With("module", "publish"),
		metrics:     mt,
		opts:        opts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 50 * time.Millisecond
			b.MaxInterval = time.Second
			return b
		},
	}
}

// PublishData stores content as a published source owned by the
// instructor and gives every other user a copy. It returns the source guid.
// Copies already written stay in place when others fail.
func (s *PublishService) PublishData(ctx context.Context, instructor string, content any) (guid string, err error) {
	defer func() { s.metrics.ObserveOperation("publishData", err) }()

	conn := s.repomanager.Conn()
	usersRepo := s.repomanager.Users(conn)

	user, err := usersRepo.GetUserByLogin(ctx, instructor)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return "", err
	}
	if user == nil || user.Role != common.RoleInstructor {
		return "", fmt.Errorf("publish by %s: %w", instructor, common.ErrorUnauthorized)
	}

	record, source, err := s.seal(content, s.timestamp())
	if err != nil {
		return "", err
	}
	source.Owner = instructor
	source.LastChangedBy = instructor
	source.SourceOfPublish = source.GUID

	if err := s.writeCopy(ctx, record, source); err != nil {
		return "", fmt.Errorf("error storing published source: %w", err)
	}
	s.log.Info(ctx, "document published", "guid", source.GUID, "instructor", instructor)

	all, err := usersRepo.List(ctx)
	if err != nil {
		return source.GUID, err
	}
	var recipients []string
	for _, u := range all {
		if u.UserName != instructor {
			recipients = append(recipients, u.UserName)
		}
	}

	if err := s.fanOut(ctx, source, content, recipients); err != nil {
		return source.GUID, err
	}
	return source.GUID, nil
}

// PopulatePublishedDataToNewUser gives username a copy of the current
// version of every published source.
func (s *PublishService) PopulatePublishedDataToNewUser(ctx context.Context, username string) (err error) {
	defer func() { s.metrics.ObserveOperation("populatePublishedData", err) }()

	conn := s.repomanager.Conn()

	sources, err := s.repomanager.Assets(conn).GetPublishSources(ctx)
	if err != nil {
		return err
	}
	res, err := lineage.OrganizeToLatest(sources)
	if err != nil {
		return err
	}

	var result *multierror.Error
	for _, src := range res.Latest {
		record, err := s.repomanager.Records(conn).Get(ctx, src.GUID)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		content, err := s.open(record)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if err := s.fanOut(ctx, src, content, []string{username}); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if result.ErrorOrNil() == nil {
		s.log.Info(ctx, "published documents copied to new user", "user", username, "count", len(res.Latest))
	}
	return result.ErrorOrNil()
}

// fanOut writes one copy of content per recipient, in parallel and with
// retries. Failures are collected, not short-circuited.
func (s *PublishService) fanOut(ctx context.Context, source *models.Asset, content any, recipients []string) error {
	var (
		mu     sync.Mutex
		result *multierror.Error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Parallelism)

	for _, username := range recipients {
		g.Go(func() error {
			err := s.copyWithRetry(gctx, source, content, username)
			s.metrics.ObserveFanoutCopy(err)
			if err != nil {
				s.log.Error(gctx, "fan-out copy failed", "source", source.GUID, "recipient", username, "error", err)
				mu.Lock()
				result = multierror.Append(result, fmt.Errorf("copy for %s: %w", username, err))
				mu.Unlock()
			}
			// a failed recipient must not cancel the others
			return nil
		})
	}
	_ = g.Wait()

	return result.ErrorOrNil()
}

func (s *PublishService) copyWithRetry(ctx context.Context, source *models.Asset, content any, username string) error {
	b := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), uint64(s.opts.MaxRetries)), ctx)

	return backoff.Retry(func() error {
		record, asset, err := s.seal(content, s.timestamp())
		if err != nil {
			return backoff.Permanent(err)
		}
		asset.Owner = username
		asset.LastChangedBy = username
		asset.SourceOfPublish = source.GUID

		return s.writeCopy(ctx, record, asset)
	}, b)
}

func (s *PublishService) writeCopy(ctx context.Context, record *models.DataRecord, asset *models.Asset) error {
	return s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Records(tx).Create(ctx, record); err != nil {
			return err
		}
		return s.repomanager.Assets(tx).Create(ctx, asset)
	})
}

// GetPublished lists published sources, newest first, each with the latest
// copy of every recipient. A non-empty owner restricts the sources to that
// publisher.
func (s *PublishService) GetPublished(ctx context.Context, owner string) (groups []models.PublishedGroup, err error) {
	defer func() { s.metrics.ObserveOperation("getPublished", err) }()

	conn := s.repomanager.Conn()
	assetsRepo := s.repomanager.Assets(conn)

	sources, err := assetsRepo.GetPublishSources(ctx)
	if err != nil {
		return nil, err
	}
	if owner != "" {
		sources = filterAssets(sources, func(a *models.Asset) bool { return a.Owner == owner })
	}

	res, err := lineage.OrganizeToLatest(sources)
	if err != nil {
		return nil, err
	}

	groups = make([]models.PublishedGroup, 0, len(res.Latest))
	for _, src := range res.Latest {
		copies, err := assetsRepo.GetPublishedFrom(ctx, src.GUID)
		if err != nil {
			return nil, err
		}
		// later versions of the source itself are not recipient copies
		copies = filterAssets(copies, func(a *models.Asset) bool { return a.FirstVersion != src.FirstVersion })

		latest, err := lineage.OrganizeToLatest(copies)
		if err != nil {
			return nil, err
		}

		group, err := s.openGroup(ctx, src, latest.Latest)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *PublishService) openGroup(ctx context.Context, src *models.Asset, copies []*models.Asset) (models.PublishedGroup, error) {
	guids := make([]string, 0, len(copies)+1)
	guids = append(guids, src.GUID)
	for _, c := range copies {
		guids = append(guids, c.GUID)
	}

	records, err := s.repomanager.Records(s.repomanager.Conn()).GetMany(ctx, guids)
	if err != nil {
		return models.PublishedGroup{}, err
	}
	byGUID := make(map[string]*models.DataRecord, len(records))
	for _, r := range records {
		byGUID[r.GUID] = r
	}

	item := func(a *models.Asset) (models.PublishedItem, error) {
		r, ok := byGUID[a.GUID]
		if !ok {
			return models.PublishedItem{}, fmt.Errorf("record %s: %w", a.GUID, common.ErrorNotFound)
		}
		content, err := s.open(r)
		if err != nil {
			return models.PublishedItem{}, err
		}
		return models.PublishedItem{GUID: a.GUID, Owner: a.Owner, Content: content}, nil
	}

	source, err := item(src)
	if err != nil {
		return models.PublishedGroup{}, err
	}
	group := models.PublishedGroup{Source: source, Published: make([]models.PublishedItem, 0, len(copies))}
	for _, c := range copies {
		it, err := item(c)
		if err != nil {
			return models.PublishedGroup{}, err
		}
		group.Published = append(group.Published, it)
	}
	return group, nil
}

func filterAssets(in []*models.Asset, keep func(*models.Asset) bool) []*models.Asset {
	out := in[:0:0]
	for _, a := range in {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
