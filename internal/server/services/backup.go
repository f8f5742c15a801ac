package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/docledger/internal/logging"
	"github.com/dmitrijs2005/docledger/internal/server/metrics"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/docledger/internal/server/storage"
)

// Snapshot is the content of one backup object. Records stay encrypted.
type Snapshot struct {
	TakenAt time.Time            `json:"takenAt"`
	Users   []*models.User       `json:"users"`
	Assets  []*models.Asset      `json:"assets"`
	Records []*models.DataRecord `json:"records"`
}

// BackupWorker periodically uploads a snapshot of the whole store.
type BackupWorker struct {
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
	log         logging.Logger
	metrics     *metrics.Metrics
	interval    time.Duration
	running     atomic.Bool
	inflight    sync.WaitGroup
	now         func() time.Time
}

func NewBackupWorker(m repomanager.RepositoryManager, store storage.ObjectStore, interval time.Duration, log logging.Logger, mt *metrics.Metrics) *BackupWorker {
	return &BackupWorker{
		repomanager: m,
		store:       store,
		log:         log.With("module", "backup"),
		metrics:     mt,
		interval:    interval,
		now:         time.Now,
	}
}

// Run starts a backup every interval until ctx is done. It returns once the
// last started backup has finished.
func (w *BackupWorker) Run(ctx context.Context) {
	w.log.Info(ctx, "backup worker started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.inflight.Wait()
			w.log.Info(ctx, "backup worker stopped")
			return
		case <-ticker.C:
			w.inflight.Add(1)
			go func() {
				defer w.inflight.Done()
				w.tick(ctx)
			}()
		}
	}
}

// tick runs one backup unless the previous one is still going.
func (w *BackupWorker) tick(ctx context.Context) {
	if !w.running.CompareAndSwap(false, true) {
		w.log.Info(ctx, "backup is running, skipping")
		w.metrics.ObserveBackup(true, nil)
		return
	}
	defer w.running.Store(false)

	key, err := w.Backup(ctx)
	w.metrics.ObserveBackup(false, err)
	if err != nil {
		w.log.Error(ctx, "backup failed", "error", err)
		return
	}
	w.log.Info(ctx, "backup complete", "key", key)
}

// Backup uploads one snapshot and returns its object key.
func (w *BackupWorker) Backup(ctx context.Context) (string, error) {
	snap, err := w.snapshot(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("error encoding snapshot: %w", err)
	}

	key := storage.DatedKey("backups", snap.TakenAt, ".json")
	if err := w.store.PutObject(ctx, key, body, "application/json"); err != nil {
		return "", err
	}
	return key, nil
}

func (w *BackupWorker) snapshot(ctx context.Context) (*Snapshot, error) {
	conn := w.repomanager.Conn()

	users, err := w.repomanager.Users(conn).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	assets, err := w.repomanager.Assets(conn).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing assets: %w", err)
	}
	records, err := w.repomanager.Records(conn).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}

	return &Snapshot{
		TakenAt: w.now().UTC(),
		Users:   users,
		Assets:  assets,
		Records: records,
	}, nil
}
