// Package server wires configuration, storage, services and transports
// together and runs them until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/docledger/internal/cryptox"
	"github.com/dmitrijs2005/docledger/internal/logging"
	"github.com/dmitrijs2005/docledger/internal/server/config"
	"github.com/dmitrijs2005/docledger/internal/server/metrics"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/docledger/internal/server/services"
	"github.com/dmitrijs2005/docledger/internal/server/storage"

	gs "github.com/dmitrijs2005/docledger/internal/server/grpc"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	metrics   *metrics.Metrics
	grpc      *gs.GRPCServer
	collector *services.CollectorService
	backup    *services.BackupWorker
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger, metrics: metrics.New()}

	rm, err := app.initRepositories(ctx)
	if err != nil {
		return nil, err
	}

	codec, err := cryptox.NewCodec([]byte(c.EncryptionPassphrase), []byte(c.EncryptionSalt))
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("codec init error: %w", err)
	}

	store, err := app.initObjectStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	docs := services.NewDocumentService(rm, codec, logger, app.metrics)
	pub := services.NewPublishService(rm, codec, logger, app.metrics, services.FanoutOptions{
		Parallelism: c.FanoutParallelism,
		MaxRetries:  c.FanoutMaxRetries,
	})
	users := services.NewUserService(rm, pub, c, logger)

	app.collector = services.NewCollectorService(pub, store, logger)
	if c.BackupInterval > 0 {
		app.backup = services.NewBackupWorker(rm, store, c.BackupInterval, logger, app.metrics)
	}
	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, users, docs, pub, c.SecretKey)

	return app, nil
}

func (app *App) initRepositories(ctx context.Context) (repomanager.RepositoryManager, error) {
	if app.config.StorageMode == config.StorageModeMemory {
		app.logger.Warn(ctx, "Using in-memory storage, data will not survive a restart")
		return repomanager.NewInMemoryRepositoryManager(), nil
	}

	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.db = db

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	return rm, nil
}

func (app *App) initObjectStore(ctx context.Context) (storage.ObjectStore, error) {
	if app.config.StorageMode == config.StorageModeMemory {
		return storage.NewMemoryStore(), nil
	}

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		Region:       app.config.S3Region,
		AccessKey:    app.config.S3RootUser,
		SecretKey:    app.config.S3RootPassword,
		BaseEndpoint: app.config.S3BaseEndpoint,
		Bucket:       app.config.S3Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("object store init error: %w", err)
	}
	return store, nil
}

// Close releases the database handle, if any.
func (app *App) Close() {
	if app.db != nil {
		_ = app.db.Close()
		app.db = nil
	}
}

// exportHandler uploads the collected published results and replies with
// the object keys.
func (app *App) exportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	keys, err := app.collector.Export(r.Context())
	if err != nil {
		app.logger.Error(r.Context(), "export failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]string{"keys": keys})
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", app.metrics.Handler())
	mux.HandleFunc("/exports", app.exportHandler)

	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpc.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancelFunc()
	defer app.Close()

	app.logger.Info(ctx, "Starting app...")

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.backup != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.backup.Run(ctx)
		}()
	}

	wg.Wait()
	app.logger.Info(context.Background(), "App stopped")
}
