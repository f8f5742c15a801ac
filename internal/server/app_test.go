package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/docledger/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.StorageMode = config.StorageModeMemory
	c.EncryptionPassphrase = "pass"
	c.EncryptionSalt = "salt"
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.MetricsAddr = "127.0.0.1:0"
	c.LogLevel = "error"
	c.BackupInterval = time.Hour
	return c
}

func TestNewApp_RejectsInvalidConfig(t *testing.T) {
	c := memoryConfig()
	c.EncryptionPassphrase = ""

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestNewApp_MemoryMode(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.db)
	assert.NotNil(t, app.grpc)
	assert.NotNil(t, app.collector)
	assert.NotNil(t, app.backup)
}

func TestNewApp_NoBackupWorkerWhenDisabled(t *testing.T) {
	c := memoryConfig()
	c.BackupInterval = 0

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	assert.Nil(t, app.backup)
}

func TestExportHandler(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.exportHandler(rec, httptest.NewRequest(http.MethodPost, "/exports", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body["keys"])

	rec = httptest.NewRecorder()
	app.exportHandler(rec, httptest.NewRequest(http.MethodGet, "/exports", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
}
