package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/cryptox"
	"github.com/dmitrijs2005/docledger/internal/logging"
	"github.com/dmitrijs2005/docledger/internal/server/config"
	"github.com/dmitrijs2005/docledger/internal/server/metrics"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

// fakeClock advances one second per reading.
type fakeClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{cur: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Second)
	return c.cur
}

type fixture struct {
	rm    repomanager.RepositoryManager
	codec *cryptox.Codec
	docs  *DocumentService
	pub   *PublishService
	users *UserService
	clock *fakeClock
}

func newTestCodec(t *testing.T) *cryptox.Codec {
	t.Helper()
	codec, err := cryptox.NewCodec([]byte("test-passphrase"), []byte("test-salt"))
	require.NoError(t, err)
	return codec
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, repomanager.NewInMemoryRepositoryManager())
}

func newFixtureWith(t *testing.T, rm repomanager.RepositoryManager) *fixture {
	t.Helper()

	codec := newTestCodec(t)
	log := logging.Nop()
	mt := metrics.New()
	clock := newFakeClock()

	docs := NewDocumentService(rm, codec, log, mt)
	docs.now = clock.Now

	pub := NewPublishService(rm, codec, log, mt, FanoutOptions{Parallelism: 4, MaxRetries: 2})
	pub.now = clock.Now
	pub.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	users := NewUserService(rm, pub, &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}, log)
	users.now = clock.Now

	return &fixture{rm: rm, codec: codec, docs: docs, pub: pub, users: users, clock: clock}
}

func (f *fixture) register(t *testing.T, username, role string) *models.User {
	t.Helper()
	u, err := f.users.Register(context.Background(), username, "pw-"+username, role)
	require.NoError(t, err)
	return u
}

func (f *fixture) student(t *testing.T, username string) {
	t.Helper()
	f.register(t, username, common.RoleStudent)
}

func (f *fixture) post(t *testing.T, owner string, content map[string]any) string {
	t.Helper()
	guid, err := f.docs.PostData(context.Background(), owner, content)
	require.NoError(t, err)
	return guid
}

func (f *fixture) put(t *testing.T, guid, requester string, content map[string]any) string {
	t.Helper()
	newGUID, err := f.docs.PutData(context.Background(), guid, requester, content)
	require.NoError(t, err)
	return newGUID
}

func (f *fixture) asset(t *testing.T, guid string) *models.Asset {
	t.Helper()
	a, err := f.rm.Assets(nil).Get(context.Background(), guid)
	require.NoError(t, err)
	return a
}

func field(t *testing.T, content any, key string) any {
	t.Helper()
	obj, ok := content.(map[string]any)
	require.True(t, ok, "content is %T, want object", content)
	return obj[key]
}

func coffees(t *testing.T, docs []models.Document) []any {
	t.Helper()
	out := make([]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, field(t, d.Content, "coffee"))
	}
	return out
}
