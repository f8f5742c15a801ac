package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/cryptox"
	"github.com/dmitrijs2005/docledger/internal/logging"
	"github.com/dmitrijs2005/docledger/internal/server/config"
	"github.com/dmitrijs2005/docledger/internal/server/metrics"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/docledger/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	gs "github.com/dmitrijs2005/docledger/internal/server/grpc"
)

func startServer(t *testing.T) func() *GRPCClient {
	t.Helper()

	codec, err := cryptox.NewCodec([]byte("pass"), []byte("salt"))
	require.NoError(t, err)

	rm := repomanager.NewInMemoryRepositoryManager()
	log := logging.Nop()
	mt := metrics.New()
	cfg := &config.Config{SecretKey: "secret", AccessTokenValidityDuration: time.Hour}

	docs := services.NewDocumentService(rm, codec, log, mt)
	pub := services.NewPublishService(rm, codec, log, mt, services.FanoutOptions{Parallelism: 2})
	users := services.NewUserService(rm, pub, cfg, log)
	srv := gs.NewGRPCServer("bufnet", log, users, docs, pub, cfg.SecretKey)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return func() *GRPCClient {
		c, err := NewDocLedgerClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}))
		require.NoError(t, err)
		t.Cleanup(func() { _ = c.Close() })
		return c
	}
}

func login(t *testing.T, c *GRPCClient, user, role string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, c.Register(ctx, user, "pw", role))
	_, err := c.Login(ctx, user, "pw")
	require.NoError(t, err)
}

func TestWithAccessToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "old", "x-other", "1")

	ctx = withAccessToken(ctx, "new")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
	assert.Equal(t, []string{"1"}, md.Get("x-other"))
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	assert.NoError(t, c.mapError(nil))
	assert.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), common.ErrorNotFound)
	assert.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), common.ErrorForbidden)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), common.ErrorUnauthorized)
	assert.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), common.ErrorConflict)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)

	err := c.mapError(errors.New("plain"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc error")
}

func TestClient_DocumentLifecycle(t *testing.T) {
	newClient := startServer(t)
	ctx := context.Background()

	c := newClient()
	require.NoError(t, c.Ping(ctx))

	_, err := c.GetAllData(ctx)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	login(t, c, "owner", "")
	other := newClient()
	login(t, other, "other", "")

	guid, err := c.PostData(ctx, map[string]any{"title": "draft"})
	require.NoError(t, err)

	next, err := c.PutData(ctx, guid, map[string]any{"title": "final"})
	require.NoError(t, err)

	content, err := c.GetData(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, "final", content.(map[string]any)["title"])

	latest, err := c.GetLatestData(ctx, guid)
	require.NoError(t, err)
	assert.Equal(t, next, latest.GUID)

	versions, err := c.Trace(ctx, next)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, "draft", versions[1].(map[string]any)["title"])
	assert.Equal(t, "owner", versions[1].(map[string]any)["lastChangedBy"])
	assert.IsType(t, "", versions[0].(map[string]any)["lastChangedAt"])

	docs, err := c.GetAllData(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	_, err = other.GetData(ctx, next)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	added, err := c.GrantAccess(ctx, next, []string{"other"})
	require.NoError(t, err)
	assert.Equal(t, []string{"other"}, added)

	users, err := c.GetAccessInfo(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"other"}, users)

	_, err = other.GetData(ctx, next)
	require.NoError(t, err)

	require.NoError(t, c.RevokeAccess(ctx, next, "other"))
	_, err = other.GetData(ctx, next)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, err = c.GetData(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	c.Logout()
	_, err = c.GetAllData(ctx)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestClient_Publish(t *testing.T) {
	newClient := startServer(t)
	ctx := context.Background()

	instructor := newClient()
	login(t, instructor, "prof", common.RoleInstructor)
	student := newClient()
	login(t, student, "kid", "")

	source, err := instructor.PublishData(ctx, map[string]any{"name": "hw1"})
	require.NoError(t, err)

	groups, err := instructor.GetPublished(ctx, true)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, source, groups[0].Source.GUID)
	assert.Equal(t, "hw1", groups[0].Source.Content.(map[string]any)["name"])
	require.Len(t, groups[0].Published, 1)
	assert.Equal(t, "kid", groups[0].Published[0].Owner)
	assert.Equal(t, "hw1", groups[0].Published[0].Content.(map[string]any)["name"])

	_, err = student.PublishData(ctx, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	err = newClient().Register(ctx, "kid", "pw", "")
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestClient_UnencodableContent(t *testing.T) {
	newClient := startServer(t)
	ctx := context.Background()

	c := newClient()
	login(t, c, "owner", "")

	_, err := c.PostData(ctx, map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error encoding content")

	docs, err := c.GetAllData(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
