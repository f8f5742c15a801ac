package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/logging"
	pb "github.com/dmitrijs2005/docledger/internal/proto"
	"github.com/dmitrijs2005/docledger/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func bareServer() *GRPCServer {
	return &GRPCServer{logger: logging.Nop(), jwtSecret: []byte(testSecret)}
}

func TestInterceptor_PublicMethodsSkipToken(t *testing.T) {
	s := bareServer()

	for _, m := range []string{
		pb.DocumentStore_Ping_FullMethodName,
		pb.DocumentStore_Register_FullMethodName,
		pb.DocumentStore_Login_FullMethodName,
	} {
		called := false
		h := func(ctx context.Context, req any) (any, error) {
			called = true
			return "ok", nil
		}

		resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: m}, h)
		require.NoError(t, err, m)
		assert.True(t, called, m)
		assert.Equal(t, "ok", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := bareServer()

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: pb.DocumentStore_GetData_FullMethodName}, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	s := bareServer()

	tok, err := auth.GenerateToken("u", common.RoleStudent, []byte(testSecret), -time.Second)
	require.NoError(t, err)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, tok))

	_, err = s.accessTokenInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: pb.DocumentStore_GetData_FullMethodName},
		func(ctx context.Context, req any) (any, error) { return nil, nil })
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_ValidTokenSetsUsername(t *testing.T) {
	s := bareServer()

	tok, err := auth.GenerateToken("alice", common.RoleStudent, []byte(testSecret), time.Minute)
	require.NoError(t, err)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, tok))

	var got string
	_, err = s.accessTokenInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: pb.DocumentStore_GetData_FullMethodName},
		func(ctx context.Context, req any) (any, error) {
			got, err = usernameFromContext(ctx)
			return nil, err
		})
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestUsernameFromContext_Missing(t *testing.T) {
	_, err := usernameFromContext(context.Background())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("asset x: %w", common.ErrorNotFound), codes.NotFound},
		{common.ErrorForbidden, codes.PermissionDenied},
		{common.ErrorUnauthorized, codes.Unauthenticated},
		{common.ErrorConflict, codes.AlreadyExists},
		{errors.New("db exploded"), codes.Internal},
		{status.Error(codes.InvalidArgument, "x"), codes.InvalidArgument},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, status.Code(toStatus(tt.err)), "err=%v", tt.err)
	}

	assert.NoError(t, toStatus(nil))
	assert.Equal(t, "internal error", status.Convert(toStatus(errors.New("secret detail"))).Message())
}
