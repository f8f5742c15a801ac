package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/docledger/internal/common"
	pb "github.com/dmitrijs2005/docledger/internal/proto"
	"github.com/dmitrijs2005/docledger/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const usernameKey ctxKey = "username"

// publicMethods can be called without an access token.
var publicMethods = map[string]struct{}{
	pb.DocumentStore_Ping_FullMethodName:     {},
	pb.DocumentStore_Register_FullMethodName: {},
	pb.DocumentStore_Login_FullMethodName:    {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	username, err := auth.GetUsernameFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, usernameKey, username), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "request handled",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start).String(),
	)
	return resp, err
}

// usernameFromContext returns the caller set by accessTokenInterceptor.
func usernameFromContext(ctx context.Context) (string, error) {
	u, ok := ctx.Value(usernameKey).(string)
	if !ok || u == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return u, nil
}
