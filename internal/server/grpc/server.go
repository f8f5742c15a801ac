// Package grpc exposes the document store over gRPC. Document content
// travels as google.protobuf.Value.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/docledger/internal/logging"
	pb "github.com/dmitrijs2005/docledger/internal/proto"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/dmitrijs2005/docledger/internal/server/services"
	"google.golang.org/grpc"
)

type Documents interface {
	PostData(ctx context.Context, username string, content any) (string, error)
	GetData(ctx context.Context, guid, requester string) (any, error)
	PutData(ctx context.Context, guid, requester string, content any) (string, error)
	GetAllData(ctx context.Context, requester string) ([]models.Document, error)
	GetLatestData(ctx context.Context, guid, requester string) (*models.Document, error)
	Trace(ctx context.Context, guid, requester string) ([]any, error)
	GrantAccess(ctx context.Context, guid, requester string, candidates []string) ([]string, error)
	RevokeAccess(ctx context.Context, guid, requester, username string) error
	GetAccessInfo(ctx context.Context, guid, requester string) ([]string, error)
}

type Publisher interface {
	PublishData(ctx context.Context, instructor string, content any) (string, error)
	GetPublished(ctx context.Context, owner string) ([]models.PublishedGroup, error)
}

type Accounts interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
}

type GRPCServer struct {
	pb.UnimplementedDocumentStoreServer
	address   string
	docs      Documents
	publisher Publisher
	accounts  Accounts
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, accounts Accounts, docs Documents, publisher Publisher, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  accounts,
		docs:      docs,
		publisher: publisher,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterDocumentStoreServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
