package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docledger/internal/common"
	pb "github.com/dmitrijs2005/docledger/internal/proto"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.DocumentStoreClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewDocLedgerClient connects lazily to endpointURL. Extra dial options
// are appended to the defaults.
func NewDocLedgerClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewDocumentStoreClient(conn)
	return c, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx, &pb.PingRequest{})
	return s.mapError(err)
}

func (s *GRPCClient) Register(ctx context.Context, userName, password, role string) error {
	req := &pb.RegisterRequest{Username: userName, Password: password, Role: role}
	_, err := s.client.Register(ctx, req)
	return s.mapError(err)
}

// Login authenticates and keeps the access token for later calls.
func (s *GRPCClient) Login(ctx context.Context, userName, password string) (string, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: userName, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	return resp.Role, nil
}

// Logout forgets the access token.
func (s *GRPCClient) Logout() {
	s.accessToken = ""
}

func (s *GRPCClient) PostData(ctx context.Context, content any) (string, error) {
	v, err := pb.ContentValue(content)
	if err != nil {
		return "", fmt.Errorf("error encoding content: %w", err)
	}

	resp, err := s.client.PostData(ctx, &pb.PostDataRequest{Content: v})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Guid, nil
}

func (s *GRPCClient) GetData(ctx context.Context, guid string) (any, error) {
	resp, err := s.client.GetData(ctx, &pb.GuidRequest{Guid: guid})
	if err != nil {
		return nil, s.mapError(err)
	}
	return pb.ContentOf(resp.Content), nil
}

func (s *GRPCClient) PutData(ctx context.Context, guid string, content any) (string, error) {
	v, err := pb.ContentValue(content)
	if err != nil {
		return "", fmt.Errorf("error encoding content: %w", err)
	}

	resp, err := s.client.PutData(ctx, &pb.PutDataRequest{Guid: guid, Content: v})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Guid, nil
}

func (s *GRPCClient) GetAllData(ctx context.Context) ([]models.Document, error) {
	resp, err := s.client.GetAllData(ctx, &pb.GetAllDataRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	docs := make([]models.Document, 0, len(resp.Documents))
	for _, d := range resp.Documents {
		docs = append(docs, models.Document{GUID: d.Guid, Content: pb.ContentOf(d.Content)})
	}
	return docs, nil
}

func (s *GRPCClient) GetLatestData(ctx context.Context, guid string) (*models.Document, error) {
	resp, err := s.client.GetLatestData(ctx, &pb.GuidRequest{Guid: guid})
	if err != nil {
		return nil, s.mapError(err)
	}

	d := resp.GetDocument()
	return &models.Document{GUID: d.GetGuid(), Content: pb.ContentOf(d.GetContent())}, nil
}

func (s *GRPCClient) Trace(ctx context.Context, guid string) ([]any, error) {
	resp, err := s.client.Trace(ctx, &pb.GuidRequest{Guid: guid})
	if err != nil {
		return nil, s.mapError(err)
	}

	versions := make([]any, 0, len(resp.Versions))
	for _, v := range resp.Versions {
		versions = append(versions, pb.ContentOf(v))
	}
	return versions, nil
}

func (s *GRPCClient) GrantAccess(ctx context.Context, guid string, usernames []string) ([]string, error) {
	resp, err := s.client.GrantAccess(ctx, &pb.GrantAccessRequest{Guid: guid, Usernames: usernames})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Added, nil
}

func (s *GRPCClient) RevokeAccess(ctx context.Context, guid, username string) error {
	_, err := s.client.RevokeAccess(ctx, &pb.RevokeAccessRequest{Guid: guid, Username: username})
	return s.mapError(err)
}

func (s *GRPCClient) GetAccessInfo(ctx context.Context, guid string) ([]string, error) {
	resp, err := s.client.GetAccessInfo(ctx, &pb.GuidRequest{Guid: guid})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.AuthorizedUsers, nil
}

func (s *GRPCClient) PublishData(ctx context.Context, content any) (string, error) {
	v, err := pb.ContentValue(content)
	if err != nil {
		return "", fmt.Errorf("error encoding content: %w", err)
	}

	resp, err := s.client.PublishData(ctx, &pb.PublishDataRequest{Content: v})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Guid, nil
}

func (s *GRPCClient) GetPublished(ctx context.Context, onlyMine bool) ([]models.PublishedGroup, error) {
	resp, err := s.client.GetPublished(ctx, &pb.GetPublishedRequest{OnlyMine: onlyMine})
	if err != nil {
		return nil, s.mapError(err)
	}

	groups := make([]models.PublishedGroup, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		group := models.PublishedGroup{
			Source:    publishedItem(g.GetSource()),
			Published: make([]models.PublishedItem, 0, len(g.Published)),
		}
		for _, it := range g.Published {
			group.Published = append(group.Published, publishedItem(it))
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func publishedItem(it *pb.PublishedItem) models.PublishedItem {
	return models.PublishedItem{GUID: it.GetGuid(), Owner: it.GetOwner(), Content: pb.ContentOf(it.GetContent())}
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorNotFound)
	case codes.PermissionDenied:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorForbidden)
	case codes.Unauthenticated:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorUnauthorized)
	case codes.AlreadyExists:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorConflict)
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
