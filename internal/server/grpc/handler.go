package grpc

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/docledger/internal/common"
	pb "github.com/dmitrijs2005/docledger/internal/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, invalidArgument("username and password are required")
	}

	switch strings.ToUpper(strings.TrimSpace(req.Role)) {
	case "", common.RoleStudent, common.RoleInstructor:
	default:
		return nil, invalidArgument("unknown role " + req.Role)
	}

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	user, err := s.accounts.Register(ctx, req.Username, req.Password, req.Role)
	if err != nil {
		s.logger.Error(ctx, "registration failed", "username", req.Username, "error", err)
		return nil, toStatus(err)
	}

	return &pb.RegisterResponse{Username: user.UserName, Role: user.Role}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	res, err := s.accounts.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.LoginResponse{AccessToken: res.AccessToken, Role: res.Role}, nil
}

func (s *GRPCServer) PostData(ctx context.Context, req *pb.PostDataRequest) (*pb.GuidResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}
	content, err := requestContent(req.Content)
	if err != nil {
		return nil, err
	}

	guid, err := s.docs.PostData(ctx, username, content)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GuidResponse{Guid: guid}, nil
}

func (s *GRPCServer) GetData(ctx context.Context, req *pb.GuidRequest) (*pb.ContentResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	content, err := s.docs.GetData(ctx, req.Guid, username)
	if err != nil {
		return nil, toStatus(err)
	}

	v, err := responseContent(content)
	if err != nil {
		return nil, err
	}
	return &pb.ContentResponse{Content: v}, nil
}

func (s *GRPCServer) PutData(ctx context.Context, req *pb.PutDataRequest) (*pb.GuidResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}
	content, err := requestContent(req.Content)
	if err != nil {
		return nil, err
	}

	guid, err := s.docs.PutData(ctx, req.Guid, username, content)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GuidResponse{Guid: guid}, nil
}

func (s *GRPCServer) GetAllData(ctx context.Context, req *pb.GetAllDataRequest) (*pb.DocumentsResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := s.docs.GetAllData(ctx, username)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pb.Document, 0, len(docs))
	for _, d := range docs {
		doc, err := toDocument(d)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return &pb.DocumentsResponse{Documents: out}, nil
}

func (s *GRPCServer) GetLatestData(ctx context.Context, req *pb.GuidRequest) (*pb.DocumentResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.docs.GetLatestData(ctx, req.Guid, username)
	if err != nil {
		return nil, toStatus(err)
	}

	doc, err := toDocument(*d)
	if err != nil {
		return nil, err
	}
	return &pb.DocumentResponse{Document: doc}, nil
}

func (s *GRPCServer) Trace(ctx context.Context, req *pb.GuidRequest) (*pb.TraceResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	versions, err := s.docs.Trace(ctx, req.Guid, username)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*structpb.Value, 0, len(versions))
	for _, v := range versions {
		val, err := responseContent(v)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return &pb.TraceResponse{Versions: out}, nil
}

func (s *GRPCServer) GrantAccess(ctx context.Context, req *pb.GrantAccessRequest) (*pb.GrantAccessResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	added, err := s.docs.GrantAccess(ctx, req.Guid, username, req.Usernames)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GrantAccessResponse{Added: added}, nil
}

func (s *GRPCServer) RevokeAccess(ctx context.Context, req *pb.RevokeAccessRequest) (*pb.RevokeAccessResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.docs.RevokeAccess(ctx, req.Guid, username, req.Username); err != nil {
		return nil, toStatus(err)
	}
	return &pb.RevokeAccessResponse{}, nil
}

func (s *GRPCServer) GetAccessInfo(ctx context.Context, req *pb.GuidRequest) (*pb.AccessInfoResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.docs.GetAccessInfo(ctx, req.Guid, username)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AccessInfoResponse{AuthorizedUsers: users}, nil
}

func (s *GRPCServer) PublishData(ctx context.Context, req *pb.PublishDataRequest) (*pb.GuidResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}
	content, err := requestContent(req.Content)
	if err != nil {
		return nil, err
	}

	guid, err := s.publisher.PublishData(ctx, username, content)
	if err != nil {
		s.logger.Error(ctx, "publish failed", "instructor", username, "guid", guid, "error", err)
		return nil, toStatus(err)
	}
	return &pb.GuidResponse{Guid: guid}, nil
}

func (s *GRPCServer) GetPublished(ctx context.Context, req *pb.GetPublishedRequest) (*pb.PublishedResponse, error) {
	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	owner := ""
	if req.OnlyMine {
		owner = username
	}

	groups, err := s.publisher.GetPublished(ctx, owner)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pb.PublishedGroup, 0, len(groups))
	for _, g := range groups {
		group, err := toPublishedGroup(g)
		if err != nil {
			return nil, err
		}
		out = append(out, group)
	}
	return &pb.PublishedResponse{Groups: out}, nil
}

var _ pb.DocumentStoreServer = (*GRPCServer)(nil)
