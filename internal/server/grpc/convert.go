package grpc

import (
	pb "github.com/dmitrijs2005/docledger/internal/proto"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// requestContent unpacks a required content field.
func requestContent(v *structpb.Value) (any, error) {
	content := pb.ContentOf(v)
	if content == nil {
		return nil, invalidArgument("content is required")
	}
	return content, nil
}

func responseContent(content any) (*structpb.Value, error) {
	v, err := pb.ContentValue(content)
	if err != nil {
		return nil, status.Error(codes.Internal, "content encoding error")
	}
	return v, nil
}

func toDocument(d models.Document) (*pb.Document, error) {
	content, err := responseContent(d.Content)
	if err != nil {
		return nil, err
	}
	return &pb.Document{Guid: d.GUID, Content: content}, nil
}

func toPublishedItem(it models.PublishedItem) (*pb.PublishedItem, error) {
	content, err := responseContent(it.Content)
	if err != nil {
		return nil, err
	}
	return &pb.PublishedItem{Guid: it.GUID, Owner: it.Owner, Content: content}, nil
}

func toPublishedGroup(g models.PublishedGroup) (*pb.PublishedGroup, error) {
	source, err := toPublishedItem(g.Source)
	if err != nil {
		return nil, err
	}

	out := &pb.PublishedGroup{Source: source, Published: make([]*pb.PublishedItem, 0, len(g.Published))}
	for _, it := range g.Published {
		item, err := toPublishedItem(it)
		if err != nil {
			return nil, err
		}
		out.Published = append(out.Published, item)
	}
	return out, nil
}
