package grpc

import (
	"github.com/dmitrijs2005/docledger/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus converts a service error into a gRPC status. Internal details
// are not sent to the client.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch common.KindOf(err) {
	case common.ErrorNotFound:
		return status.Error(codes.NotFound, err.Error())
	case common.ErrorForbidden:
		return status.Error(codes.PermissionDenied, err.Error())
	case common.ErrorUnauthorized:
		return status.Error(codes.Unauthenticated, err.Error())
	case common.ErrorConflict:
		return status.Error(codes.AlreadyExists, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

func invalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}
