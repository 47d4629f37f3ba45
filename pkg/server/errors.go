package server

import (
	"errors"

	"github.com/pixperk/txnfence/pkg/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// converts domain errors to gRPC status errors
func toGRPCError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, types.ErrLeaseNotFound), errors.Is(err, types.ErrLockNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, types.ErrLeaseExpired), errors.Is(err, types.ErrLockAlreadyHeld), errors.Is(err, types.ErrStaleToken):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, types.ErrInvalidLeaseTTL):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, types.ErrNotLockOwner):
		return status.Error(codes.PermissionDenied, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// carries the current leader address so clients can redirect
func notLeaderError(leaderAddr string) error {
	return status.Errorf(codes.Unavailable, "not leader, leader is at: %s", leaderAddr)
}
