package server

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/go-hclog"
	pb "github.com/pixperk/txnfence/api/v1"
	"github.com/pixperk/txnfence/pkg/fsm"
	"github.com/pixperk/txnfence/pkg/metrics"
	"github.com/pixperk/txnfence/pkg/raft"
	"github.com/pixperk/txnfence/pkg/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	pb.UnimplementedLockServiceServer
	node   *raft.Node
	logger hclog.Logger
}

// serves the table lock service over a raft node
func NewServer(node *raft.Node, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Server{
		node:   node,
		logger: logger.Named("server"),
	}
}

// writes only go through the leader
func (s *Server) requireLeader() error {
	if !s.node.IsLeader() {
		return notLeaderError(s.node.GetLeader())
	}
	return nil
}

func (s *Server) CreateLease(ctx context.Context, req *pb.CreateLeaseRequest) (*pb.CreateLeaseResponse, error) {
	if err := s.requireLeader(); err != nil {
		return nil, err
	}

	if req.OwnerId == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_id required")
	}
	if req.TtlMs <= 0 {
		return nil, status.Error(codes.InvalidArgument, "ttl_ms must be greater than 0")
	}
	ttl := time.Duration(req.TtlMs) * time.Millisecond

	result, err := s.node.Apply(types.CreateLeaseCmd{
		OwnerID: req.OwnerId,
		TTL:     ttl,
	})
	if err != nil {
		return nil, toGRPCError(err)
	}

	metrics.LeaseCreateTotal.Inc()
	resp := result.(fsm.CreateLeaseResponse)
	s.logger.Debug("lease created", "owner_id", req.OwnerId, "lease_id", resp.LeaseID, "ttl", ttl)

	return &pb.CreateLeaseResponse{
		LeaseId: resp.LeaseID,
		TtlMs:   req.TtlMs,
	}, nil
}

func (s *Server) RenewLease(ctx context.Context, req *pb.RenewLeaseRequest) (*pb.RenewLeaseResponse, error) {
	if err := s.requireLeader(); err != nil {
		return nil, err
	}

	result, err := s.node.Apply(types.RenewLeaseCmd{LeaseID: req.LeaseId})
	if err != nil {
		metrics.LeaseRenewTotal.WithLabelValues("failure").Inc()
		return nil, toGRPCError(err)
	}

	metrics.LeaseRenewTotal.WithLabelValues("success").Inc()
	resp := result.(fsm.RenewLeaseResponse)
	return &pb.RenewLeaseResponse{TtlMs: resp.TTL.Milliseconds()}, nil
}

func (s *Server) AcquireLock(ctx context.Context, req *pb.AcquireLockRequest) (*pb.AcquireLockResponse, error) {
	if err := s.requireLeader(); err != nil {
		return nil, err
	}

	if req.OwnerId == "" || req.Table == "" || req.LeaseId == 0 {
		return nil, status.Error(codes.InvalidArgument, "owner_id, table and lease_id are required")
	}

	result, err := s.node.Apply(types.AcquireLockCmd{
		Table:   req.Table,
		OwnerID: req.OwnerId,
		LeaseID: req.LeaseId,
	})
	if err != nil {
		return nil, toGRPCError(err)
	}

	resp := result.(fsm.AcquireLockResponse)
	s.logger.Debug("table lock granted", "table", req.Table, "owner_id", req.OwnerId, "fencing_token", resp.FencingToken)

	return &pb.AcquireLockResponse{
		FencingToken: resp.FencingToken,
		LeaseTtlMs:   resp.LeaseTTL.Milliseconds(),
	}, nil
}

func (s *Server) ReleaseLock(ctx context.Context, req *pb.ReleaseLockRequest) (*pb.ReleaseLockResponse, error) {
	if err := s.requireLeader(); err != nil {
		return nil, err
	}

	if req.Table == "" {
		return nil, status.Error(codes.InvalidArgument, "table required")
	}

	result, err := s.node.Apply(types.ReleaseLockCmd{
		Table:   req.Table,
		LeaseID: req.LeaseId,
	})
	if err != nil {
		return nil, toGRPCError(err)
	}

	resp := result.(fsm.ReleaseLockResponse)
	return &pb.ReleaseLockResponse{Released: resp.Released}, nil
}

// answered by the leader so a deposed holder cannot read its own stale state
func (s *Server) ValidateFence(ctx context.Context, req *pb.ValidateFenceRequest) (*pb.ValidateFenceResponse, error) {
	if err := s.requireLeader(); err != nil {
		return nil, err
	}

	err := s.node.ValidateFencingToken(req.Table, req.FencingToken)
	switch {
	case err == nil:
		return &pb.ValidateFenceResponse{Valid: true}, nil
	case errors.Is(err, types.ErrStaleToken), errors.Is(err, types.ErrLockNotFound):
		return &pb.ValidateFenceResponse{Valid: false}, nil
	default:
		return nil, toGRPCError(err)
	}
}

func (s *Server) GetStatus(ctx context.Context, req *pb.GetStatusRequest) (*pb.GetStatusResponse, error) {
	stats := s.node.Stats()

	return &pb.GetStatusResponse{
		NodeId:         s.node.GetNodeID().String(),
		IsLeader:       s.node.IsLeader(),
		LeaderAddress:  s.node.GetLeader(),
		ClusterSize:    int32(s.node.GetClusterSize()),
		State:          s.node.GetState().String(),
		Leases:         int32(stats.Leases),
		Locks:          int32(stats.Locks),
		FencingCounter: stats.FencingCounter,
	}, nil
}
