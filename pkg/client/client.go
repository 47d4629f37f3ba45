package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	pb "github.com/pixperk/txnfence/api/v1"
	"github.com/pixperk/txnfence/pkg/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// a session against the lock service: one lease, kept alive by a heartbeat loop
type Client struct {
	addr    string
	ownerID string
	conn    *grpc.ClientConn
	client  pb.LockServiceClient
	logger  hclog.Logger

	mu       sync.Mutex
	leaseID  uint64
	leaseTTL time.Duration
	started  bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewClient(addr, ownerID string, logger hclog.Logger, opts ...grpc.DialOption) (*Client, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	return &Client{
		addr:    addr,
		ownerID: ownerID,
		conn:    conn,
		client:  pb.NewLockServiceClient(conn),
		logger:  logger.Named("client").With("owner_id", ownerID),
		stopCh:  make(chan struct{}),
	}, nil
}

func (c *Client) OwnerID() string {
	return c.ownerID
}

// creates the lease and starts heartbeating it at a third of its ttl
func (c *Client) Start(ctx context.Context, ttl time.Duration) error {
	resp, err := c.client.CreateLease(ctx, &pb.CreateLeaseRequest{
		OwnerId: c.ownerID,
		TtlMs:   ttl.Milliseconds(),
	})
	if err != nil {
		return fmt.Errorf("create lease: %w", fromGRPCError(err))
	}

	c.mu.Lock()
	c.leaseID = resp.LeaseId
	c.leaseTTL = ttl
	c.started = true
	c.mu.Unlock()

	c.wg.Add(1)
	go c.heartbeatLoop(ttl / 3)

	return nil
}

func (c *Client) heartbeatLoop(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var failureCount int

	for {
		select {
		case <-ticker.C:
			leaseID := c.LeaseID()

			ctx, cancel := context.WithTimeout(context.Background(), interval)
			_, err := c.client.RenewLease(ctx, &pb.RenewLeaseRequest{LeaseId: leaseID})
			cancel()

			if err != nil {
				failureCount++
				c.logger.Warn("heartbeat failed", "lease_id", leaseID, "attempt", failureCount, "error", err)
				if failureCount >= 2 {
					c.logger.Error("lease may expire soon, heartbeat failing", "lease_id", leaseID)
				}
				continue
			}

			if failureCount > 0 {
				c.logger.Info("heartbeat recovered", "failures", failureCount)
				failureCount = 0
			}

		case <-c.stopCh:
			return
		}
	}
}

func (c *Client) LeaseID() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.leaseID
}

// single attempt, types.ErrLockAlreadyHeld when another lease owns the table
func (c *Client) Acquire(ctx context.Context, table string) (*Lock, error) {
	c.mu.Lock()
	leaseID, started := c.leaseID, c.started
	c.mu.Unlock()

	if !started {
		return nil, fmt.Errorf("acquire lock: %w", types.ErrLeaseNotFound)
	}

	resp, err := c.client.AcquireLock(ctx, &pb.AcquireLockRequest{
		Table:   table,
		OwnerId: c.ownerID,
		LeaseId: leaseID,
	})
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", fromGRPCError(err))
	}

	return &Lock{
		client:       c,
		table:        table,
		fencingToken: resp.FencingToken,
	}, nil
}

func (c *Client) Release(ctx context.Context, table string) error {
	_, err := c.client.ReleaseLock(ctx, &pb.ReleaseLockRequest{
		Table:   table,
		LeaseId: c.LeaseID(),
	})
	if err != nil {
		return fmt.Errorf("release lock: %w", fromGRPCError(err))
	}
	return nil
}

func (c *Client) ValidateFence(ctx context.Context, table string, token uint64) (bool, error) {
	resp, err := c.client.ValidateFence(ctx, &pb.ValidateFenceRequest{
		Table:        table,
		FencingToken: token,
	})
	if err != nil {
		return false, fmt.Errorf("validate fence: %w", fromGRPCError(err))
	}
	return resp.Valid, nil
}

func (c *Client) Status(ctx context.Context) (*pb.GetStatusResponse, error) {
	return c.client.GetStatus(ctx, &pb.GetStatusRequest{})
}

// stops heartbeating and closes the connection
// the lease is left to expire on the server
func (c *Client) Stop() error {
	var err error
	c.stopOnce.Do(func() {
		close(c.stopCh)
		c.wg.Wait()

		if c.conn != nil {
			err = c.conn.Close()
		}
	})
	return err
}

var knownErrors = []error{
	types.ErrLeaseNotFound,
	types.ErrLeaseExpired,
	types.ErrInvalidLeaseTTL,
	types.ErrLockNotFound,
	types.ErrLockAlreadyHeld,
	types.ErrNotLockOwner,
	types.ErrStaleToken,
}

// maps a status error from the server back to the domain sentinel it carried
func fromGRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, known := range knownErrors {
		if st.Message() == known.Error() {
			return known
		}
	}
	return err
}
