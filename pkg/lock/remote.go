package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pixperk/txnfence/pkg/client"
	"github.com/pixperk/txnfence/pkg/types"
	"google.golang.org/grpc"
)

// RemoteProvider takes table locks from a txnlockd cluster over gRPC.
// The client session owns the lease and its heartbeat.
type RemoteProvider struct {
	client *client.Client
	table  string
	logger hclog.Logger

	mu     sync.Mutex
	lock   *client.Lock
	closed bool
}

func NewRemoteProvider(ctx context.Context, addr, table, ownerID string, ttl time.Duration, logger hclog.Logger, opts ...grpc.DialOption) (*RemoteProvider, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if ttl <= 0 {
		ttl = defaultLeaseTTL
	}

	c, err := client.NewClient(addr, ownerID, logger, opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Start(ctx, ttl); err != nil {
		c.Stop()
		return nil, fmt.Errorf("start session: %w", err)
	}

	return &RemoteProvider{
		client: c,
		table:  table,
		logger: logger.With("provider", "remote", "owner_id", ownerID),
	}, nil
}

func (p *RemoteProvider) TryLock(ctx context.Context, timeout time.Duration) (bool, error) {
	return pollUntil(ctx, timeout, p.attempt)
}

func (p *RemoteProvider) attempt(ctx context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false, types.ErrLockClosed
	}

	l, err := p.client.Acquire(ctx, p.table)
	if errors.Is(err, types.ErrLockAlreadyHeld) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	p.lock = l
	return true, nil
}

func (p *RemoteProvider) Unlock(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.unlockLocked(ctx)
}

// caller must hold p.mu
func (p *RemoteProvider) unlockLocked(ctx context.Context) error {
	if p.lock == nil {
		return types.ErrNotLockOwner
	}

	err := p.lock.Release(ctx)
	p.lock = nil

	if errors.Is(err, types.ErrLockNotFound) || errors.Is(err, types.ErrNotLockOwner) {
		p.logger.Warn("table lock was lost before release", "table", p.table, "error", err)
		return nil
	}
	return err
}

func (p *RemoteProvider) FencingToken() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lock == nil {
		return 0, false
	}
	return p.lock.Token(), true
}

func (p *RemoteProvider) Client() *client.Client {
	return p.client
}

func (p *RemoteProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if p.lock != nil {
		if err := p.unlockLocked(context.Background()); err != nil {
			errs = append(errs, err)
		}
	}
	if err := p.client.Stop(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
