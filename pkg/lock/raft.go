package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pixperk/txnfence/pkg/fsm"
	"github.com/pixperk/txnfence/pkg/raft"
	"github.com/pixperk/txnfence/pkg/types"
)

// RaftProvider takes table locks straight from an embedded raft node.
// It holds one lease for its lifetime and renews it at a third of the TTL;
// a lease the node reaped is recreated on the next attempt.
type RaftProvider struct {
	node     *raft.Node
	ownsNode bool
	table    string
	ownerID  string
	ttl      time.Duration
	logger   hclog.Logger

	mu           sync.Mutex
	leaseID      uint64
	held         bool
	fencingToken uint64
	closed       bool

	stopCh    chan struct{}
	startOnce sync.Once
	wg        sync.WaitGroup
}

func NewRaftProvider(node *raft.Node, table, ownerID string, ttl time.Duration, logger hclog.Logger) *RaftProvider {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if ttl <= 0 {
		ttl = defaultLeaseTTL
	}
	return &RaftProvider{
		node:    node,
		table:   table,
		ownerID: ownerID,
		ttl:     ttl,
		logger:  logger.With("provider", "raft", "owner_id", ownerID),
		stopCh:  make(chan struct{}),
	}
}

func (p *RaftProvider) TryLock(ctx context.Context, timeout time.Duration) (bool, error) {
	return pollUntil(ctx, timeout, p.attempt)
}

func (p *RaftProvider) attempt(ctx context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false, types.ErrLockClosed
	}

	if p.leaseID == 0 {
		if err := p.createLeaseLocked(); err != nil {
			return false, err
		}
	}

	result, err := p.node.Apply(types.AcquireLockCmd{
		Table:   p.table,
		OwnerID: p.ownerID,
		LeaseID: p.leaseID,
	})
	switch {
	case errors.Is(err, types.ErrLockAlreadyHeld):
		return false, nil
	case errors.Is(err, types.ErrLeaseNotFound), errors.Is(err, types.ErrLeaseExpired):
		//lease lapsed between renewals, start over with a fresh one next attempt
		p.leaseID = 0
		return false, nil
	case err != nil:
		return false, err
	}

	p.held = true
	p.fencingToken = result.(fsm.AcquireLockResponse).FencingToken
	return true, nil
}

// caller must hold p.mu
func (p *RaftProvider) createLeaseLocked() error {
	result, err := p.node.Apply(types.CreateLeaseCmd{
		OwnerID: p.ownerID,
		TTL:     p.ttl,
	})
	if err != nil {
		return fmt.Errorf("create lease: %w", err)
	}

	p.leaseID = result.(fsm.CreateLeaseResponse).LeaseID
	p.startOnce.Do(func() {
		p.wg.Add(1)
		go p.keepAlive()
	})
	return nil
}

func (p *RaftProvider) keepAlive() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.ttl / 3)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.mu.Lock()
			leaseID := p.leaseID
			p.mu.Unlock()

			if leaseID == 0 {
				continue
			}
			if _, err := p.node.Apply(types.RenewLeaseCmd{LeaseID: leaseID}); err != nil {
				p.logger.Warn("lease renewal failed", "lease_id", leaseID, "error", err)
			}
		}
	}
}

func (p *RaftProvider) Unlock(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.unlockLocked()
}

// caller must hold p.mu
func (p *RaftProvider) unlockLocked() error {
	if !p.held {
		return types.ErrNotLockOwner
	}

	_, err := p.node.Apply(types.ReleaseLockCmd{
		Table:   p.table,
		LeaseID: p.leaseID,
	})
	p.held = false
	p.fencingToken = 0

	//lease reaped while we held it, nothing left to release
	if errors.Is(err, types.ErrLockNotFound) || errors.Is(err, types.ErrNotLockOwner) {
		p.logger.Warn("table lock was lost before release", "table", p.table, "error", err)
		return nil
	}
	return err
}

func (p *RaftProvider) FencingToken() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fencingToken, p.held
}

func (p *RaftProvider) Node() *raft.Node {
	return p.node
}

func (p *RaftProvider) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true

	var errs []error
	if p.held {
		if err := p.unlockLocked(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.leaseID != 0 {
		//hand the lease back now instead of waiting for the ttl
		if _, err := p.node.Apply(types.ExpireLeaseCmd{LeaseID: p.leaseID}); err != nil && !errors.Is(err, types.ErrLeaseNotFound) {
			p.logger.Warn("failed to expire lease on close", "lease_id", p.leaseID, "error", err)
		}
		p.leaseID = 0
	}
	p.mu.Unlock()

	//keepAlive may be waiting on p.mu, stop it only after letting go
	p.startOnce.Do(func() {})
	close(p.stopCh)
	p.wg.Wait()

	if p.ownsNode {
		if err := p.node.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
