// Package lock holds the mutual exclusion backends a transaction manager
// wraps: an in-process lock, an embedded raft lock, the remote lock
// service and redis. Backends implement the try-lock Provider contract and
// Manager turns any of them into a blocking Lock with retries.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/pixperk/txnfence/pkg/config"
	"github.com/pixperk/txnfence/pkg/raft"
	"github.com/pixperk/txnfence/pkg/types"
)

// what a transaction manager needs from a lock
type Lock interface {
	// blocks until the lock is granted, fails with types.ErrLockUnavailable
	Lock(ctx context.Context) error
	// only valid after a successful Lock
	Unlock(ctx context.Context) error
	// terminal, releases connections and anything still held
	Close() error
}

// a single bounded attempt at the lock, implemented by each backend
type Provider interface {
	// false with a nil error means someone else holds it
	TryLock(ctx context.Context, timeout time.Duration) (bool, error)
	Unlock(ctx context.Context) error
	Close() error
}

// implemented by backends that hand out fencing tokens with each grant
type Fenced interface {
	FencingToken() (uint64, bool)
}

const (
	pollInterval    = 50 * time.Millisecond
	defaultLeaseTTL = 30 * time.Second
)

// repeats attempt until it succeeds, fails, or timeout passes
// attempt returns false while the lock is busy
func pollUntil(ctx context.Context, timeout time.Duration, attempt func(ctx context.Context) (bool, error)) (bool, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		ok, err := attempt(ctx)
		if err != nil || ok {
			return ok, err
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-deadline.C:
			return false, nil
		case <-ticker.C:
		}
	}
}

// builds the configured backend wrapped in a retrying Manager
func New(ctx context.Context, cfg config.LockConfig, logger hclog.Logger) (*Manager, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("lock")

	provider, err := newProvider(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create %s lock provider: %w", cfg.Provider, err)
	}

	return NewManager(provider, ManagerConfig{
		Table:          cfg.Table,
		NumRetries:     cfg.NumRetries,
		RetryWait:      cfg.RetryWait,
		TryLockTimeout: cfg.TryLockTimeout,
	}, logger), nil
}

func newProvider(ctx context.Context, cfg config.LockConfig, logger hclog.Logger) (Provider, error) {
	ownerID := uuid.New().String()

	switch cfg.Provider {
	case config.ProviderLocal:
		return NewLocalProvider(cfg.Table), nil

	case config.ProviderRaft:
		nodeID := uuid.New()
		if cfg.Raft.NodeID != "" {
			parsed, err := uuid.Parse(cfg.Raft.NodeID)
			if err != nil {
				return nil, fmt.Errorf("invalid raft node id: %w", err)
			}
			nodeID = parsed
		}
		node, err := raft.NewNode(&raft.Config{
			NodeID:    nodeID,
			BindAddr:  cfg.Raft.BindAddr,
			DataDir:   cfg.Raft.DataDir,
			Bootstrap: cfg.Raft.Bootstrap,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		p := NewRaftProvider(node, cfg.Table, ownerID, cfg.LeaseTTL, logger)
		p.ownsNode = true
		return p, nil

	case config.ProviderRemote:
		return NewRemoteProvider(ctx, cfg.Remote.Address, cfg.Table, ownerID, cfg.LeaseTTL, logger)

	case config.ProviderRedis:
		return NewRedisProvider(ctx, cfg.Redis, cfg.Table, ownerID, cfg.LeaseTTL, logger)

	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// errors that no amount of retrying will fix
func permanent(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, types.ErrLockClosed)
}
