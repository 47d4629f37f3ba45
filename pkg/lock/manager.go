package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pixperk/txnfence/pkg/metrics"
	"github.com/pixperk/txnfence/pkg/types"
	"github.com/sethvargo/go-retry"
)

type ManagerConfig struct {
	Table          string
	NumRetries     uint64
	RetryWait      time.Duration
	TryLockTimeout time.Duration
}

// Manager turns a try-lock Provider into a blocking Lock.
// Every attempt is bounded by TryLockTimeout; a busy or failed attempt is
// retried NumRetries times, RetryWait apart, before giving up with
// types.ErrLockUnavailable.
type Manager struct {
	provider Provider
	cfg      ManagerConfig
	logger   hclog.Logger

	mu         sync.Mutex
	held       bool
	acquiredAt time.Time
	closed     bool
}

var errLockBusy = errors.New("lock held by another owner")

func NewManager(provider Provider, cfg ManagerConfig, logger hclog.Logger) *Manager {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	//go-retry rejects a zero interval
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = time.Millisecond
	}
	if cfg.TryLockTimeout <= 0 {
		cfg.TryLockTimeout = time.Second
	}
	return &Manager{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With("table", cfg.Table),
	}
}

func (m *Manager) Lock(ctx context.Context) error {
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return types.ErrLockClosed
	}

	start := time.Now()
	attempt := 0

	backoff := retry.WithMaxRetries(m.cfg.NumRetries, retry.NewConstant(m.cfg.RetryWait))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		ok, err := m.provider.TryLock(ctx, m.cfg.TryLockTimeout)
		switch {
		case err != nil && permanent(err):
			return err
		case err != nil:
			metrics.LockAcquireTotal.WithLabelValues(m.cfg.Table, "retry").Inc()
			m.logger.Debug("lock attempt failed", "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		case !ok:
			metrics.LockAcquireTotal.WithLabelValues(m.cfg.Table, "retry").Inc()
			m.logger.Debug("lock busy", "attempt", attempt)
			return retry.RetryableError(errLockBusy)
		}
		return nil
	})

	metrics.LockAcquireDuration.WithLabelValues(m.cfg.Table).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.LockAcquireTotal.WithLabelValues(m.cfg.Table, "failure").Inc()
		m.logger.Warn("unable to acquire lock", "attempts", attempt, "error", err)
		if errors.Is(err, types.ErrLockClosed) {
			return err
		}
		return fmt.Errorf("%w: %s after %d attempts: %w", types.ErrLockUnavailable, m.cfg.Table, attempt, err)
	}

	metrics.LockAcquireTotal.WithLabelValues(m.cfg.Table, "success").Inc()

	m.mu.Lock()
	m.held = true
	m.acquiredAt = time.Now()
	m.mu.Unlock()

	m.logger.Debug("lock acquired", "attempts", attempt)
	return nil
}

// no-op when nothing is held, so a release without a grant never reaches the provider
func (m *Manager) Unlock(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.held {
		m.logger.Debug("unlock without a held lock, ignoring")
		return nil
	}
	return m.unlockLocked(ctx)
}

// caller must hold m.mu
func (m *Manager) unlockLocked(ctx context.Context) error {
	if err := m.provider.Unlock(ctx); err != nil {
		return fmt.Errorf("unlock %s: %w", m.cfg.Table, err)
	}

	metrics.LockHeldDuration.WithLabelValues(m.cfg.Table).Observe(time.Since(m.acquiredAt).Seconds())
	metrics.LockReleaseTotal.WithLabelValues(m.cfg.Table).Inc()
	m.held = false

	m.logger.Debug("lock released")
	return nil
}

// releases a held lock, then closes the provider
// later calls are no-ops
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	if m.held {
		if err := m.unlockLocked(context.Background()); err != nil {
			errs = append(errs, err)
		}
	}
	if err := m.provider.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close provider: %w", err))
	}
	return errors.Join(errs...)
}

func (m *Manager) IsHeld() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held
}

func (m *Manager) Provider() Provider {
	return m.provider
}

// token of the current grant when the provider hands them out
func (m *Manager) FencingToken() (uint64, bool) {
	if f, ok := m.provider.(Fenced); ok {
		return f.FencingToken()
	}
	return 0, false
}
