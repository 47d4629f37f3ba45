// Package txn fences the commit timeline of a table.
//
// A Manager wraps a lock.Lock with an ownership token protocol. Begin
// takes the lock and records the instant that now owns the timeline; End
// clears the owner and releases the lock, but only when the caller names
// the recorded owner. A caller holding a stale or wrong instant never
// drops a lock that belongs to somebody else.
//
// When the lock guard is off (single writer deployments) the Manager is
// inert: no state changes, the lock is never touched.
package txn

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/pixperk/txnfence/pkg/config"
	"github.com/pixperk/txnfence/pkg/lock"
	"github.com/pixperk/txnfence/pkg/metrics"
	"github.com/pixperk/txnfence/pkg/types"
)

// who owns the timeline: nobody, or exactly one instant
type ownership struct {
	owned bool
	owner types.Instant
}

func (o ownership) get() *types.Instant {
	if !o.owned {
		return nil
	}
	owner := o.owner
	return &owner
}

func ownedBy(i *types.Instant) ownership {
	if i == nil {
		return ownership{}
	}
	return ownership{owned: true, owner: *i}
}

type Manager struct {
	lock           lock.Lock
	needsLockGuard bool
	table          string
	logger         hclog.Logger

	mu            sync.Mutex
	current       ownership
	lastCompleted *types.Instant
	closed        bool
}

type Option func(*Manager)

// a nil logger keeps the default null logger
func WithLogger(logger hclog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// table label for logs and metrics
func WithTable(table string) Option {
	return func(m *Manager) {
		m.table = table
	}
}

// the manager owns l from here on and closes it in Close
func New(l lock.Lock, needsLockGuard bool, opts ...Option) *Manager {
	m := &Manager{
		lock:           l,
		needsLockGuard: needsLockGuard,
		logger:         hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = hclog.NewNullLogger()
	}
	m.logger = m.logger.Named("txn")
	if m.table != "" {
		m.logger = m.logger.With("table", m.table)
	}
	return m
}

// builds the configured lock and derives the guard from the write concurrency mode
// no lock is created for an unguarded config
func NewFromConfig(ctx context.Context, cfg *config.Config, logger hclog.Logger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var l lock.Lock
	if cfg.NeedsLockGuard() {
		lm, err := lock.New(ctx, cfg.Lock, logger)
		if err != nil {
			return nil, err
		}
		l = lm
	}

	return New(l, cfg.NeedsLockGuard(), WithLogger(logger), WithTable(cfg.Lock.Table)), nil
}

// Blocks until the lock is granted, then records newOwner as the owner of
// the timeline and lastCompleted as the latest completed instant.
// Lock errors are returned as is, nothing is retried here.
func (m *Manager) BeginTransaction(ctx context.Context, newOwner, lastCompleted *types.Instant) error {
	if !m.needsLockGuard {
		return nil
	}
	if m.isClosed() {
		return types.ErrManagerClosed
	}

	m.logger.Info("transaction starting",
		"owner", types.FormatInstant(newOwner),
		"last_completed", types.FormatInstant(lastCompleted))

	if err := m.lock.Lock(ctx); err != nil {
		return fmt.Errorf("begin transaction for %s: %w", types.FormatInstant(newOwner), err)
	}

	// authorized against whoever is recorded, so this always commits:
	// begin is gated by the lock alone, only end checks identity
	m.mu.Lock()
	committed := m.resetLocked(m.current.get(), newOwner, lastCompleted)
	m.mu.Unlock()
	if !committed {
		m.logger.Error("transaction owner not recorded after begin", "owner", types.FormatInstant(newOwner))
	}

	metrics.TxnBeginTotal.WithLabelValues(m.table).Inc()
	metrics.SetTxnActive(m.table, newOwner != nil)

	logArgs := []any{"owner", types.FormatInstant(newOwner), "last_completed", types.FormatInstant(lastCompleted)}
	if f, ok := m.lock.(lock.Fenced); ok {
		if token, held := f.FencingToken(); held {
			logArgs = append(logArgs, "fencing_token", token)
		}
	}
	m.logger.Info("transaction started", logArgs...)
	return nil
}

// Clears the owner and releases the lock when owner is the recorded owner
// or nothing is recorded. Any other owner leaves state and lock untouched
// and returns nil; the lock stays held until its real owner ends.
func (m *Manager) EndTransaction(ctx context.Context, owner *types.Instant) error {
	if !m.needsLockGuard {
		return nil
	}
	if m.isClosed() {
		return types.ErrManagerClosed
	}

	m.logger.Info("transaction ending", "owner", types.FormatInstant(owner))

	if !m.reset(owner, nil, nil) {
		metrics.TxnEndTotal.WithLabelValues(m.table, "mismatch").Inc()
		m.logger.Warn("transaction owner mismatch, keeping lock",
			"claimed", types.FormatInstant(owner),
			"recorded", types.FormatInstant(m.CurrentOwner()))
		return nil
	}

	// ownership is already cleared, whatever the lock says
	metrics.SetTxnActive(m.table, false)

	if err := m.lock.Unlock(ctx); err != nil {
		metrics.TxnEndTotal.WithLabelValues(m.table, "unlock_error").Inc()
		return fmt.Errorf("end transaction for %s: %w", types.FormatInstant(owner), err)
	}

	metrics.TxnEndTotal.WithLabelValues(m.table, "released").Inc()
	m.logger.Info("transaction ended", "owner", types.FormatInstant(owner))
	return nil
}

// the only writer of current and lastCompleted
// commits when nobody owns the timeline or caller is the owner
func (m *Manager) reset(caller, newOwner, lastCompleted *types.Instant) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resetLocked(caller, newOwner, lastCompleted)
}

// caller must hold m.mu
func (m *Manager) resetLocked(caller, newOwner, lastCompleted *types.Instant) bool {
	if m.current.owned && !types.SameInstant(caller, &m.current.owner) {
		return false
	}

	m.current = ownedBy(newOwner)
	m.lastCompleted = copyInstant(lastCompleted)
	return true
}

// closes the lock when guarding; safe to call more than once
func (m *Manager) Close() error {
	if !m.needsLockGuard {
		return nil
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	m.mu.Unlock()

	if err := m.lock.Close(); err != nil {
		return fmt.Errorf("close lock: %w", err)
	}
	m.logger.Info("transaction manager closed")
	return nil
}

func (m *Manager) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// nil when no transaction is in flight
func (m *Manager) CurrentOwner() *types.Instant {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.get()
}

func (m *Manager) LastCompletedOwner() *types.Instant {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyInstant(m.lastCompleted)
}

func (m *Manager) NeedsLockGuard() bool {
	return m.needsLockGuard
}

func (m *Manager) Lock() lock.Lock {
	return m.lock
}

func copyInstant(i *types.Instant) *types.Instant {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
