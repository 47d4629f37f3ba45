package txn

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pixperk/txnfence/pkg/config"
	"github.com/pixperk/txnfence/pkg/lock"
	"github.com/pixperk/txnfence/pkg/metrics"
	"github.com/pixperk/txnfence/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// records calls, never blocks
type recordingLock struct {
	mu       sync.Mutex
	held     bool
	locks    int
	unlocks  int
	closes   int
	lockErr  error
	touched  bool
	failFast bool // fail the test on any call
	t        *testing.T
}

func (l *recordingLock) Lock(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touch()
	if l.lockErr != nil {
		return l.lockErr
	}
	l.locks++
	l.held = true
	return nil
}

func (l *recordingLock) Unlock(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touch()
	l.unlocks++
	l.held = false
	return nil
}

func (l *recordingLock) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.touch()
	l.closes++
	return nil
}

func (l *recordingLock) touch() {
	l.touched = true
	if l.failFast {
		l.t.Errorf("lock must not be touched")
	}
}

func (l *recordingLock) isHeld() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}

func instant(ts string) *types.Instant {
	return types.NewInstant(ts, "commit", types.StateInflight)
}

// Scenario A
func TestBeginTakesLockAndOwnership(t *testing.T) {
	l := &recordingLock{}
	m := New(l, true)

	require.NoError(t, m.BeginTransaction(context.Background(), instant("t1"), nil))

	assert.Equal(t, instant("t1"), m.CurrentOwner())
	assert.Nil(t, m.LastCompletedOwner())
	assert.True(t, l.isHeld())
	assert.Equal(t, 1, l.locks)
}

// Scenario B
func TestEndByOwnerReleases(t *testing.T) {
	l := &recordingLock{}
	m := New(l, true)
	ctx := context.Background()

	require.NoError(t, m.BeginTransaction(ctx, instant("t1"), nil))
	require.NoError(t, m.EndTransaction(ctx, instant("t1")))

	assert.Nil(t, m.CurrentOwner())
	assert.False(t, l.isHeld())
	assert.Equal(t, 1, l.unlocks)
}

// Scenario C
func TestEndByWrongOwnerKeepsLock(t *testing.T) {
	l := &recordingLock{}
	m := New(l, true)
	ctx := context.Background()

	require.NoError(t, m.BeginTransaction(ctx, instant("t1"), instant("t0")))

	// mismatch is silent
	require.NoError(t, m.EndTransaction(ctx, instant("wrong")))
	assert.Equal(t, instant("t1"), m.CurrentOwner())
	assert.Equal(t, instant("t0"), m.LastCompletedOwner(), "mismatch leaves last completed alone")
	assert.True(t, l.isHeld())
	assert.Equal(t, 0, l.unlocks)

	// same timestamp, different state is a different owner
	completed := types.NewInstant("t1", "commit", types.StateCompleted)
	require.NoError(t, m.EndTransaction(ctx, completed))
	assert.True(t, l.isHeld())

	// an absent claim does not match a recorded owner either
	require.NoError(t, m.EndTransaction(ctx, nil))
	assert.True(t, l.isHeld())
	assert.Equal(t, instant("t1"), m.CurrentOwner())

	// the real owner can still end it
	require.NoError(t, m.EndTransaction(ctx, instant("t1")))
	assert.False(t, l.isHeld())
}

// P4
func TestEndWithoutOwnerReleases(t *testing.T) {
	for _, claim := range []*types.Instant{nil, instant("anything")} {
		t.Run(types.FormatInstant(claim), func(t *testing.T) {
			l := &recordingLock{}
			m := New(l, true)

			require.NoError(t, m.EndTransaction(context.Background(), claim))
			assert.Nil(t, m.CurrentOwner())
			assert.Equal(t, 1, l.unlocks, "no recorded owner matches any claim")
		})
	}
}

// same as above over a real lock that was never taken
func TestEndWithoutOwnerOnUnheldLock(t *testing.T) {
	table := t.Name()
	ctx := context.Background()

	lm := lock.NewManager(lock.NewLocalProvider(table), lock.ManagerConfig{
		Table:          table,
		RetryWait:      time.Millisecond,
		TryLockTimeout: 20 * time.Millisecond,
	}, nil)
	m := New(lm, true, WithTable(table))
	defer m.Close()

	require.NoError(t, m.EndTransaction(ctx, instant("x")))
	require.NoError(t, m.EndTransaction(ctx, nil))
	assert.False(t, lm.IsHeld())

	// the lock is still usable afterwards
	require.NoError(t, m.BeginTransaction(ctx, instant("t1"), nil))
	assert.True(t, lm.IsHeld())
	require.NoError(t, m.EndTransaction(ctx, instant("t1")))
	assert.False(t, lm.IsHeld())
}

func TestBeginWithoutOwnerForAdminActions(t *testing.T) {
	l := &recordingLock{}
	m := New(l, true)
	ctx := context.Background()

	require.NoError(t, m.BeginTransaction(ctx, nil, nil))
	assert.Nil(t, m.CurrentOwner())
	assert.True(t, l.isHeld())

	require.NoError(t, m.EndTransaction(ctx, nil))
	assert.False(t, l.isHeld())
}

func TestBeginTracksLastCompleted(t *testing.T) {
	m := New(&recordingLock{}, true)
	ctx := context.Background()

	last := types.NewInstant("t1", "commit", types.StateCompleted)
	require.NoError(t, m.BeginTransaction(ctx, instant("t2"), last))
	assert.Equal(t, last, m.LastCompletedOwner())

	// accessors hand out copies
	m.LastCompletedOwner().Timestamp = "mutated"
	m.CurrentOwner().Timestamp = "mutated"
	assert.Equal(t, last, m.LastCompletedOwner())
	assert.Equal(t, instant("t2"), m.CurrentOwner())

	require.NoError(t, m.EndTransaction(ctx, instant("t2")))
	assert.Nil(t, m.LastCompletedOwner(), "end clears last completed")
}

// Begin is gated only by the lock. With a lock that lets the same caller
// through twice, a second begin replaces the owner without any identity check.
func TestBeginNeverRejectedByOwnership(t *testing.T) {
	l := &recordingLock{}
	m := New(l, true)
	ctx := context.Background()

	require.NoError(t, m.BeginTransaction(ctx, instant("t1"), nil))
	require.NoError(t, m.BeginTransaction(ctx, instant("t2"), nil))

	assert.Equal(t, instant("t2"), m.CurrentOwner())
	assert.Nil(t, m.LastCompletedOwner())
	assert.Equal(t, 2, l.locks)

	// t1 is fenced out now
	require.NoError(t, m.EndTransaction(ctx, instant("t1")))
	assert.Equal(t, 0, l.unlocks)
}

func TestBeginPropagatesLockError(t *testing.T) {
	lockErr := fmt.Errorf("%w: trips after 3 attempts", types.ErrLockUnavailable)
	l := &recordingLock{lockErr: lockErr}
	m := New(l, true)

	err := m.BeginTransaction(context.Background(), instant("t1"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrLockUnavailable)
	assert.Nil(t, m.CurrentOwner(), "no ownership without the lock")
}

func TestEndPropagatesUnlockError(t *testing.T) {
	table := t.Name()
	unlockErr := errors.New("connection refused")
	m := New(&failingUnlock{err: unlockErr}, true, WithTable(table))
	ctx := context.Background()

	require.NoError(t, m.BeginTransaction(ctx, instant("t1"), nil))
	assert.Equal(t, float64(1), gaugeValue(t, metrics.TxnActive.WithLabelValues(table)))

	assert.ErrorIs(t, m.EndTransaction(ctx, instant("t1")), unlockErr)
	assert.Nil(t, m.CurrentOwner())
	assert.Equal(t, float64(0), gaugeValue(t, metrics.TxnActive.WithLabelValues(table)), "owner is gone even though unlock failed")
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

type failingUnlock struct {
	recordingLock
	err error
}

func (f *failingUnlock) Unlock(ctx context.Context) error {
	return f.err
}

// Scenario D and P3
func TestUnguardedManagerIsInert(t *testing.T) {
	l := &recordingLock{failFast: true, t: t}
	m := New(l, false)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, m.BeginTransaction(ctx, instant(fmt.Sprintf("t%d", i)), instant("prev")))
		assert.Nil(t, m.CurrentOwner())
		assert.Nil(t, m.LastCompletedOwner())
		require.NoError(t, m.EndTransaction(ctx, instant("other")))
	}
	require.NoError(t, m.Close())

	assert.False(t, m.NeedsLockGuard())
	assert.False(t, l.touched)
}

func TestCloseIsTerminal(t *testing.T) {
	l := &recordingLock{}
	m := New(l, true)
	ctx := context.Background()

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.Equal(t, 1, l.closes)

	assert.ErrorIs(t, m.BeginTransaction(ctx, instant("t1"), nil), types.ErrManagerClosed)
	assert.ErrorIs(t, m.EndTransaction(ctx, instant("t1")), types.ErrManagerClosed)
	assert.Equal(t, 0, l.locks)
}

// P1: with a real lock, no two writers ever see themselves as owner at once
func TestConcurrentWritersNeverShareOwnership(t *testing.T) {
	table := t.Name()
	ctx := context.Background()

	m := New(lock.NewManager(lock.NewLocalProvider(table), lock.ManagerConfig{
		Table:          table,
		NumRetries:     1000,
		RetryWait:      time.Millisecond,
		TryLockTimeout: 20 * time.Millisecond,
	}, nil), true, WithTable(table))
	defer m.Close()

	var inside int32
	var wg sync.WaitGroup
	for w := 0; w < 6; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				me := instant(fmt.Sprintf("w%d-%d", w, i))
				if !assert.NoError(t, m.BeginTransaction(ctx, me, nil)) {
					return
				}

				assert.Equal(t, int32(1), atomic.AddInt32(&inside, 1), "two transactions in flight")
				assert.Equal(t, me, m.CurrentOwner())
				atomic.AddInt32(&inside, -1)

				assert.NoError(t, m.EndTransaction(ctx, me))
			}
		}(w)
	}
	wg.Wait()

	assert.Nil(t, m.CurrentOwner())
}

// a writer holding a stale instant cannot release the lock of the live one
func TestStaleWriterCannotReleaseLiveLock(t *testing.T) {
	table := t.Name()
	ctx := context.Background()

	lm := lock.NewManager(lock.NewLocalProvider(table), lock.ManagerConfig{
		Table:          table,
		RetryWait:      time.Millisecond,
		TryLockTimeout: 20 * time.Millisecond,
	}, nil)
	m := New(lm, true)
	defer m.Close()

	require.NoError(t, m.BeginTransaction(ctx, instant("live"), nil))
	require.NoError(t, m.EndTransaction(ctx, instant("stale")))
	assert.True(t, lm.IsHeld())

	// a competing writer in the same process still cannot get in
	other := lock.NewLocalProvider(table)
	ok, err := other.TryLock(ctx, 20*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.EndTransaction(ctx, instant("live")))
	assert.False(t, lm.IsHeld())
}

func TestNilLoggerFallsBackToNullLogger(t *testing.T) {
	l := &recordingLock{}
	m := New(l, true, WithLogger(nil), WithTable("trips"))
	ctx := context.Background()

	require.NoError(t, m.BeginTransaction(ctx, instant("t1"), nil))
	require.NoError(t, m.EndTransaction(ctx, instant("other")))
	require.NoError(t, m.EndTransaction(ctx, instant("t1")))
	assert.Equal(t, 1, l.unlocks)
}

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("single writer", func(t *testing.T) {
		m, err := NewFromConfig(ctx, config.Default(), nil)
		require.NoError(t, err)
		assert.False(t, m.NeedsLockGuard())
		assert.Nil(t, m.Lock())
		require.NoError(t, m.BeginTransaction(ctx, instant("t1"), nil))
		assert.Nil(t, m.CurrentOwner())
	})

	t.Run("optimistic concurrency", func(t *testing.T) {
		cfg := config.Default()
		cfg.Write.ConcurrencyMode = config.OptimisticConcurrencyControl
		cfg.Lock.Table = t.Name()
		cfg.Lock.RetryWait = time.Millisecond

		m, err := NewFromConfig(ctx, cfg, nil)
		require.NoError(t, err)
		defer m.Close()

		assert.True(t, m.NeedsLockGuard())
		require.NoError(t, m.BeginTransaction(ctx, instant("t1"), nil))
		assert.Equal(t, instant("t1"), m.CurrentOwner())
		require.NoError(t, m.EndTransaction(ctx, instant("t1")))
	})

	t.Run("invalid", func(t *testing.T) {
		cfg := config.Default()
		cfg.Write.ConcurrencyMode = config.OptimisticConcurrencyControl
		_, err := NewFromConfig(ctx, cfg, nil)
		assert.Error(t, err, "guarded config without a table is rejected")
	})
}
