package lock

import (
	"context"
	"sync"
	"time"

	"github.com/pixperk/txnfence/pkg/types"
)

// one semaphore per table, shared by every LocalProvider in the process
var (
	localMu    sync.Mutex
	localLocks = make(map[string]chan struct{})
)

func localSemaphore(table string) chan struct{} {
	localMu.Lock()
	defer localMu.Unlock()

	sem, ok := localLocks[table]
	if !ok {
		sem = make(chan struct{}, 1)
		localLocks[table] = sem
	}
	return sem
}

// LocalProvider serializes writers inside a single process.
// It is not reentrant: a second TryLock from the holder waits like anyone else.
type LocalProvider struct {
	table string
	sem   chan struct{}

	mu     sync.Mutex
	held   bool
	closed bool
}

func NewLocalProvider(table string) *LocalProvider {
	return &LocalProvider{
		table: table,
		sem:   localSemaphore(table),
	}
}

func (p *LocalProvider) TryLock(ctx context.Context, timeout time.Duration) (bool, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return false, types.ErrLockClosed
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case p.sem <- struct{}{}:
		p.mu.Lock()
		p.held = true
		p.mu.Unlock()
		return true, nil
	case <-timer.C:
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (p *LocalProvider) Unlock(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.held {
		return types.ErrNotLockOwner
	}
	p.held = false
	<-p.sem
	return nil
}

func (p *LocalProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.held {
		p.held = false
		<-p.sem
	}
	p.closed = true
	return nil
}
