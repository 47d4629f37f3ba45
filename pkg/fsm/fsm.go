package fsm

import (
	"fmt"
	"sync"

	tm "time"

	"github.com/pixperk/txnfence/pkg/time"
	"github.com/pixperk/txnfence/pkg/types"
)

// replicated table lock state
// critical :
// - at most one lease holds the lock of a table
// - fencing tokens are strictly monotonic across every grant
// - an expired lease drops all table locks it was holding
type FSM struct {
	mu sync.RWMutex

	locks  map[string]*types.TableLock // table -> lock
	leases map[uint64]*types.Lease     // lease ID -> Lease

	fencingCounter uint64 // last fencing token handed out
	nextLeaseID    uint64

	clock *time.Clock
}

func NewFSM() *FSM {
	return &FSM{
		locks:       make(map[string]*types.TableLock),
		leases:      make(map[uint64]*types.Lease),
		nextLeaseID: 1, //0 is never a valid lease
		clock:       time.NewClock(),
	}
}

// applies a command to the FSM and returns the result or error
func (f *FSM) Apply(cmd types.Command) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch c := cmd.(type) {
	case types.CreateLeaseCmd:
		return f.applyCreateLease(c)
	case types.RenewLeaseCmd:
		return f.applyRenewLease(c)
	case types.AcquireLockCmd:
		return f.applyAcquireLock(c)
	case types.ReleaseLockCmd:
		return f.applyReleaseLock(c)
	case types.ExpireLeaseCmd:
		return f.applyExpireLease(c)
	default:
		return nil, fmt.Errorf("unknown command type: %T", cmd)
	}
}

type CreateLeaseResponse struct {
	LeaseID   uint64
	ExpiresAt tm.Duration
}

func (f *FSM) applyCreateLease(cmd types.CreateLeaseCmd) (any, error) {
	if cmd.TTL <= 0 {
		return nil, types.ErrInvalidLeaseTTL
	}

	leaseID := f.nextLeaseID
	f.nextLeaseID++

	lease := &types.Lease{
		LeaseID:   leaseID,
		OwnerID:   cmd.OwnerID,
		ExpiresAt: f.clock.ExpiresAt(cmd.TTL),
		TTL:       cmd.TTL,
	}
	f.leases[leaseID] = lease

	return CreateLeaseResponse{
		LeaseID:   leaseID,
		ExpiresAt: lease.ExpiresAt,
	}, nil
}

type RenewLeaseResponse struct {
	ExpiresAt tm.Duration
	TTL       tm.Duration
}

func (f *FSM) applyRenewLease(cmd types.RenewLeaseCmd) (any, error) {
	lease, err := f.liveLease(cmd.LeaseID)
	if err != nil {
		return nil, err
	}

	lease.ExpiresAt = f.clock.ExpiresAt(lease.TTL)

	return RenewLeaseResponse{
		ExpiresAt: lease.ExpiresAt,
		TTL:       lease.TTL,
	}, nil
}

type AcquireLockResponse struct {
	FencingToken uint64
	LeaseTTL     tm.Duration
}

func (f *FSM) applyAcquireLock(cmd types.AcquireLockCmd) (any, error) {
	lease, err := f.liveLease(cmd.LeaseID)
	if err != nil {
		return nil, err
	}

	if lease.OwnerID != cmd.OwnerID {
		return nil, types.ErrNotLockOwner
	}

	if held, ok := f.locks[cmd.Table]; ok {
		//same lease asking again gets the token it already has
		if held.LeaseID == cmd.LeaseID {
			return AcquireLockResponse{
				FencingToken: held.FencingToken,
				LeaseTTL:     lease.TTL,
			}, nil
		}
		return nil, types.ErrLockAlreadyHeld
	}

	f.fencingCounter++

	f.locks[cmd.Table] = &types.TableLock{
		Table:        cmd.Table,
		OwnerID:      cmd.OwnerID,
		FencingToken: f.fencingCounter,
		LeaseID:      cmd.LeaseID,
	}

	return AcquireLockResponse{
		FencingToken: f.fencingCounter,
		LeaseTTL:     lease.TTL,
	}, nil
}

type ReleaseLockResponse struct {
	Released bool
}

func (f *FSM) applyReleaseLock(cmd types.ReleaseLockCmd) (any, error) {
	held, ok := f.locks[cmd.Table]
	if !ok {
		return nil, types.ErrLockNotFound
	}

	if held.LeaseID != cmd.LeaseID {
		return nil, types.ErrNotLockOwner
	}

	delete(f.locks, cmd.Table)

	return ReleaseLockResponse{Released: true}, nil
}

type ExpireLeaseResponse struct {
	LocksReleased int
}

func (f *FSM) applyExpireLease(cmd types.ExpireLeaseCmd) (any, error) {
	if _, ok := f.leases[cmd.LeaseID]; !ok {
		return nil, types.ErrLeaseNotFound
	}

	released := 0
	for table, held := range f.locks {
		if held.LeaseID == cmd.LeaseID {
			delete(f.locks, table)
			released++
		}
	}

	delete(f.leases, cmd.LeaseID)

	return ExpireLeaseResponse{LocksReleased: released}, nil
}

// caller must hold f.mu
func (f *FSM) liveLease(leaseID uint64) (*types.Lease, error) {
	lease, ok := f.leases[leaseID]
	if !ok {
		return nil, types.ErrLeaseNotFound
	}
	if lease.IsExpired(f.clock.Elapsed()) {
		return nil, types.ErrLeaseExpired
	}
	return lease, nil
}

// checks a fencing token presented by a writer against the current holder of the table
// anything but the token of the live holder is stale
func (f *FSM) ValidateFencingToken(table string, token uint64) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	held, ok := f.locks[table]
	if !ok {
		return types.ErrLockNotFound
	}
	if held.FencingToken != token {
		return types.ErrStaleToken
	}
	return nil
}

// returns a copy of the lock held on a table
func (f *FSM) GetLock(table string) (types.TableLock, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	held, ok := f.locks[table]
	if !ok {
		return types.TableLock{}, false
	}
	return *held, true
}

// returns a copy of a lease
func (f *FSM) GetLease(leaseID uint64) (types.Lease, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	lease, ok := f.leases[leaseID]
	if !ok {
		return types.Lease{}, false
	}
	return *lease, true
}

type Stats struct {
	Locks          int
	Leases         int
	FencingCounter uint64
}

func (f *FSM) Stats() Stats {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return Stats{
		Locks:          len(f.locks),
		Leases:         len(f.leases),
		FencingCounter: f.fencingCounter,
	}
}

// lease IDs whose deadline is at or before now
func (f *FSM) GetExpiredLeases(now tm.Duration) []uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var expired []uint64
	for leaseID, lease := range f.leases {
		if lease.IsExpired(now) {
			expired = append(expired, leaseID)
		}
	}
	return expired
}

func (f *FSM) CurrentTime() tm.Duration {
	return f.clock.Elapsed()
}
