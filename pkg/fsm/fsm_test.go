package fsm

import (
	"fmt"
	"testing"
	"time"

	"github.com/pixperk/txnfence/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const table = "s3://warehouse/trips"

func createLease(t *testing.T, f *FSM, owner string, ttl time.Duration) uint64 {
	t.Helper()
	result, err := f.Apply(types.CreateLeaseCmd{OwnerID: owner, TTL: ttl})
	require.NoError(t, err)
	return result.(CreateLeaseResponse).LeaseID
}

func TestCreateLease(t *testing.T) {
	f := NewFSM()

	leaseID := createLease(t, f, "writer-1", 10*time.Second)
	assert.Equal(t, uint64(1), leaseID)

	lease, ok := f.GetLease(leaseID)
	require.True(t, ok, "lease should exist")
	assert.Equal(t, "writer-1", lease.OwnerID)
	assert.Equal(t, 10*time.Second, lease.TTL)
}

func TestCreateLeaseInvalidTTL(t *testing.T) {
	f := NewFSM()

	_, err := f.Apply(types.CreateLeaseCmd{OwnerID: "writer-1", TTL: 0})
	assert.ErrorIs(t, err, types.ErrInvalidLeaseTTL)
}

func TestRenewLease(t *testing.T) {
	f := NewFSM()
	leaseID := createLease(t, f, "writer-1", 5*time.Second)
	before, _ := f.GetLease(leaseID)

	time.Sleep(10 * time.Millisecond)

	result, err := f.Apply(types.RenewLeaseCmd{LeaseID: leaseID})
	require.NoError(t, err)

	resp := result.(RenewLeaseResponse)
	assert.Greater(t, resp.ExpiresAt, before.ExpiresAt)
	assert.Equal(t, 5*time.Second, resp.TTL)
}

func TestRenewExpiredLease(t *testing.T) {
	f := NewFSM()
	leaseID := createLease(t, f, "writer-1", 20*time.Millisecond)

	time.Sleep(40 * time.Millisecond)

	_, err := f.Apply(types.RenewLeaseCmd{LeaseID: leaseID})
	assert.ErrorIs(t, err, types.ErrLeaseExpired)
}

func TestAcquireLock(t *testing.T) {
	f := NewFSM()
	leaseID := createLease(t, f, "writer-1", 10*time.Second)

	result, err := f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-1", LeaseID: leaseID})
	require.NoError(t, err)

	resp := result.(AcquireLockResponse)
	assert.Equal(t, uint64(1), resp.FencingToken)
	assert.Equal(t, 10*time.Second, resp.LeaseTTL)

	held, ok := f.GetLock(table)
	require.True(t, ok)
	assert.Equal(t, "writer-1", held.OwnerID)
	assert.Equal(t, resp.FencingToken, held.FencingToken)
}

func TestAcquireLockIdempotent(t *testing.T) {
	f := NewFSM()
	leaseID := createLease(t, f, "writer-1", 10*time.Second)

	first, err := f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-1", LeaseID: leaseID})
	require.NoError(t, err)
	second, err := f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-1", LeaseID: leaseID})
	require.NoError(t, err)

	assert.Equal(t, first.(AcquireLockResponse).FencingToken, second.(AcquireLockResponse).FencingToken,
		"re-acquiring with the same lease must not mint a new token")
	assert.Equal(t, uint64(1), f.Stats().FencingCounter)
}

func TestLockAlreadyHeld(t *testing.T) {
	f := NewFSM()
	lease1 := createLease(t, f, "writer-1", 10*time.Second)
	lease2 := createLease(t, f, "writer-2", 10*time.Second)

	_, err := f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-1", LeaseID: lease1})
	require.NoError(t, err)

	_, err = f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-2", LeaseID: lease2})
	assert.ErrorIs(t, err, types.ErrLockAlreadyHeld)
}

func TestAcquireWithForeignLease(t *testing.T) {
	f := NewFSM()
	leaseID := createLease(t, f, "writer-1", 10*time.Second)

	_, err := f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-2", LeaseID: leaseID})
	assert.ErrorIs(t, err, types.ErrNotLockOwner)

	_, err = f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-1", LeaseID: 999})
	assert.ErrorIs(t, err, types.ErrLeaseNotFound)
}

func TestFencingTokenMonotonicity(t *testing.T) {
	f := NewFSM()
	leaseID := createLease(t, f, "writer-1", 10*time.Second)

	var last uint64
	for i := 0; i < 10; i++ {
		result, err := f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-1", LeaseID: leaseID})
		require.NoError(t, err)
		token := result.(AcquireLockResponse).FencingToken
		assert.Greater(t, token, last, "tokens must be strictly increasing")
		last = token

		_, err = f.Apply(types.ReleaseLockCmd{Table: table, LeaseID: leaseID})
		require.NoError(t, err)
	}
}

func TestReleaseLock(t *testing.T) {
	f := NewFSM()
	lease1 := createLease(t, f, "writer-1", 10*time.Second)
	lease2 := createLease(t, f, "writer-2", 10*time.Second)

	_, err := f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-1", LeaseID: lease1})
	require.NoError(t, err)

	// foreign release must not drop the lock
	_, err = f.Apply(types.ReleaseLockCmd{Table: table, LeaseID: lease2})
	assert.ErrorIs(t, err, types.ErrNotLockOwner)

	result, err := f.Apply(types.ReleaseLockCmd{Table: table, LeaseID: lease1})
	require.NoError(t, err)
	assert.True(t, result.(ReleaseLockResponse).Released)

	_, ok := f.GetLock(table)
	assert.False(t, ok)

	_, err = f.Apply(types.ReleaseLockCmd{Table: table, LeaseID: lease1})
	assert.ErrorIs(t, err, types.ErrLockNotFound)
}

func TestExpireLeaseReleasesLocks(t *testing.T) {
	f := NewFSM()
	leaseID := createLease(t, f, "writer-1", 10*time.Second)

	for i := 0; i < 3; i++ {
		_, err := f.Apply(types.AcquireLockCmd{Table: fmt.Sprintf("table-%d", i), OwnerID: "writer-1", LeaseID: leaseID})
		require.NoError(t, err)
	}

	result, err := f.Apply(types.ExpireLeaseCmd{LeaseID: leaseID})
	require.NoError(t, err)
	assert.Equal(t, 3, result.(ExpireLeaseResponse).LocksReleased)

	stats := f.Stats()
	assert.Equal(t, 0, stats.Locks)
	assert.Equal(t, 0, stats.Leases)
	assert.Equal(t, uint64(3), stats.FencingCounter, "counter survives releases")
}

func TestGetExpiredLeases(t *testing.T) {
	f := NewFSM()
	short := createLease(t, f, "writer-1", 10*time.Millisecond)
	createLease(t, f, "writer-2", time.Minute)

	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, []uint64{short}, f.GetExpiredLeases(f.CurrentTime()))
}

func TestValidateFencingToken(t *testing.T) {
	f := NewFSM()
	lease1 := createLease(t, f, "writer-1", 10*time.Second)
	lease2 := createLease(t, f, "writer-2", 10*time.Second)

	assert.ErrorIs(t, f.ValidateFencingToken(table, 1), types.ErrLockNotFound)

	result, err := f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-1", LeaseID: lease1})
	require.NoError(t, err)
	oldToken := result.(AcquireLockResponse).FencingToken
	require.NoError(t, f.ValidateFencingToken(table, oldToken))

	_, err = f.Apply(types.ExpireLeaseCmd{LeaseID: lease1})
	require.NoError(t, err)
	result, err = f.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-2", LeaseID: lease2})
	require.NoError(t, err)

	// writer-1 woke up after its lease was reaped
	assert.ErrorIs(t, f.ValidateFencingToken(table, oldToken), types.ErrStaleToken)
	assert.NoError(t, f.ValidateFencingToken(table, result.(AcquireLockResponse).FencingToken))
}
