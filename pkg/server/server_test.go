package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/pixperk/txnfence/pkg/client"
	"github.com/pixperk/txnfence/pkg/testutil"
	"github.com/pixperk/txnfence/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const table = "s3://warehouse/trips"

func newClient(t *testing.T, cluster *testutil.Cluster, owner string) *client.Client {
	t.Helper()
	c, err := client.NewClient(cluster.Target(), owner, nil, cluster.DialOption())
	require.NoError(t, err)
	t.Cleanup(func() { c.Stop() })
	return c
}

func TestAcquireReleaseOverGRPC(t *testing.T) {
	cluster := testutil.StartCluster(t)
	ctx := context.Background()

	c := newClient(t, cluster, "writer-1")
	require.NoError(t, c.Start(ctx, 10*time.Second))

	lock, err := c.Acquire(ctx, table)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), lock.Token())

	valid, err := lock.Valid(ctx)
	require.NoError(t, err)
	assert.True(t, valid)

	st, err := c.Status(ctx)
	require.NoError(t, err)
	assert.True(t, st.IsLeader)
	assert.Equal(t, int32(1), st.Locks)
	assert.Equal(t, uint64(1), st.FencingCounter)

	require.NoError(t, lock.Release(ctx))

	valid, err = lock.Valid(ctx)
	require.NoError(t, err)
	assert.False(t, valid, "released grant is no longer valid")
}

func TestContendedTableMapsToSentinel(t *testing.T) {
	cluster := testutil.StartCluster(t)
	ctx := context.Background()

	c1 := newClient(t, cluster, "writer-1")
	c2 := newClient(t, cluster, "writer-2")
	require.NoError(t, c1.Start(ctx, 10*time.Second))
	require.NoError(t, c2.Start(ctx, 10*time.Second))

	_, err := c1.Acquire(ctx, table)
	require.NoError(t, err)

	_, err = c2.Acquire(ctx, table)
	assert.ErrorIs(t, err, types.ErrLockAlreadyHeld)

	// c2 cannot release what c1 holds
	err = c2.Release(ctx, table)
	assert.ErrorIs(t, err, types.ErrNotLockOwner)
}

func TestInvalidRequests(t *testing.T) {
	cluster := testutil.StartCluster(t)
	ctx := context.Background()

	c := newClient(t, cluster, "")
	err := c.Start(ctx, 10*time.Second)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = newClient(t, cluster, "writer-1").Acquire(ctx, table)
	assert.ErrorIs(t, err, types.ErrLeaseNotFound, "acquire before Start has no lease")
}

func TestHeartbeatKeepsLeaseAlive(t *testing.T) {
	cluster := testutil.StartCluster(t)
	ctx := context.Background()

	c := newClient(t, cluster, "writer-1")
	require.NoError(t, c.Start(ctx, 600*time.Millisecond))

	_, err := c.Acquire(ctx, table)
	require.NoError(t, err)

	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, 1, cluster.Node.Stats().Locks, "heartbeats should keep the lock")

	// without heartbeats the lease lapses and the lock goes with it
	require.NoError(t, c.Stop())
	assert.Eventually(t, func() bool {
		return cluster.Node.Stats().Locks == 0
	}, 3*time.Second, 50*time.Millisecond)
}
