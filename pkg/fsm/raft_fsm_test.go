package fsm

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/hashicorp/raft"
	"github.com/pixperk/txnfence/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaftFSMApply(t *testing.T) {
	raftFSM := NewRaftFSM()

	data, err := types.EncodeCommand(types.CreateLeaseCmd{
		OwnerID: "writer-1",
		TTL:     10 * time.Second,
	})
	require.NoError(t, err)

	result := raftFSM.Apply(&raft.Log{
		Index: 1,
		Term:  1,
		Type:  raft.LogCommand,
		Data:  data,
	})

	resp, ok := result.(CreateLeaseResponse)
	require.True(t, ok, "expected CreateLeaseResponse, got %T", result)

	lease, exists := raftFSM.GetFSM().GetLease(resp.LeaseID)
	require.True(t, exists)
	assert.Equal(t, "writer-1", lease.OwnerID)
}

func TestRaftFSMApplyReturnsError(t *testing.T) {
	raftFSM := NewRaftFSM()

	data, err := types.EncodeCommand(types.RenewLeaseCmd{LeaseID: 42})
	require.NoError(t, err)

	result := raftFSM.Apply(&raft.Log{Index: 1, Term: 1, Type: raft.LogCommand, Data: data})
	assert.Equal(t, types.ErrLeaseNotFound, result)
}

func TestRaftFSMSnapshotRestore(t *testing.T) {
	original := NewRaftFSM()

	leaseID := createLease(t, original.fsm, "writer-1", 10*time.Second)
	_, err := original.fsm.Apply(types.AcquireLockCmd{Table: table, OwnerID: "writer-1", LeaseID: leaseID})
	require.NoError(t, err)

	snapshot, err := original.Snapshot()
	require.NoError(t, err)

	fsmSnap := snapshot.(*fsmSnapshot)
	assert.Len(t, fsmSnap.Leases, 1)
	assert.Equal(t, uint64(2), fsmSnap.NextLeaseID)

	var buf bytes.Buffer
	require.NoError(t, snapshot.Persist(&mockSnapshotSink{buffer: &buf}))

	restored := NewRaftFSM()
	require.NoError(t, restored.Restore(io.NopCloser(&buf)))

	lease, ok := restored.fsm.GetLease(leaseID)
	require.True(t, ok)
	assert.Equal(t, "writer-1", lease.OwnerID)
	assert.False(t, lease.IsExpired(restored.fsm.CurrentTime()), "restored lease gets a fresh ttl")

	held, ok := restored.fsm.GetLock(table)
	require.True(t, ok)
	assert.Equal(t, uint64(1), held.FencingToken)

	// counter continues where the snapshot left off
	next := createLease(t, restored.fsm, "writer-2", 10*time.Second)
	assert.Equal(t, uint64(2), next)
}

type mockSnapshotSink struct {
	buffer *bytes.Buffer
}

func (m *mockSnapshotSink) Write(p []byte) (n int, err error) {
	return m.buffer.Write(p)
}

func (m *mockSnapshotSink) Close() error  { return nil }
func (m *mockSnapshotSink) ID() string    { return "mock-snapshot" }
func (m *mockSnapshotSink) Cancel() error { return nil }
