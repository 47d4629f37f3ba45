package fsm

import (
	"encoding/json"
	"io"

	"github.com/hashicorp/raft"
	"github.com/pixperk/txnfence/pkg/types"
)

// bridges hashicorp/raft to the table lock FSM
type RaftFSM struct {
	fsm *FSM
}

func NewRaftFSM() *RaftFSM {
	return &RaftFSM{
		fsm: NewFSM(),
	}
}

func (rf *RaftFSM) GetFSM() *FSM {
	return rf.fsm
}

// errors are returned as the log response, raft.Node unwraps them
func (rf *RaftFSM) Apply(log *raft.Log) any {
	cmd, err := types.DecodeCommand(log.Data)
	if err != nil {
		return err
	}

	result, err := rf.fsm.Apply(cmd)
	if err != nil {
		return err
	}
	return result
}

func (rf *RaftFSM) Snapshot() (raft.FSMSnapshot, error) {
	rf.fsm.mu.RLock()
	defer rf.fsm.mu.RUnlock()

	snapshot := &fsmSnapshot{
		Locks:          make(map[string]*types.TableLock, len(rf.fsm.locks)),
		Leases:         make(map[uint64]*types.Lease, len(rf.fsm.leases)),
		FencingCounter: rf.fsm.fencingCounter,
		NextLeaseID:    rf.fsm.nextLeaseID,
	}

	for table, held := range rf.fsm.locks {
		lockCopy := *held
		snapshot.Locks[table] = &lockCopy
	}

	for id, lease := range rf.fsm.leases {
		leaseCopy := *lease
		snapshot.Leases[id] = &leaseCopy
	}

	return snapshot, nil
}

// restores FSM state from a snapshot
// lease deadlines are relative to the clock of the node that wrote them, so
// every restored lease gets a fresh TTL measured on this node's clock
func (rf *RaftFSM) Restore(snapshot io.ReadCloser) error {
	defer snapshot.Close()

	var snap fsmSnapshot
	if err := json.NewDecoder(snapshot).Decode(&snap); err != nil {
		return err
	}

	rf.fsm.mu.Lock()
	defer rf.fsm.mu.Unlock()

	if snap.Locks == nil {
		snap.Locks = make(map[string]*types.TableLock)
	}
	if snap.Leases == nil {
		snap.Leases = make(map[uint64]*types.Lease)
	}
	for _, lease := range snap.Leases {
		lease.ExpiresAt = rf.fsm.clock.ExpiresAt(lease.TTL)
	}

	rf.fsm.locks = snap.Locks
	rf.fsm.leases = snap.Leases
	rf.fsm.fencingCounter = snap.FencingCounter
	rf.fsm.nextLeaseID = snap.NextLeaseID

	return nil
}

type fsmSnapshot struct {
	Locks          map[string]*types.TableLock `json:"locks"`
	Leases         map[uint64]*types.Lease     `json:"leases"`
	FencingCounter uint64                      `json:"fencing_counter"`
	NextLeaseID    uint64                      `json:"next_lease_id"`
}

func (s *fsmSnapshot) Persist(sink raft.SnapshotSink) error {
	if err := json.NewEncoder(sink).Encode(s); err != nil {
		sink.Cancel()
		return err
	}
	return sink.Close()
}

func (s *fsmSnapshot) Release() {}
