package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/raft"
	raftboltdb "github.com/hashicorp/raft-boltdb/v2"
)

const (
	dbFile         = "raft.db"
	snapshotDir    = "snapshots"
	snapshotRetain = 3
)

// BoltDBStorage bundles the durable stores of one lock service node
// logstore : raft log entries (lease and table lock commands)
// stablestore : current term and vote, survives restarts
// snapshotstore : json snapshots of the table lock FSM
type BoltDBStorage struct {
	LogStore      raft.LogStore
	StableStore   raft.StableStore
	SnapshotStore raft.SnapshotStore

	db *raftboltdb.BoltStore
}

func NewBoltDBStorage(dataDir string, logger hclog.Logger) (*BoltDBStorage, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	//one bolt file serves as both log and stable store
	db, err := raftboltdb.New(raftboltdb.Options{
		Path: filepath.Join(dataDir, dbFile),
	})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}

	snapshots, err := raft.NewFileSnapshotStoreWithLogger(filepath.Join(dataDir, snapshotDir), snapshotRetain, logger.Named("snapshot"))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	return &BoltDBStorage{
		LogStore:      db,
		StableStore:   db,
		SnapshotStore: snapshots,
		db:            db,
	}, nil
}

func (b *BoltDBStorage) Close() error {
	return b.db.Close()
}
