package raft

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/raft"
	"github.com/pixperk/txnfence/pkg/fsm"
	"github.com/pixperk/txnfence/pkg/metrics"
	"github.com/pixperk/txnfence/pkg/storage"
	"github.com/pixperk/txnfence/pkg/types"
)

const (
	applyTimeout               = 5 * time.Second
	defaultExpiryCheckInterval = 100 * time.Millisecond
)

// wraps a raft instance around the table lock FSM
type Node struct {
	raft    *raft.Raft
	fsm     *fsm.FSM
	storage *storage.BoltDBStorage
	cfg     *Config
	logger  hclog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type Config struct {
	NodeID    uuid.UUID //unique ID for this node
	BindAddr  string    //raft transport address
	DataDir   string    //bolt log store and snapshots
	Bootstrap bool      //first node of a new cluster

	//how often the leader looks for expired leases
	ExpiryCheckInterval time.Duration
	Logger              hclog.Logger
}

func NewNode(cfg *Config) (*Node, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("raft")

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	raftFSM := fsm.NewRaftFSM()

	raftCfg := raft.DefaultConfig()
	raftCfg.LocalID = raft.ServerID(cfg.NodeID.String())
	raftCfg.Logger = logger

	raftCfg.HeartbeatTimeout = 1000 * time.Millisecond
	raftCfg.ElectionTimeout = 1000 * time.Millisecond
	raftCfg.LeaderLeaseTimeout = 500 * time.Millisecond
	raftCfg.CommitTimeout = 50 * time.Millisecond
	raftCfg.SnapshotThreshold = 8192

	raftStorage, err := storage.NewBoltDBStorage(cfg.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create stores: %w", err)
	}

	addr, err := net.ResolveTCPAddr("tcp", cfg.BindAddr)
	if err != nil {
		raftStorage.Close()
		return nil, fmt.Errorf("failed to resolve bind addr: %w", err)
	}

	//port 0 is not advertisable, let the listener pick and advertise itself
	var advertise net.Addr
	if addr.Port != 0 {
		advertise = addr
	}

	transport, err := raft.NewTCPTransportWithLogger(cfg.BindAddr, advertise, 3, 10*time.Second, logger.Named("transport"))
	if err != nil {
		raftStorage.Close()
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	r, err := raft.NewRaft(raftCfg, raftFSM, raftStorage.LogStore, raftStorage.StableStore, raftStorage.SnapshotStore, transport)
	if err != nil {
		transport.Close()
		raftStorage.Close()
		return nil, fmt.Errorf("failed to create raft: %w", err)
	}

	if cfg.Bootstrap {
		future := r.BootstrapCluster(raft.Configuration{
			Servers: []raft.Server{
				{
					ID:      raftCfg.LocalID,
					Address: transport.LocalAddr(),
				},
			},
		})
		//restarting a bootstrapped node reports ErrCantBootstrap, the log already has a config
		if err := future.Error(); err != nil && !errors.Is(err, raft.ErrCantBootstrap) {
			r.Shutdown()
			raftStorage.Close()
			return nil, fmt.Errorf("failed to bootstrap cluster: %w", err)
		}
	}

	interval := cfg.ExpiryCheckInterval
	if interval <= 0 {
		interval = defaultExpiryCheckInterval
	}

	n := &Node{
		raft:    r,
		fsm:     raftFSM.GetFSM(),
		storage: raftStorage,
		cfg:     cfg,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}

	n.wg.Add(1)
	go n.expiryLoop(interval)

	return n, nil
}

// replicates a command and returns the FSM result
// FSM errors come back unwrapped so callers can compare against types.Err*
func (n *Node) Apply(cmd types.Command) (any, error) {
	data, err := types.EncodeCommand(cmd)
	if err != nil {
		return nil, err
	}

	future := n.raft.Apply(data, applyTimeout)
	if err := future.Error(); err != nil {
		return nil, fmt.Errorf("failed to apply command: %w", err)
	}

	metrics.RaftAppliedIndex.Set(float64(future.Index()))

	resp := future.Response()
	if err, ok := resp.(error); ok {
		return nil, err
	}
	return resp, nil
}

// leader-only: expires leases whose holders stopped heartbeating
func (n *Node) expiryLoop(interval time.Duration) {
	defer n.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-n.stopCh:
			return
		case <-ticker.C:
			isLeader := n.IsLeader()
			metrics.SetLeader(isLeader)
			if !isLeader {
				continue
			}
			n.expireLeases()
		}
	}
}

func (n *Node) expireLeases() {
	for _, leaseID := range n.fsm.GetExpiredLeases(n.fsm.CurrentTime()) {
		result, err := n.Apply(types.ExpireLeaseCmd{LeaseID: leaseID})
		if err != nil {
			//already reaped by an earlier tick
			if errors.Is(err, types.ErrLeaseNotFound) {
				continue
			}
			n.logger.Warn("failed to expire lease", "lease_id", leaseID, "error", err)
			continue
		}

		resp := result.(fsm.ExpireLeaseResponse)
		metrics.LeaseExpireTotal.Inc()
		n.logger.Info("lease expired", "lease_id", leaseID, "locks_released", resp.LocksReleased)
	}

	stats := n.fsm.Stats()
	metrics.LeasesActive.Set(float64(stats.Leases))
	metrics.LocksActive.Set(float64(stats.Locks))
}

func (n *Node) IsLeader() bool {
	return n.raft.State() == raft.Leader
}

// returns the leader's raft address, empty when unknown
func (n *Node) GetLeader() string {
	leaderAddr, _ := n.raft.LeaderWithID()
	return string(leaderAddr)
}

func (n *Node) GetNodeID() uuid.UUID {
	return n.cfg.NodeID
}

func (n *Node) GetState() raft.RaftState {
	return n.raft.State()
}

func (n *Node) GetClusterSize() int {
	future := n.raft.GetConfiguration()
	if err := future.Error(); err != nil {
		return 0
	}
	return len(future.Configuration().Servers)
}

// blocks until a leader is elected
func (n *Node) WaitForLeader(timeout time.Duration) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	timeoutCh := time.After(timeout)

	for {
		select {
		case <-timeoutCh:
			return fmt.Errorf("no leader elected within %s", timeout)
		case <-ticker.C:
			if n.GetLeader() != "" {
				return nil
			}
		}
	}
}

func (n *Node) Stats() fsm.Stats {
	return n.fsm.Stats()
}

func (n *Node) GetLock(table string) (types.TableLock, bool) {
	return n.fsm.GetLock(table)
}

// reads local state, callers that need linearizable answers must ask the leader
func (n *Node) ValidateFencingToken(table string, token uint64) error {
	return n.fsm.ValidateFencingToken(table, token)
}

// stops the expiry loop, shuts raft down and closes the bolt store
func (n *Node) Shutdown() error {
	var err error
	n.stopOnce.Do(func() {
		close(n.stopCh)
		n.wg.Wait()

		err = n.raft.Shutdown().Error()
		if cerr := n.storage.Close(); err == nil {
			err = cerr
		}
	})
	return err
}
