package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// transactions begun by writers, labels: table
	TxnBeginTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txnfence_txn_begin_total",
			Help: "total number of transactions begun",
		},
		[]string{"table"},
	)

	// transactions ended, labels: table, status (released/mismatch/unlock_error)
	// mismatch means a caller claimed a token it does not own and the lock was kept
	TxnEndTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txnfence_txn_end_total",
			Help: "total number of transaction end calls",
		},
		[]string{"table", "status"},
	)

	// 1 while a transaction owns the table timeline in this process
	TxnActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "txnfence_txn_active",
			Help: "whether a transaction currently owns the timeline (1 = owned)",
		},
		[]string{"table"},
	)

	// time spent blocking for the lock, retries included
	LockAcquireDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "txnfence_lock_acquire_duration_seconds",
			Help:    "time taken to acquire a lock",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		},
		[]string{"table"},
	)

	// lock attempts, labels: table, status (success/failure/retry)
	LockAcquireTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txnfence_lock_acquire_total",
			Help: "total number of lock acquisition attempts",
		},
		[]string{"table", "status"},
	)

	// how long a lock stayed held, from grant to release
	LockHeldDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "txnfence_lock_held_duration_seconds",
			Help:    "time a lock was held before release",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 14), // 10ms to ~80s
		},
		[]string{"table"},
	)

	LockReleaseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txnfence_lock_release_total",
			Help: "total number of lock releases",
		},
		[]string{"table"},
	)

	// lock service side
	LocksActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "txnfence_locks_active",
			Help: "current number of table locks held in the lock service",
		},
	)

	LeaseCreateTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "txnfence_lease_create_total",
			Help: "total number of leases created",
		},
	)

	LeaseRenewTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "txnfence_lease_renew_total",
			Help: "total number of lease renewals",
		},
		[]string{"status"},
	)

	// spikes mean writers crashed or lost the network while holding a lease
	LeaseExpireTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "txnfence_lease_expire_total",
			Help: "total number of lease expirations",
		},
	)

	LeasesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "txnfence_leases_active",
			Help: "current number of active leases",
		},
	)

	// exactly one node in the cluster should report 1
	RaftIsLeader = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "txnfence_raft_is_leader",
			Help: "whether this node is the raft leader (1 = leader, 0 = follower)",
		},
	)

	RaftAppliedIndex = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "txnfence_raft_applied_index",
			Help: "last raft log index applied to the fsm",
		},
	)
)

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// records leadership as a 0/1 gauge
func SetLeader(isLeader bool) {
	RaftIsLeader.Set(boolGauge(isLeader))
}

// records whether the table timeline is owned in this process
func SetTxnActive(table string, active bool) {
	TxnActive.WithLabelValues(table).Set(boolGauge(active))
}
