// txnwriter commits instants to a table timeline under the configured
// transaction lock. Run several against the same lock service to watch
// them serialize.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pixperk/txnfence/pkg/config"
	"github.com/pixperk/txnfence/pkg/txn"
	"github.com/pixperk/txnfence/pkg/types"
)

// commit instants are stamped yyyyMMddHHmmssSSS
func instantTime(t time.Time) string {
	return fmt.Sprintf("%s%03d", t.Format("20060102150405"), t.Nanosecond()/int(time.Millisecond))
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults when empty)")
		table      = flag.String("table", "", "Table base path, overrides lock.table")
		provider   = flag.String("provider", "", "Lock provider, overrides lock.provider")
		commits    = flag.Int("commits", 3, "Number of commits to make")
		work       = flag.Duration("work", 500*time.Millisecond, "Simulated write time per commit")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			hclog.Default().Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *table != "" {
		cfg.Lock.Table = *table
	}
	if *provider != "" {
		cfg.Lock.Provider = *provider
		cfg.Write.ConcurrencyMode = config.OptimisticConcurrencyControl
	}

	logger := cfg.Log.Logger("txnwriter")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mgr, err := txn.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to create transaction manager", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mgr.Close(); err != nil {
			logger.Warn("failed to close transaction manager", "error", err)
		}
	}()

	var last *types.Instant
	for i := 0; i < *commits; i++ {
		owner := types.NewInstant(instantTime(time.Now()), "commit", types.StateInflight)

		if err := mgr.BeginTransaction(ctx, owner, last); err != nil {
			logger.Error("begin failed", "instant", owner, "error", err)
			return
		}

		select {
		case <-time.After(*work):
		case <-ctx.Done():
		}

		if err := mgr.EndTransaction(context.Background(), owner); err != nil {
			logger.Error("end failed", "instant", owner, "error", err)
			return
		}
		if ctx.Err() != nil {
			logger.Info("interrupted")
			return
		}

		last = types.NewInstant(owner.Timestamp, owner.Action, types.StateCompleted)
		logger.Info("committed", "instant", last)
	}
}
