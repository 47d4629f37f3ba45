package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "txnfence.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValidAndUnguarded(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.NeedsLockGuard(), "single writer needs no guard")
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
write:
  concurrency_mode: optimistic_concurrency_control
lock:
  provider: remote
  table: s3://warehouse/trips
  num_retries: 3
  retry_wait: 250ms
  lease_ttl: 5s
  remote:
    address: lockd:9000
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.NeedsLockGuard())
	assert.Equal(t, ProviderRemote, cfg.Lock.Provider)
	assert.Equal(t, "s3://warehouse/trips", cfg.Lock.Table)
	assert.Equal(t, uint64(3), cfg.Lock.NumRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Lock.RetryWait)
	assert.Equal(t, 5*time.Second, cfg.Lock.LeaseTTL)
	assert.Equal(t, "lockd:9000", cfg.Lock.Remote.Address)

	// untouched keys keep their defaults
	assert.Equal(t, 10*time.Second, cfg.Lock.TryLockTimeout)
	assert.Equal(t, "localhost:6379", cfg.Lock.Redis.Address)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
lock:
  provder: redis
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Write.ConcurrencyMode = OptimisticConcurrencyControl
	cfg.Lock.Provider = "zookeeper"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock.provider")
	assert.Contains(t, err.Error(), "lock.table")
	assert.Contains(t, err.Error(), "log.level")
}
