package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pixperk/txnfence/pkg/config"
	"github.com/pixperk/txnfence/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// needs a live server: TXNFENCE_REDIS_ADDR=localhost:6379 go test ./pkg/lock
func redisConfig(t *testing.T) config.RedisConfig {
	t.Helper()
	addr := os.Getenv("TXNFENCE_REDIS_ADDR")
	if addr == "" {
		t.Skip("TXNFENCE_REDIS_ADDR not set")
	}
	return config.RedisConfig{
		Address:   addr,
		KeyPrefix: "txnfence:test:" + t.Name() + ":",
	}
}

func TestRedisProviderExcludes(t *testing.T) {
	cfg := redisConfig(t)
	ctx := context.Background()

	a, err := NewRedisProvider(ctx, cfg, "trips", "writer-a", time.Second, nil)
	require.NoError(t, err)
	defer a.Close()
	b, err := NewRedisProvider(ctx, cfg, "trips", "writer-b", time.Second, nil)
	require.NoError(t, err)
	defer b.Close()

	ok, err := a.TryLock(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// outlives the ttl thanks to extension
	time.Sleep(1500 * time.Millisecond)

	ok, err = b.TryLock(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.Unlock(ctx))
	assert.ErrorIs(t, a.Unlock(ctx), types.ErrNotLockOwner)

	ok, err = b.TryLock(ctx, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}
