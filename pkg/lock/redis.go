package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pixperk/txnfence/pkg/config"
	"github.com/pixperk/txnfence/pkg/types"
	"github.com/redis/go-redis/v9"
)

// delete or extend the key only while it still carries our owner id
var (
	releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

	extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)
)

// RedisProvider keeps the table lock in a single redis key whose value is
// the owner id. The key carries the lease TTL and is extended while held,
// so a crashed holder frees the table once the TTL runs out.
type RedisProvider struct {
	client  *redis.Client
	key     string
	ownerID string
	ttl     time.Duration
	logger  hclog.Logger

	mu     sync.Mutex
	held   bool
	closed bool
	stopCh chan struct{}
	wg     sync.WaitGroup
}

func NewRedisProvider(ctx context.Context, cfg config.RedisConfig, table, ownerID string, ttl time.Duration, logger hclog.Logger) (*RedisProvider, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		c.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Address, err)
	}
	return newRedisProvider(c, cfg.KeyPrefix+table, ownerID, ttl, logger), nil
}

func newRedisProvider(c *redis.Client, key, ownerID string, ttl time.Duration, logger hclog.Logger) *RedisProvider {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if ttl <= 0 {
		ttl = defaultLeaseTTL
	}
	return &RedisProvider{
		client:  c,
		key:     key,
		ownerID: ownerID,
		ttl:     ttl,
		logger:  logger.With("provider", "redis", "owner_id", ownerID, "key", key),
	}
}

func (p *RedisProvider) TryLock(ctx context.Context, timeout time.Duration) (bool, error) {
	return pollUntil(ctx, timeout, p.attempt)
}

func (p *RedisProvider) attempt(ctx context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false, types.ErrLockClosed
	}

	ok, err := p.client.SetNX(ctx, p.key, p.ownerID, p.ttl).Result()
	if err != nil || !ok {
		return false, err
	}

	p.held = true
	p.stopCh = make(chan struct{})
	p.wg.Add(1)
	go p.keepAlive(p.stopCh)
	return true, nil
}

func (p *RedisProvider) keepAlive(stopCh chan struct{}) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.ttl / 3)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), p.ttl/3)
			n, err := extendScript.Run(ctx, p.client, []string{p.key}, p.ownerID, p.ttl.Milliseconds()).Int()
			cancel()
			if err != nil {
				p.logger.Warn("lock extension failed", "error", err)
				continue
			}
			if n == 0 {
				p.logger.Error("lock key no longer ours, stopping extension")
				return
			}
		}
	}
}

func (p *RedisProvider) Unlock(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.unlockLocked(ctx)
}

// caller must hold p.mu
func (p *RedisProvider) unlockLocked(ctx context.Context) error {
	if !p.held {
		return types.ErrNotLockOwner
	}

	close(p.stopCh)
	p.wg.Wait()
	p.held = false

	n, err := releaseScript.Run(ctx, p.client, []string{p.key}, p.ownerID).Int()
	if err != nil {
		return fmt.Errorf("release %s: %w", p.key, err)
	}
	if n == 0 {
		p.logger.Warn("lock key expired or taken over before release")
	}
	return nil
}

func (p *RedisProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if p.held {
		if err := p.unlockLocked(context.Background()); err != nil {
			errs = append(errs, err)
		}
	}
	if err := p.client.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
