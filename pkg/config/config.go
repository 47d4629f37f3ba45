package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"
)

// how many writers may commit to a table at once
type WriteConcurrencyMode string

const (
	SingleWriter                 WriteConcurrencyMode = "single_writer"
	OptimisticConcurrencyControl WriteConcurrencyMode = "optimistic_concurrency_control"
)

// lock backends
const (
	ProviderLocal  = "local"
	ProviderRaft   = "raft"
	ProviderRemote = "remote"
	ProviderRedis  = "redis"
)

type Config struct {
	Write WriteConfig `yaml:"write"`
	Lock  LockConfig  `yaml:"lock"`
	Log   LogConfig   `yaml:"log"`
}

type WriteConfig struct {
	ConcurrencyMode WriteConcurrencyMode `yaml:"concurrency_mode"`
}

type LockConfig struct {
	Provider string `yaml:"provider"`
	Table    string `yaml:"table"` //table base path, names the lock

	NumRetries     uint64        `yaml:"num_retries"`      //extra try-lock attempts after the first
	RetryWait      time.Duration `yaml:"retry_wait"`       //pause between attempts
	TryLockTimeout time.Duration `yaml:"try_lock_timeout"` //bound on a single attempt
	LeaseTTL       time.Duration `yaml:"lease_ttl"`        //raft, remote and redis holders

	Raft   RaftConfig   `yaml:"raft"`
	Remote RemoteConfig `yaml:"remote"`
	Redis  RedisConfig  `yaml:"redis"`
}

type RaftConfig struct {
	NodeID    string `yaml:"node_id"` //uuid, generated when empty
	BindAddr  string `yaml:"bind_addr"`
	DataDir   string `yaml:"data_dir"`
	Bootstrap bool   `yaml:"bootstrap"`
}

type RemoteConfig struct {
	Address string `yaml:"address"`
}

type RedisConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func Default() *Config {
	return &Config{
		Write: WriteConfig{
			ConcurrencyMode: SingleWriter,
		},
		Lock: LockConfig{
			Provider:       ProviderLocal,
			NumRetries:     15,
			RetryWait:      2 * time.Second,
			TryLockTimeout: 10 * time.Second,
			LeaseTTL:       30 * time.Second,
			Raft: RaftConfig{
				BindAddr: "127.0.0.1:7000",
				DataDir:  "./data",
			},
			Remote: RemoteConfig{
				Address: "localhost:9000",
			},
			Redis: RedisConfig{
				Address:   "localhost:6379",
				KeyPrefix: "txnfence:lock:",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// reads a yaml file over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// guarding only matters when several writers may race for the timeline
func (c *Config) NeedsLockGuard() bool {
	return c.Write.ConcurrencyMode == OptimisticConcurrencyControl
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Write.ConcurrencyMode {
	case SingleWriter, OptimisticConcurrencyControl:
	default:
		errs = append(errs, fmt.Errorf("unknown write.concurrency_mode %q", c.Write.ConcurrencyMode))
	}

	switch c.Lock.Provider {
	case ProviderLocal, ProviderRaft, ProviderRemote, ProviderRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown lock.provider %q", c.Lock.Provider))
	}

	if c.NeedsLockGuard() && c.Lock.Table == "" {
		errs = append(errs, errors.New("lock.table is required when the lock guard is on"))
	}
	if c.Lock.RetryWait < 0 {
		errs = append(errs, errors.New("lock.retry_wait must not be negative"))
	}
	if c.Lock.TryLockTimeout <= 0 {
		errs = append(errs, errors.New("lock.try_lock_timeout must be positive"))
	}
	if c.Lock.LeaseTTL < time.Second && c.Lock.Provider != ProviderLocal {
		errs = append(errs, errors.New("lock.lease_ttl must be at least 1s"))
	}

	if hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
		errs = append(errs, fmt.Errorf("unknown log.level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

// root logger for a component
func (c LogConfig) Logger(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(c.Level),
		JSONFormat: c.JSON,
	})
}
