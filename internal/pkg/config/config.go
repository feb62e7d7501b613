package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	devSessionSecret = "storefront-dev-secret"
)

type Config struct {
	Port      string `env:"PORT,      default=5000"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	SentryDSN string `env:"SENTRY_DSN"`

	SeedCatalog bool `env:"SEED_CATALOG, default=true"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Secret      string        `env:"SESSION_SECRET"`
	TTL         time.Duration `env:"SESSION_TTL,          default=24h"`
	Store       string        `env:"SESSION_STORE,        default=memory"`
	CheckPeriod time.Duration `env:"SESSION_CHECK_PERIOD, default=24h"`
}

// RedisConfig takes a comma-separated REDIS_ADDR; more than one address
// selects cluster mode, or Sentinel when REDIS_MASTER_NAME is set.
type RedisConfig struct {
	Addrs      []string `env:"REDIS_ADDR,        default=localhost:6379"`
	MasterName string   `env:"REDIS_MASTER_NAME"`
	Password   string   `env:"REDIS_PASSWORD"`
	DB         int      `env:"REDIS_DB,          default=0"`
}

// LoadWith resolves configuration through l using go-envconfig and
// validates it. Pass envconfig.OsLookuper() to read the process environment.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) validate() error {
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.Session.Store)
	}

	if c.Session.Secret == "" {
		if !c.IsDevelopment() {
			return errors.New("SESSION_SECRET is required outside development")
		}
		c.Session.Secret = devSessionSecret
	}
	return nil
}
