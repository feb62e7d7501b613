package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config describes the Redis deployment that holds sessions. One address
// means a standalone server; several mean a cluster, or a Sentinel set when
// MasterName is given.
type Config struct {
	Addrs      []string
	MasterName string
	Password   string
	DB         int
	Timeout    time.Duration
}

func (c Config) options() (*redis.UniversalOptions, error) {
	if len(c.Addrs) == 0 {
		return nil, errors.New("redis: no address configured")
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &redis.UniversalOptions{
		Addrs:        c.Addrs,
		MasterName:   c.MasterName,
		Password:     c.Password,
		DB:           c.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}, nil
}

// Connect opens a client for cfg and fails fast when the first ping does not
// come back within the timeout.
func Connect(ctx context.Context, cfg Config) (redis.UniversalClient, error) {
	opts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	client := redis.NewUniversalClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %v: %w", cfg.Addrs, err)
	}
	return client, nil
}
