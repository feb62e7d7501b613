package redis

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestConfigOptions(t *testing.T) {
	opts, err := Config{Addrs: []string{"a:6379", "b:6379"}, MasterName: "primary", DB: 2}.options()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts.Addrs) != 2 || opts.MasterName != "primary" || opts.DB != 2 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.DialTimeout != defaultTimeout || opts.ReadTimeout != defaultTimeout {
		t.Fatalf("expected default timeouts, got dial=%v read=%v", opts.DialTimeout, opts.ReadTimeout)
	}
}

func TestConfigOptions_RequiresAddress(t *testing.T) {
	if _, err := (Config{}).options(); err == nil {
		t.Fatal("expected error for empty address list")
	}
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addrs: []string{"127.0.0.1:1"}, Timeout: 200 * time.Millisecond})
	if err == nil {
		t.Fatal("expected ping failure")
	}
	if !strings.Contains(err.Error(), "redis ping [127.0.0.1:1]") {
		t.Fatalf("unexpected error: %v", err)
	}
}
