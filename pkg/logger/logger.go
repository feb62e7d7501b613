// Package logger builds the process-wide zerolog logger.
//
// serve calls Init once; everything else receives a zerolog.Logger by
// injection or falls back to Get. Entries are JSON unless Pretty is set.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the logger is built.
type Options struct {
	// Level is trace, debug, info, warn or error; anything else means info.
	Level  string
	Pretty bool
	// Service, Version and Env are stamped on every entry when non-empty.
	Service string
	Version string
	Env     string
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu       sync.RWMutex
	instance *zerolog.Logger
)

// New builds a logger from opts without touching process-wide state.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	ctx := zerolog.New(out).Level(ParseLevel(opts.Level)).With().Timestamp()
	for _, f := range [...]struct{ key, val string }{
		{"service", opts.Service},
		{"version", opts.Version},
		{"env", opts.Env},
	} {
		if f.val != "" {
			ctx = ctx.Str(f.key, f.val)
		}
	}
	return ctx.Logger()
}

// Init installs the process logger. Only the first call builds it; later
// calls return the installed one. It also becomes zerolog's context fallback,
// so zerolog.Ctx on a bare context yields it.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opts)
		zerolog.SetGlobalLevel(l.GetLevel())
		zerolog.DefaultContextLogger = &l
		instance = &l
	}
	return *instance
}

// Get returns the installed logger and panics before Init.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("logger: Get() called before Init()")
	}
	return *instance
}

// Reset uninstalls the logger. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	instance = nil
	zerolog.DefaultContextLogger = nil
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

// ParseLevel maps a level name to a zerolog.Level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
