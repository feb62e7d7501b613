package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_JSONWithService(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Service: "storefront", Output: &buf})
	log.Debug().Msg("hidden")
	log.Info().Str("k", "v").Msg("shown")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["service"] != "storefront" || entry["message"] != "shown" || entry["k"] != "v" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestNew_StampsReleaseFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Service: "storefront", Version: "1.2.3", Env: "production", Output: &buf})
	log.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if entry["version"] != "1.2.3" || entry["env"] != "production" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if _, ok := entry["caller"]; ok {
		t.Fatalf("caller should not be recorded: %+v", entry)
	}
}

func TestNew_OmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Output: &buf})
	l.Info().Msg("bare")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	for _, k := range []string{"service", "version", "env"} {
		if _, ok := entry[k]; ok {
			t.Fatalf("unexpected %q field: %+v", k, entry)
		}
	}
}

func TestInit_FirstCallWinsAndBacksContext(t *testing.T) {
	Reset()
	defer Reset()

	var first, second bytes.Buffer
	Init(Options{Service: "first", Output: &first})
	Init(Options{Service: "second", Output: &second})

	zerolog.Ctx(context.Background()).Info().Msg("via context")

	if second.Len() != 0 {
		t.Fatalf("second Init must not rebuild the logger, got %q", second.String())
	}
	if !strings.Contains(first.String(), `"service":"first"`) {
		t.Fatalf("context logger should fall back to the installed one, got %q", first.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	_ = Get()
}
