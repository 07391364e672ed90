package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_WritesTextOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithWriter(&buf), WithLevel(slog.LevelDebug))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Info("server started", "port", 8080)

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected level in output, got %q", out)
	}
	if !strings.Contains(out, "server started") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, `port="8080"`) {
		t.Errorf("expected attribute in output, got %q", out)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithWriter(&buf), WithLevel(slog.LevelWarn))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the level must be dropped, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("expected warn message, got %q", out)
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithWriter(&buf), WithJSON())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("expected JSON message field, got %q", out)
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected JSON attribute, got %q", out)
	}
}

func TestLogger_CustomLevels(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithWriter(&buf), WithLevel(levelTrace))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Trace("trace message")
	log.Critical("critical message")

	out := buf.String()
	if !strings.Contains(out, "TRACE") {
		t.Errorf("expected TRACE label, got %q", out)
	}
	if !strings.Contains(out, "CRITICAL") {
		t.Errorf("expected CRITICAL label, got %q", out)
	}
}

func TestLogger_WithAddsContext(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithWriter(&buf))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.With("component", "db").Info("connected")

	if !strings.Contains(buf.String(), `component="db"`) {
		t.Errorf("expected bound attribute, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"trace":    levelTrace,
		"debug":    slog.LevelDebug,
		"info":     slog.LevelInfo,
		"warn":     slog.LevelWarn,
		"warning":  slog.LevelWarn,
		"error":    slog.LevelError,
		"critical": levelCritical,
		"bogus":    slog.LevelInfo,
		"":         slog.LevelInfo,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
