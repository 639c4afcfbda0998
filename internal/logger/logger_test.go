package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf, Level: "info", Format: "json"})

	log.Info("inquiry stored", "inquiry_id", "abc", Err(errors.New("boom")))
	log.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (debug filtered), got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "inquiry stored" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["inquiry_id"] != "abc" {
		t.Errorf("inquiry_id = %v", entry["inquiry_id"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v", entry["error"])
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf, Level: "debug", Format: "console"})

	log.Debug("cache miss", "key", "properties:1")

	out := buf.String()
	if !strings.Contains(out, "cache miss") || !strings.Contains(out, "properties:1") {
		t.Errorf("unexpected console output %q", out)
	}
}
