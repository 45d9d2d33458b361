package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewFileLogger_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pinmon.log")

	logger, cleanup, err := NewFileLogger(path, "warn")
	if err != nil {
		t.Fatalf("NewFileLogger returned error: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("poll failed", "path", "/data/pins.txt")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log lines = %d, want 1: %q", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if entry["msg"] != "poll failed" || entry["path"] != "/data/pins.txt" || entry["component"] != "pinmon" {
		t.Fatalf("entry = %v, want poll failed record", entry)
	}
}

func TestNewFileLogger_EmptyPathErrors(t *testing.T) {
	if _, _, err := NewFileLogger("  ", "info"); err == nil {
		t.Fatalf("NewFileLogger returned nil error, want error")
	}
}

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "debug")
	logger.Debug("loaded", "samples", 3)
	if !strings.Contains(buf.String(), "msg=loaded") || !strings.Contains(buf.String(), "samples=3") {
		t.Fatalf("output = %q, want text record", buf.String())
	}
}
