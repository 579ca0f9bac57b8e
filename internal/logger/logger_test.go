package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Output: &buf})

	log.With("node", "player").WithGroup("rot").Info("turned", "yaw", 355)
	line := buf.String()

	if !strings.Contains(line, "INFO  turned") {
		t.Errorf("missing level and message: %q", line)
	}
	if !strings.Contains(line, "node=player") || !strings.Contains(line, "rot.yaw=355") {
		t.Errorf("missing attributes: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("expected a trailing newline: %q", line)
	}
}

func TestConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Debug("frame")
	log.Info("frame")
	if buf.Len() != 0 {
		t.Errorf("expected records below warn to be dropped, got %q", buf.String())
	}
	log.Warn("player mesh missing")
	if !strings.Contains(buf.String(), "WARN  player mesh missing") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})
	log.Info("fps", "value", 60)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "fps" || rec["value"] != float64(60) {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestSince(t *testing.T) {
	a := Since(time.Now().Add(-2 * time.Second))
	if a.Key != "took" || a.Value.Duration() < 2*time.Second {
		t.Errorf("unexpected attr %v", a)
	}
}

func TestLevelTag(t *testing.T) {
	tests := map[slog.Level]string{
		slog.LevelError: "ERROR",
		slog.LevelWarn:  "WARN ",
		slog.LevelInfo:  "INFO ",
		slog.LevelDebug: "DEBUG",
	}
	for level, want := range tests {
		if got := levelTag(level); got != want {
			t.Errorf("levelTag(%v) = %q, expected %q", level, got, want)
		}
	}
}
