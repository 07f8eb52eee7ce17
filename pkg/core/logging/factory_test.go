package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwlog "github.com/texunc/texunc/foundation/core/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"fatal", mdwlog.LevelFatal},
		{"", mdwlog.LevelWarn},
		{"verbose", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("texunc")
	if cfg.Name != "texunc" || cfg.Level != "warn" || cfg.Format != "text" {
		t.Errorf("DefaultLoggerConfig() = %+v", cfg)
	}
}

func TestNewLogger_JSONWithCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig("texunc")
	cfg.Level = "info"
	cfg.Format = "json"
	cfg.Output = &buf
	cfg.CorrelationID = "run-1"

	logger := NewLogger(cfg)
	logger.Debug("hidden")
	logger.Info("table rendered", mdwlog.Fields{"rows": 3})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["correlation_id"] != "run-1" {
		t.Errorf("correlation_id = %v", entry["correlation_id"])
	}
	if entry["logger"] != "texunc" {
		t.Errorf("logger = %v", entry["logger"])
	}
}

func TestNewLogger_GeneratesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "warn", Output: &buf})
	logger.Warn("check")

	out := buf.String()
	start := strings.Index(out, "(run=")
	if start < 0 {
		t.Fatalf("text output has no run ID: %q", out)
	}
	id := out[start+len("(run="):]
	id = id[:strings.Index(id, ")")]
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", id, err)
	}
}

func TestNewRunID_Unique(t *testing.T) {
	if NewRunID() == NewRunID() {
		t.Error("NewRunID() returned the same ID twice")
	}
}
