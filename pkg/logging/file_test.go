package logging

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTempLogPath returns a log path in a fresh temp directory
func newTempLogPath(t *testing.T) (string, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "mediacurator-logging-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	return filepath.Join(tempDir, "run.log"), func() { os.RemoveAll(tempDir) }
}

// readLines reads all lines from a log file
func readLines(t *testing.T, path string) []string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

// TestFileLoggerJSON tests JSON log output
func TestFileLoggerJSON(t *testing.T) {
	path, cleanup := newTempLogPath(t)
	defer cleanup()

	logger, err := NewFileLogger(FileLoggerConfig{Path: path, Format: FormatJSON, Level: DebugLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	ctx := context.Background()
	logger.Info(ctx, "transfer complete", Fields{"files": 3})
	logger.Error(ctx, "transfer failed", errors.New("disk full"), Fields{"path": "/a.jpg"})
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("log has %d lines, want 2", len(lines))
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("first line is not valid JSON: %v", err)
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["message"] != "transfer complete" {
		t.Errorf("message = %v, want 'transfer complete'", entry["message"])
	}
	if entry["files"] != float64(3) {
		t.Errorf("files = %v, want 3", entry["files"])
	}

	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("second line is not valid JSON: %v", err)
	}
	if entry["error"] != "disk full" {
		t.Errorf("error = %v, want 'disk full'", entry["error"])
	}
}

// TestFileLoggerText tests text log output
func TestFileLoggerText(t *testing.T) {
	path, cleanup := newTempLogPath(t)
	defer cleanup()

	logger, err := NewFileLogger(FileLoggerConfig{Path: path, Format: FormatText, Level: InfoLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Info(context.Background(), "scan complete", Fields{"media": 12})
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("log has %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "scan complete") {
		t.Errorf("line missing message: %s", lines[0])
	}
	if !strings.Contains(lines[0], "media=12") {
		t.Errorf("line missing field: %s", lines[0])
	}
	if !strings.Contains(lines[0], "[INFO ]") {
		t.Errorf("line missing level tag: %s", lines[0])
	}
}

// TestFileLoggerLevelFiltering tests that messages below the configured
// level are dropped
func TestFileLoggerLevelFiltering(t *testing.T) {
	path, cleanup := newTempLogPath(t)
	defer cleanup()

	logger, err := NewFileLogger(FileLoggerConfig{Path: path, Format: FormatText, Level: WarnLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	ctx := context.Background()
	logger.Debug(ctx, "noise", nil)
	logger.Info(ctx, "noise", nil)
	logger.Warn(ctx, "kept", nil)
	logger.Error(ctx, "kept", nil, nil)
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Errorf("log has %d lines, want 2 (debug and info filtered)", len(lines))
	}
}

// TestFileLoggerWithFields tests persistent field propagation
func TestFileLoggerWithFields(t *testing.T) {
	path, cleanup := newTempLogPath(t)
	defer cleanup()

	logger, err := NewFileLogger(FileLoggerConfig{Path: path, Format: FormatJSON, Level: InfoLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	child := logger.WithFields(Fields{"run_id": "mediacurator_20240101_120000_abcd1234"})
	child.Info(context.Background(), "phase start", Fields{"phase": 1})
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("log has %d lines, want 1", len(lines))
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	if entry["run_id"] != "mediacurator_20240101_120000_abcd1234" {
		t.Errorf("run_id = %v, persistent field missing", entry["run_id"])
	}
	if entry["phase"] != float64(1) {
		t.Errorf("phase = %v, want 1", entry["phase"])
	}
}

// TestParseLevel tests level name parsing
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"unknown", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%s) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestNullLogger verifies the null logger satisfies the interface quietly
func TestNullLogger(t *testing.T) {
	var logger Logger = NewNullLogger()
	ctx := context.Background()

	logger.Debug(ctx, "x", nil)
	logger.Info(ctx, "x", nil)
	logger.Warn(ctx, "x", nil)
	logger.Error(ctx, "x", errors.New("e"), nil)
	if logger.WithFields(Fields{"a": 1}) == nil {
		t.Error("WithFields() = nil")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
