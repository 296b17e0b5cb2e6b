package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger == nil {
		t.Fatal("Discard returned nil")
	}

	// Should not panic
	logger.Debug("debug %d", 1)
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestNewWithFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("test info message")
	logger.Warn("test warning")
	logger.Error("test error %s", "detail")
	logger.Debug("hidden")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	for _, want := range []string{"[INFO ]", "test info message", "[WARN ]", "[ERROR]", "test error detail"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("log file missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(string(content), "hidden") {
		t.Errorf("debug line written with debug disabled:\n%s", content)
	}
}

func TestNewInvalidPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), false)
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, true)

	logger.Debug("value=%d", 42)

	if !strings.Contains(buf.String(), "[DEBUG]") || !strings.Contains(buf.String(), "value=42") {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}

func TestCallerRecorded(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, false)

	logger.Info("hello")

	if !strings.Contains(buf.String(), "TestCallerRecorded") {
		t.Fatalf("expected caller in line, got %q", buf.String())
	}
}

func TestGlobalLogger(t *testing.T) {
	original := Global()
	defer SetGlobal(original)

	var buf bytes.Buffer
	SetGlobal(NewWriter(&buf, false))

	Warn("global %s", "warning")
	if !strings.Contains(buf.String(), "global warning") {
		t.Fatalf("expected global warning, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "TestGlobalLogger") {
		t.Fatalf("expected package helper to report the real caller, got %q", buf.String())
	}

	SetGlobal(nil)
	if Global() == nil {
		t.Fatal("SetGlobal(nil) should fall back to Discard")
	}
}
