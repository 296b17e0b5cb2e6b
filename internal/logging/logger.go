// Package logging is the diagnostic sink for click-to-edit.
//
// The terminal belongs to the TUI while it runs, so diagnostics go to a log
// file (or nowhere) instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Logger receives diagnostics from widgets and the demo program.
type Logger interface {
	// Debug writes only when the logger was created with debug enabled.
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Close() error
}

type fileLogger struct {
	mu    sync.Mutex
	w     io.Writer
	c     io.Closer
	debug bool
}

// New creates a Logger appending to the file at logPath.
func New(logPath string, debug bool) (Logger, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &fileLogger{w: file, c: file, debug: debug}, nil
}

// NewWriter creates a Logger writing to w. It never closes w.
func NewWriter(w io.Writer, debug bool) Logger {
	return &fileLogger{w: w, debug: debug}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return &fileLogger{}
}

// getCaller returns the short function name of the frame skip levels up.
func getCaller(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

func (l *fileLogger) write(level string, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.w == nil {
		return
	}

	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("06-01-02 15:04:05.0")
	// Skip write, the public method and package-level helpers.
	caller := getCaller(3)
	if helpers[caller] {
		caller = getCaller(4)
	}

	// Format: [timestamp] [level] [caller] message
	line := fmt.Sprintf("[%s] [%-5s] [%s] %s\n", timestamp, level, caller, msg)
	_, _ = io.WriteString(l.w, line)
}

func (l *fileLogger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.write("DEBUG", format, args...)
}

func (l *fileLogger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args...)
}

func (l *fileLogger) Warn(format string, args ...interface{}) {
	l.write("WARN", format, args...)
}

func (l *fileLogger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args...)
}

func (l *fileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.c == nil {
		return nil
	}
	err := l.c.Close()
	l.c = nil
	l.w = nil
	return err
}

var (
	globalMu     sync.RWMutex
	globalLogger = Discard()
)

// helpers are the package-level functions that forward to the global logger.
var helpers = map[string]bool{
	"logging.Debug": true,
	"logging.Info":  true,
	"logging.Warn":  true,
	"logging.Error": true,
}

// SetGlobal replaces the process-wide logger. A nil logger resets to Discard.
func SetGlobal(l Logger) {
	if l == nil {
		l = Discard()
	}
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// Global returns the process-wide logger.
func Global() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// Debug logs through the global logger.
func Debug(format string, args ...interface{}) {
	Global().Debug(format, args...)
}

// Info logs through the global logger.
func Info(format string, args ...interface{}) {
	Global().Info(format, args...)
}

// Warn logs through the global logger.
func Warn(format string, args ...interface{}) {
	Global().Warn(format, args...)
}

// Error logs through the global logger.
func Error(format string, args ...interface{}) {
	Global().Error(format, args...)
}
