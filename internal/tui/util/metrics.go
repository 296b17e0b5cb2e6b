package util

import (
	"errors"
	"os"
)

const (
	// FallbackCellWidth is the assumed pixel width of one terminal cell.
	FallbackCellWidth = 8
	// FallbackCellHeight is the assumed pixel height of one terminal cell,
	// which doubles as the root font size.
	FallbackCellHeight = 16
)

// ErrNoPixelSize is returned when the terminal does not report its size in
// pixels.
var ErrNoPixelSize = errors.New("terminal does not report pixel size")

// Metrics is the pixel geometry of one terminal cell.
type Metrics struct {
	CellWidth  float64
	CellHeight float64
}

// MetricsSource reads the current cell geometry.
type MetricsSource interface {
	Metrics() (Metrics, error)
}

// FixedMetrics always returns itself. It is useful for tests and for
// terminals that do not answer pixel queries.
type FixedMetrics Metrics

// Metrics implements MetricsSource.
func (f FixedMetrics) Metrics() (Metrics, error) { return Metrics(f), nil }

// TerminalMetrics queries the terminal attached to File on every call, so
// zooming the terminal is picked up immediately.
type TerminalMetrics struct {
	File *os.File
}

// Metrics implements MetricsSource.
func (t TerminalMetrics) Metrics() (Metrics, error) {
	f := t.File
	if f == nil {
		f = os.Stdout
	}
	return readMetrics(f)
}

// OrFallback returns m with missing dimensions replaced by the fallbacks.
func (m Metrics) OrFallback() Metrics {
	if m.CellWidth <= 0 {
		m.CellWidth = FallbackCellWidth
	}
	if m.CellHeight <= 0 {
		m.CellHeight = FallbackCellHeight
	}
	return m
}
