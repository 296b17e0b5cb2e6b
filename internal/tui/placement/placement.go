// Package placement computes where trailing controls go so they hug the end
// of a text without overflowing its container.
package placement

import (
	"fmt"
	"math"

	"click-to-edit/internal/logging"
)

const (
	// DefaultControlWidthEm is the width reserved for the control cluster.
	DefaultControlWidthEm = 4
	// DefaultGapEm is the distance between the end of the text and the controls.
	DefaultGapEm = 1.25
	// FallbackRootFontSize is used when the root font size cannot be measured.
	FallbackRootFontSize = 16
)

// Options holds the layout constants in em units. Zero values are kept as
// zero; use DefaultOptions for the defaults.
type Options struct {
	ControlWidthEm float64
	GapEm          float64
}

// DefaultOptions returns a 4em control cluster and a 1.25em gap.
func DefaultOptions() Options {
	return Options{ControlWidthEm: DefaultControlWidthEm, GapEm: DefaultGapEm}
}

// Offset places the controls textWidth+gap pixels from the container start,
// pulling them back to containerWidth-controlWidth when they would overflow.
// The result is never negative.
func Offset(textWidth, containerWidth, controlWidth, gap float64) int {
	raw := textWidth + gap
	if raw+controlWidth > containerWidth {
		raw = math.Max(0, containerWidth-controlWidth)
	}
	raw = math.Max(0, raw)
	return int(math.Floor(raw))
}

// FontSource reports the root font size in pixels.
type FontSource interface {
	RootFontSize() (float64, error)
}

// FontFunc adapts a function to FontSource.
type FontFunc func() (float64, error)

// RootFontSize implements FontSource.
func (f FontFunc) RootFontSize() (float64, error) { return f() }

// ContainerFunc returns the container width in pixels, or false when the
// container is not available.
type ContainerFunc func() (width float64, ok bool)

// Calculator resolves em constants against the root font size on every
// call and remembers only its last result.
type Calculator struct {
	opts Options
	font FontSource
	log  logging.Logger

	offset int
}

// NewCalculator returns a Calculator. A nil font always uses
// FallbackRootFontSize; a nil log uses the global logger.
func NewCalculator(opts Options, font FontSource, log logging.Logger) *Calculator {
	if log == nil {
		log = logging.Global()
	}
	return &Calculator{opts: opts, font: font, log: log}
}

// Offset returns the last computed offset in pixels.
func (c *Calculator) Offset() int { return c.offset }

// EmSize returns the pixel size of one em right now.
func (c *Calculator) EmSize() float64 {
	if c.font == nil {
		return FallbackRootFontSize
	}
	size, err := c.font.RootFontSize()
	if err == nil && (size <= 0 || math.IsNaN(size) || math.IsInf(size, 0)) {
		err = fmt.Errorf("unusable font size %v", size)
	}
	if err != nil {
		c.log.Debug("root font size: %v; using %dpx", err, FallbackRootFontSize)
		return FallbackRootFontSize
	}
	return size
}

// ControlWidth returns the control cluster width in pixels.
func (c *Calculator) ControlWidth() float64 {
	return c.opts.ControlWidthEm * c.EmSize()
}

// Update recomputes the offset for textWidth. When the container is not
// available the previous offset is kept.
func (c *Calculator) Update(textWidth float64, container ContainerFunc) int {
	width, ok := 0.0, false
	if container != nil {
		width, ok = container()
	}
	if !ok {
		c.log.Debug("container unavailable; keeping offset %d", c.offset)
		return c.offset
	}

	em := c.EmSize()
	c.offset = Offset(textWidth, width, c.opts.ControlWidthEm*em, c.opts.GapEm*em)
	return c.offset
}
