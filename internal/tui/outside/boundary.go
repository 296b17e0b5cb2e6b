package outside

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Boundary decides whether an event landed inside a region of the screen.
type Boundary interface {
	Contains(ev Event) bool
}

// ShadowHost is a Boundary that also hosts an encapsulated sub-tree whose
// events count as inside even when they fall outside the host itself.
type ShadowHost interface {
	Boundary
	ShadowRoot() Boundary
}

// Rect is an inclusive cell rectangle.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Contains implements Boundary.
func (r Rect) Contains(ev Event) bool {
	return ev.X >= r.X0 && ev.X <= r.X1 && ev.Y >= r.Y0 && ev.Y <= r.Y1
}

// Hosted pairs a boundary with a shadow root.
type Hosted struct {
	Boundary
	Shadow Boundary
}

// ShadowRoot implements ShadowHost.
func (h Hosted) ShadowRoot() Boundary { return h.Shadow }

// ZoneBoundary is a boundary backed by a bubblezone marker. The zone must be
// marked in the view and the view scanned by Zones before events arrive.
type ZoneBoundary struct {
	Zones *zone.Manager
	ID    string
	// Shadow is the zone ID of an encapsulated sub-tree, if any.
	Shadow string
}

// Contains implements Boundary.
func (b ZoneBoundary) Contains(ev Event) bool {
	if b.Zones == nil || b.ID == "" {
		return false
	}
	return b.Zones.Get(b.ID).InBounds(tea.MouseMsg{X: ev.X, Y: ev.Y})
}

// ShadowRoot implements ShadowHost. It is nil when no shadow zone is set.
func (b ZoneBoundary) ShadowRoot() Boundary {
	if b.Shadow == "" {
		return nil
	}
	return ZoneBoundary{Zones: b.Zones, ID: b.Shadow}
}
