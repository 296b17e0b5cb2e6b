package inlineedit

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const titlePrefix = "Project: "

// render scans the widget behind a title prefix, like a host program does.
func render(w *Widget) string {
	return w.Zones().Scan(titlePrefix + w.View())
}

// waitZone waits for the zone manager to register part starting at column
// x. Scan stores zones asynchronously.
func waitZone(t *testing.T, w *Widget, part string, x int) *zone.ZoneInfo {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		z := w.Zones().Get(w.zoneID(part))
		if z != nil && !z.IsZero() && z.StartX == x {
			return z
		}
		if time.Now().After(deadline) {
			t.Fatalf("zone %q never registered at column %d (got %+v)", part, x, z)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// click delivers a left press and any focus command it returns.
func click(w *Widget, x, y int) {
	_, cmd := w.Update(press(x, y))
	if cmd == nil {
		return
	}
	if msg, ok := cmd().(focusMsg); ok {
		w.Update(msg)
	}
}

func newZoneWidget(t *testing.T, s *store) *Widget {
	t.Helper()
	return newTestWidget(t, s, func(o *Options) { o.Boundary = nil })
}

// startEditing clicks the label and renders the field with its controls.
func startEditing(t *testing.T, w *Widget) {
	t.Helper()
	render(w)
	label := waitZone(t, w, "label", len(titlePrefix))
	click(w, label.StartX+1, label.StartY)
	if !w.Editing() {
		t.Fatal("expected label click to start editing")
	}
	if !w.field.Focused() {
		t.Fatal("expected field focused after label click")
	}
}

func TestLabelClickAndCancelButton(t *testing.T) {
	s := &store{value: "Atlas"}
	w := newZoneWidget(t, s)

	startEditing(t, w)
	typeText(w, "X")
	out := render(w)
	if !strings.HasPrefix(out, titlePrefix+"AtlasX") || !strings.Contains(out, commitGlyph+" "+cancelGlyph) {
		t.Fatalf("unexpected editing view %q", out)
	}

	commit := waitZone(t, w, "commit", len(titlePrefix)+w.OffsetCells())
	cancel := waitZone(t, w, "cancel", commit.EndX+2)
	click(w, cancel.StartX+1, cancel.StartY)

	if w.Editing() {
		t.Fatal("expected cancel button to end editing")
	}
	if len(s.calls) != 0 || s.value != "Atlas" {
		t.Fatalf("cancel must not commit, calls=%v value=%q", s.calls, s.value)
	}
}

func TestCommitButton(t *testing.T) {
	s := &store{value: "Atlas"}
	w := newZoneWidget(t, s)

	startEditing(t, w)
	typeText(w, "Y")
	render(w)
	commit := waitZone(t, w, "commit", len(titlePrefix)+w.OffsetCells())
	click(w, commit.StartX+1, commit.StartY)

	if w.Editing() {
		t.Fatal("expected commit button to end editing")
	}
	if len(s.calls) != 1 || s.calls[0] != "AtlasY" {
		t.Fatalf("expected one commit of %q, got %v", "AtlasY", s.calls)
	}
}

func TestZoneBoundaryInsideAndOutside(t *testing.T) {
	s := &store{value: "Atlas"}
	w := newZoneWidget(t, s)

	startEditing(t, w)
	render(w)
	root := waitZone(t, w, "root", len(titlePrefix))
	toolbar := waitZone(t, w, "toolbar", len(titlePrefix)+w.OffsetCells())
	commit := waitZone(t, w, "commit", toolbar.StartX)

	click(w, root.StartX+1, root.StartY)
	if !w.Editing() {
		t.Fatal("click on the field must keep editing")
	}
	// The gap between the buttons belongs to the toolbar only.
	click(w, commit.EndX+1, toolbar.StartY)
	if !w.Editing() {
		t.Fatal("click inside the toolbar must keep editing")
	}

	click(w, 60, 3)
	if w.Editing() {
		t.Fatal("expected outside click to cancel")
	}
	if len(s.calls) != 0 {
		t.Fatalf("outside click must not commit, got %v", s.calls)
	}
}

func TestRightClickOnLabelDoesNotEdit(t *testing.T) {
	s := &store{value: "Atlas"}
	w := newZoneWidget(t, s)

	render(w)
	label := waitZone(t, w, "label", len(titlePrefix))
	w.Update(tea.MouseMsg{X: label.StartX, Y: label.StartY, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if w.Editing() {
		t.Fatal("right click must not start editing")
	}
}
