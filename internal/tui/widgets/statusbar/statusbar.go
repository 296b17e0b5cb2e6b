package statusbar

import (
	"fmt"
	"strings"

	"click-to-edit/internal/tui/state"
)

// Status is what the status line reports about the inline editor.
type Status struct {
	Mode     state.EditMode
	OffsetPx int
	Offset   int // cells
	Width    int
	// Label is the accessibility label of the part that has focus.
	Label  string
	Notice string
}

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s Status) string {
	mode := "[" + s.Mode.String() + "]"
	parts := []string{mode}
	if s.Mode == state.Editing {
		parts = append(parts, fmt.Sprintf("Controls @%d (%dpx)", s.Offset, s.OffsetPx))
	}
	parts = append(parts, fmt.Sprintf("W:%d", s.Width))
	if s.Label != "" {
		parts = append(parts, s.Label)
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
