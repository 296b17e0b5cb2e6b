package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NoColor returns true if color output should be disabled, either because
// the caller asked for it or because NO_COLOR/CLICOLOR say so.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return termenv.EnvNoColor()
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Primary: lipgloss.Color("#3D6DFF"),
		Success: lipgloss.Color("#2AA876"),
		Danger:  lipgloss.Color("#D9534F"),
		Muted:   lipgloss.Color("#6C757D"),
	}
}

// EditStyles are the styles of the inline editor parts.
type EditStyles struct {
	Label       lipgloss.Style
	Placeholder lipgloss.Style
	Field       lipgloss.Style
	Commit      lipgloss.Style
	Cancel      lipgloss.Style
}

// NewEditStyles builds editor styles from p. With noColor only attributes
// that survive a monochrome terminal are used.
func NewEditStyles(p Palette, noColor bool) EditStyles {
	if noColor {
		return EditStyles{
			Label:       lipgloss.NewStyle().Bold(true),
			Placeholder: lipgloss.NewStyle().Faint(true),
			Field:       lipgloss.NewStyle(),
			Commit:      lipgloss.NewStyle(),
			Cancel:      lipgloss.NewStyle(),
		}
	}
	return EditStyles{
		Label:       lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Placeholder: lipgloss.NewStyle().Faint(true).Foreground(p.Muted),
		Field:       lipgloss.NewStyle(),
		Commit:      lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		Cancel:      lipgloss.NewStyle().Bold(true).Foreground(p.Danger),
	}
}
