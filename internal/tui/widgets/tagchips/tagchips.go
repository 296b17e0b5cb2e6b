package tagchips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"click-to-edit/internal/tui/state"
	"click-to-edit/internal/tui/util"
)

// View renders value tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	noColor = util.NoColor(noColor)

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.EDITED:
		return "Edited"
	case state.EMPTY:
		return "Empty"
	case state.LENGTH:
		return fmt.Sprintf("Len %d", t.Value)
	case state.MAX_LEN:
		return fmt.Sprintf("Max %d", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	switch t.Kind {
	case state.EDITED:
		return base.Background(p.Primary)
	case state.EMPTY:
		return base.Background(p.Danger)
	case state.LENGTH, state.MAX_LEN:
		return base.Background(p.Muted)
	default:
		return base
	}
}
