package inlineedit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	commitGlyph = "[✓]"
	cancelGlyph = "[✗]"
)

// View renders the label while viewing and the field with its controls while
// editing, wrapped in the widget's root zone.
func (w *Widget) View() string {
	var body string
	if w.ctrl.Editing() && w.field != nil {
		body = w.editView()
	} else {
		body = w.labelView()
	}
	return w.zones.Mark(w.zoneID("root"), body)
}

func (w *Widget) labelView() string {
	text, placeholder := w.ctrl.Display(w.placeholder)
	style := w.styles.Label
	if placeholder {
		style = w.styles.Placeholder
	}
	if w.focused {
		style = style.Underline(true)
	}
	if w.width > 0 {
		text = ansi.Truncate(text, w.width, "…")
	}
	return w.zones.Mark(w.zoneID("label"), style.Render(text))
}

func (w *Widget) editView() string {
	field := w.field.View()
	if !w.showButtons {
		return field
	}

	line := ansi.Truncate(field, w.offsetCells, "")
	if pad := w.offsetCells - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line + w.toolbarView()
}

func (w *Widget) toolbarView() string {
	commit := w.zones.Mark(w.zoneID("commit"), w.styles.Commit.Render(commitGlyph))
	cancel := w.zones.Mark(w.zoneID("cancel"), w.styles.Cancel.Render(cancelGlyph))
	return w.zones.Mark(w.zoneID("toolbar"), commit+" "+cancel)
}
