package inlineedit

import "github.com/charmbracelet/lipgloss"

// measurer owns the single offscreen style used to measure field text. It is
// created on first use and dropped by release.
type measurer struct {
	el *lipgloss.Style
}

// measure returns the rendered width of text in cells after copying the
// font attributes of the live field onto the measurement style.
func (m *measurer) measure(font lipgloss.Style, text string) int {
	if m.el == nil {
		s := lipgloss.NewStyle()
		m.el = &s
	}
	el := m.el.
		Bold(font.GetBold()).
		Italic(font.GetItalic()).
		Underline(font.GetUnderline()).
		Strikethrough(font.GetStrikethrough())
	if fn := font.GetTransform(); fn != nil {
		el = el.Transform(fn)
	} else {
		el = el.UnsetTransform()
	}
	*m.el = el
	return lipgloss.Width(m.el.Render(text))
}

func (m *measurer) allocated() bool { return m.el != nil }

func (m *measurer) release() { m.el = nil }
