package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"click-to-edit/internal/tui/util"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = delLine.Underline(true)
	addChar = addLine.Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
)

// Rename is one committed change of a value.
type Rename struct {
	Before string
	After  string
}

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the most recent renames, newest first, as a pair of -/+ lines
// with character-level highlights. Without color changed spans are wrapped
// in [-…-] and {+…+}.
func (DiffView) View(history []Rename, limit int, noColor bool) string {
	if len(history) == 0 {
		return faint.Render("No renames yet") + "\n"
	}
	noColor = util.NoColor(noColor)
	var b strings.Builder
	shown := 0
	for i := len(history) - 1; i >= 0; i-- {
		if limit > 0 && shown == limit {
			break
		}
		b.WriteString(renderPair(history[i], noColor))
		shown++
	}
	return b.String()
}

// Spans returns the cleaned-up character diff between before and after.
func Spans(before, after string) []dmp.Diff {
	d := dmp.New()
	diffs := d.DiffMain(before, after, false)
	return d.DiffCleanupSemantic(diffs)
}

func renderPair(r Rename, noColor bool) string {
	if r.Before == r.After {
		return "  " + r.After + "\n"
	}
	diffs := Spans(r.Before, r.After)

	var sb strings.Builder
	sb.WriteString(paint(delLine, "- ", noColor))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			if noColor {
				sb.WriteString("[-" + df.Text + "-]")
			} else {
				sb.WriteString(delChar.Render(df.Text))
			}
		case dmp.DiffEqual:
			sb.WriteString(paint(delLine, df.Text, noColor))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(paint(addLine, "+ ", noColor))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			if noColor {
				sb.WriteString("{+" + df.Text + "+}")
			} else {
				sb.WriteString(addChar.Render(df.Text))
			}
		case dmp.DiffEqual:
			sb.WriteString(paint(addLine, df.Text, noColor))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func paint(s lipgloss.Style, text string, noColor bool) string {
	if noColor {
		return text
	}
	return s.Render(text)
}
