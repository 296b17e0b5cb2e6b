package helpoverlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"click-to-edit/internal/tui/state"
)

func TestViewGroupsKeys(t *testing.T) {
	save := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save"))
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	hidden.SetEnabled(false)

	out := NewHelpOverlay().View(state.Editing,
		Section{Title: "Editor", Keys: []key.Binding{save, hidden}},
		Section{Title: "Empty", Keys: []key.Binding{hidden}},
	)

	if !strings.HasPrefix(out, "Help (Mode: EDIT)\n") {
		t.Fatalf("missing mode header: %q", out)
	}
	if !strings.Contains(out, "Editor:\n  enter: save\n") {
		t.Fatalf("missing editor section: %q", out)
	}
	if strings.Contains(out, "hidden") || strings.Contains(out, "Empty:") {
		t.Fatalf("disabled bindings rendered: %q", out)
	}
}
