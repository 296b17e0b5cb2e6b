package inlineedit

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the widget's key bindings.
type KeyMap struct {
	Activate key.Binding
	Commit   key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap binds enter/space to activate, enter to commit and esc to
// cancel.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "edit")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Commit, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Activate}, {k.Commit, k.Cancel}}
}
