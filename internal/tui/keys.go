package tui

import "github.com/charmbracelet/bubbles/key"

// appKeys are the bindings active while the name is not being edited.
type appKeys struct {
	Focus key.Binding
	Copy  key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Focus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus name")),
		Copy:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy name")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k appKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Copy, k.Reset, k.Help, k.Quit}
}

func (k appKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Focus, k.Copy}, {k.Reset, k.Help, k.Quit}}
}
