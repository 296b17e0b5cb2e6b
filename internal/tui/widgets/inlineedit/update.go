package inlineedit

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"click-to-edit/internal/tui/outside"
)

// Init implements the Bubble Tea component contract.
func (w *Widget) Init() tea.Cmd { return nil }

// Update handles keyboard, mouse and focus messages.
func (w *Widget) Update(msg tea.Msg) (*Widget, tea.Cmd) {
	switch msg := msg.(type) {
	case focusMsg:
		if msg.id != w.id || w.field == nil {
			return w, nil
		}
		cmd := w.field.Focus()
		w.field.CursorEnd()
		w.reposition()
		return w, cmd

	case tea.FocusMsg:
		w.reposition()
		return w, nil

	case tea.MouseMsg:
		return w, w.handleMouse(msg)

	case tea.KeyMsg:
		return w, w.handleKey(msg)
	}

	// Cursor blink and other field messages.
	if w.field != nil {
		var cmd tea.Cmd
		*w.field, cmd = w.field.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *Widget) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !w.ctrl.Editing() {
		if w.focused && key.Matches(msg, w.keys.Activate) {
			return w.Activate()
		}
		return nil
	}

	switch {
	case key.Matches(msg, w.keys.Commit):
		w.ctrl.HandleKey("enter", w.fieldValue())
		w.sync()
		return nil
	case key.Matches(msg, w.keys.Cancel):
		w.ctrl.HandleKey("esc", w.fieldValue())
		w.sync()
		return nil
	}

	var cmd tea.Cmd
	*w.field, cmd = w.field.Update(msg)
	w.ctrl.Update(w.field.Value())
	w.reposition()
	return cmd
}

func (w *Widget) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev, ok := outside.FromMouse(msg)
	if !ok {
		return nil
	}
	if w.ownDoc {
		// May cancel the edit through the watcher.
		w.doc.Dispatch(ev)
	}

	if !w.ctrl.Editing() {
		if msg.Button == tea.MouseButtonLeft && w.hit("label", msg) {
			return w.Activate()
		}
		return nil
	}

	if w.showButtons && msg.Button == tea.MouseButtonLeft {
		switch {
		case w.hit("commit", msg):
			w.Commit()
			return nil
		case w.hit("cancel", msg):
			w.Cancel()
			return nil
		}
	}
	w.reposition()
	return nil
}

func (w *Widget) hit(part string, msg tea.MouseMsg) bool {
	return w.zones.Get(w.zoneID(part)).InBounds(msg)
}
