package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"click-to-edit/internal/config"
	"click-to-edit/internal/logging"
	"click-to-edit/internal/project"
	"click-to-edit/internal/tui/util"
)

func newTestModel(t *testing.T, mutate func(*Options)) *model {
	t.Helper()
	opts := Options{
		Store:    project.NewStore(logging.Discard()),
		Settings: config.Default(),
		NoColor:  true,
		Logger:   logging.Discard(),
		Metrics:  util.FixedMetrics{CellWidth: 8, CellHeight: 16},
		Copy:     func(string) error { return nil },
	}
	if mutate != nil {
		mutate(&opts)
	}
	m, err := newModel(opts)
	if err != nil {
		t.Fatalf("newModel() error = %v", err)
	}
	t.Cleanup(m.close)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func send(m *model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// edit starts editing and delivers the deferred focus message.
func edit(t *testing.T, m *model) {
	t.Helper()
	cmd := send(m, keyMsg("enter"))
	if !m.editor.Editing() {
		t.Fatalf("expected editing after enter")
	}
	if cmd != nil {
		send(m, cmd())
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestRenameThroughEditor(t *testing.T) {
	m := newTestModel(t, nil)

	edit(t, m)
	for i := 0; i < len("Project"); i++ {
		send(m, keyMsg("backspace"))
	}
	send(m, keyMsg("Atlas"), keyMsg("enter"))

	if m.store.Name() != "New Atlas" {
		t.Fatalf("expected stored name %q, got %q", "New Atlas", m.store.Name())
	}
	if len(m.history) != 1 || m.history[0].Before != project.DefaultName {
		t.Fatalf("unexpected history %+v", m.history)
	}
	if !strings.Contains(m.View(), "+ New ") {
		t.Fatalf("rename diff missing from view:\n%s", m.View())
	}
}

func TestProgramKeysIgnoredWhileEditing(t *testing.T) {
	m := newTestModel(t, nil)

	edit(t, m)
	cmd := send(m, keyMsg("q"))
	if isQuit(cmd) {
		t.Fatalf("q must be typed into the field while editing")
	}
	send(m, keyMsg("r"))
	if m.editor.Value() != project.DefaultName+"qr" {
		t.Fatalf("unexpected field value %q", m.editor.Value())
	}
	send(m, keyMsg("esc"))
	if m.store.Name() != project.DefaultName {
		t.Fatalf("cancel changed the name to %q", m.store.Name())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	if !isQuit(send(m, keyMsg("q"))) {
		t.Fatalf("expected q to quit")
	}
	edit(t, m)
	if !isQuit(send(m, keyMsg("ctrl+c"))) {
		t.Fatalf("expected ctrl+c to quit while editing")
	}
}

func TestResetRecordsHistory(t *testing.T) {
	m := newTestModel(t, nil)
	_ = m.store.UpdateName("Atlas")

	send(m, keyMsg("r"))

	if m.store.Name() != project.DefaultName {
		t.Fatalf("expected default name, got %q", m.store.Name())
	}
	if len(m.history) != 1 || m.history[0].Before != "Atlas" {
		t.Fatalf("unexpected history %+v", m.history)
	}

	send(m, keyMsg("r"))
	if len(m.history) != 1 {
		t.Fatalf("resetting the default name must not add history")
	}
}

func TestTabTogglesLabelFocus(t *testing.T) {
	m := newTestModel(t, nil)

	send(m, keyMsg("tab"))
	if m.editor.Focused() {
		t.Fatalf("expected focus to leave the label")
	}
	send(m, keyMsg("enter"))
	if m.editor.Editing() {
		t.Fatalf("enter without focus must not start editing")
	}
	send(m, keyMsg("tab"), keyMsg("enter"))
	if !m.editor.Editing() {
		t.Fatalf("expected editing after refocusing")
	}
}

func TestCopy(t *testing.T) {
	var copied string
	m := newTestModel(t, func(o *Options) {
		o.Copy = func(s string) error { copied = s; return nil }
	})

	send(m, keyMsg("ctrl+y"))
	if copied != project.DefaultName || m.notice != "Copied" {
		t.Fatalf("copied %q, notice %q", copied, m.notice)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	send(m, keyMsg("ctrl+y"))
	if m.notice != "Copy failed" {
		t.Fatalf("expected failure notice, got %q", m.notice)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, nil)

	send(m, keyMsg("?"))
	out := m.View()
	if !strings.Contains(out, "Help (Mode: VIEW)") || !strings.Contains(out, "ctrl+y: copy name") {
		t.Fatalf("help overlay missing:\n%s", out)
	}
	if isQuit(send(m, keyMsg("q"))) {
		t.Fatalf("q must not quit while help is shown")
	}
	send(m, keyMsg("esc"))
	if m.showHelp {
		t.Fatalf("expected esc to close help")
	}
}

// renderZones renders the view and waits for its zones to be stored. The
// reset zone is the last zone of the view, so the editor's zones are in place
// once it is.
func renderZones(t *testing.T, m *model) (resetX, resetY int) {
	t.Helper()
	m.View()
	deadline := time.Now().Add(2 * time.Second)
	for {
		if z := m.zones.Get(resetZone); z != nil && !z.IsZero() {
			return z.StartX, z.StartY
		}
		if time.Now().After(deadline) {
			t.Fatal("view zones never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestResetZoneClick(t *testing.T) {
	m := newTestModel(t, nil)
	_ = m.store.UpdateName("Atlas")

	x, y := renderZones(t, m)
	send(m, leftClick(x+1, y))

	if m.store.Name() != project.DefaultName {
		t.Fatalf("expected reset click to restore the default, got %q", m.store.Name())
	}
}

func TestLabelClickStartsEditing(t *testing.T) {
	m := newTestModel(t, nil)
	m.editor.Blur()

	renderZones(t, m)
	if cmd := send(m, leftClick(len(titlePrefix)+1, 0)); cmd != nil {
		send(m, cmd())
	}
	if !m.editor.Editing() {
		t.Fatal("expected a click on the name to start editing")
	}
}

func TestClicksThroughSharedDocument(t *testing.T) {
	m := newTestModel(t, nil)

	edit(t, m)
	send(m, keyMsg("x"))
	renderZones(t, m)

	send(m, leftClick(len(titlePrefix)+1, 0))
	if !m.editor.Editing() {
		t.Fatalf("click on the field must keep editing")
	}

	send(m, leftClick(2, 10))

	if m.editor.Editing() {
		t.Fatalf("expected outside click to cancel")
	}
	if m.store.Name() != project.DefaultName {
		t.Fatalf("outside click must not commit, got %q", m.store.Name())
	}
}

func TestStatusLine(t *testing.T) {
	m := newTestModel(t, nil)

	if s := m.status(); s.Label != "Edit New Project" || s.Width != 80-len(titlePrefix) {
		t.Fatalf("unexpected viewing status %+v", s)
	}
	edit(t, m)
	s := m.status()
	// "New Project" is 11 cells: 88px text + 20px gap.
	if s.OffsetPx != 108 || s.Offset != 13 {
		t.Fatalf("unexpected control offset %+v", s)
	}
	if !strings.Contains(s.Label, "toolbar: Edit actions") {
		t.Fatalf("unexpected editing label %q", s.Label)
	}
}

func TestMaxLengthFromSettings(t *testing.T) {
	m := newTestModel(t, func(o *Options) {
		o.Settings.MaxLength = 12
	})

	edit(t, m)
	send(m, keyMsg("abc"))
	if m.editor.Value() != "New Projecta" {
		t.Fatalf("expected field capped at 12, got %q", m.editor.Value())
	}
	if !strings.Contains(m.View(), "[Max 12]") {
		t.Fatalf("missing max chip")
	}
}
