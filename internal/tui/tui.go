package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"click-to-edit/internal/config"
	"click-to-edit/internal/logging"
	"click-to-edit/internal/project"
	"click-to-edit/internal/tui/outside"
	"click-to-edit/internal/tui/state"
	"click-to-edit/internal/tui/util"
	"click-to-edit/internal/tui/widgets/diff"
	"click-to-edit/internal/tui/widgets/helpoverlay"
	"click-to-edit/internal/tui/widgets/inlineedit"
	"click-to-edit/internal/tui/widgets/statusbar"
	"click-to-edit/internal/tui/widgets/tagchips"
)

// Options configures the demo program.
type Options struct {
	Store    *project.Store
	Settings *config.Settings
	NoColor  bool
	Logger   logging.Logger
	// Metrics defaults to the terminal on stdout.
	Metrics util.MetricsSource
	// Copy puts text on the clipboard. Defaults to clipboard.WriteAll.
	Copy func(string) error
}

// Run shows the project title editor full screen and returns the project
// name when the user quits.
func Run(opts Options) (string, error) {
	m, err := newModel(opts)
	if err != nil {
		return "", err
	}
	defer m.close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return "", err
	}
	return m.store.Name(), nil
}

const (
	resetZone   = "app-reset"
	titlePrefix = "Project: "
	historySize = 3
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

type model struct {
	store    *project.Store
	settings *config.Settings
	noColor  bool
	log      logging.Logger
	copy     func(string) error

	zones  *zone.Manager
	doc    *outside.Document
	editor *inlineedit.Widget

	keys     appKeys
	help     help.Model
	showHelp bool
	history  []diff.Rename
	notice   string
	width    int
}

func newModel(opts Options) (*model, error) {
	if opts.Store == nil {
		opts.Store = project.NewStore(opts.Logger)
	}
	if opts.Settings == nil {
		opts.Settings = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Global()
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}

	m := &model{
		store:    opts.Store,
		settings: opts.Settings,
		noColor:  util.NoColor(opts.NoColor),
		log:      opts.Logger,
		copy:     opts.Copy,
		zones:    zone.New(),
		doc:      outside.NewDocument(),
		keys:     defaultAppKeys(),
		help:     help.New(),
	}

	show := opts.Settings.Buttons()
	pl := opts.Settings.Placement()
	editor, err := inlineedit.New(inlineedit.Options{
		Value:       m.store.Current,
		OnChange:    m.rename,
		Placeholder: opts.Settings.Placeholder,
		MaxLength:   opts.Settings.MaxLength,
		ShowButtons: &show,
		Placement:   &pl,
		Metrics:     opts.Metrics,
		Zones:       m.zones,
		Document:    m.doc,
		NoColor:     m.noColor,
		Logger:      m.log,
	})
	if err != nil {
		m.zones.Close()
		return nil, err
	}
	m.editor = editor
	m.editor.Focus()
	return m, nil
}

func (m *model) close() {
	m.editor.Close()
	m.zones.Close()
}

// rename is the editor's change handler.
func (m *model) rename(name string) error {
	prev := m.store.Name()
	if err := m.store.UpdateName(name); err != nil {
		m.notice = "Save failed"
		return err
	}
	m.history = append(m.history, diff.Rename{Before: prev, After: name})
	m.notice = "Saved"
	return nil
}

func (m *model) reset() {
	prev := m.store.Name()
	if err := m.store.Reset(); err != nil {
		m.log.Error("reset project: %v", err)
		m.notice = "Reset failed"
		return
	}
	if prev != project.DefaultName {
		m.history = append(m.history, diff.Rename{Before: prev, After: project.DefaultName})
	}
	m.notice = "Reset"
}

func (m *model) Init() tea.Cmd { return nil }

// Update routes messages to the editor; the program keys only apply while
// the name is not being edited.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.editor.SetWidth(msg.Width - lipgloss.Width(titlePrefix))
		return m, nil

	case tea.MouseMsg:
		if ev, ok := outside.FromMouse(msg); ok {
			m.doc.Dispatch(ev)
		}
		if !m.editor.Editing() && msg.Button == tea.MouseButtonLeft &&
			msg.Action == tea.MouseActionPress && m.zones.Get(resetZone).InBounds(msg) {
			m.reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editor.Editing() {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, cmd
		}
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		m.notice = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			if m.editor.Focused() {
				m.editor.Blur()
			} else {
				m.editor.Focus()
			}
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			if err := m.copy(m.store.Name()); err != nil {
				m.log.Warn("copy to clipboard: %v", err)
				m.notice = "Copy failed"
			} else {
				m.notice = "Copied"
			}
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if m.showHelp {
		overlay := helpoverlay.NewHelpOverlay().View(m.editor.Mode(),
			helpoverlay.Section{Title: "Name", Keys: m.editor.KeyMap().ShortHelp()},
			helpoverlay.Section{Title: "Program", Keys: m.keys.ShortHelp()},
		)
		return m.zones.Scan(overlay + "\n" + faintStyle.Render("?/esc: close"))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(titlePrefix) + m.editor.View() + "\n\n")

	value := m.store.Name()
	if m.editor.Editing() {
		value = m.editor.Value()
	}
	b.WriteString(tagchips.View(util.ComputeTags(value, m.settings.MaxLength, len(m.history) > 0), m.noColor) + "\n\n")

	b.WriteString(titleStyle.Render("Renames") + "  " + m.zones.Mark(resetZone, faintStyle.Render("[reset]")) + "\n")
	b.WriteString(diff.NewDiffView().View(m.history, historySize, m.noColor) + "\n")

	b.WriteString(statusbar.NewStatusBar().View(m.status()) + "\n")
	if m.editor.Editing() {
		b.WriteString(m.help.View(m.editor.KeyMap()))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return m.zones.Scan(b.String())
}

func (m *model) status() statusbar.Status {
	a := m.editor.Accessibility()
	s := statusbar.Status{
		Mode:     m.editor.Mode(),
		OffsetPx: m.editor.Offset(),
		Offset:   m.editor.OffsetCells(),
		Width:    m.editor.Width(),
		Notice:   m.notice,
	}
	switch {
	case m.editor.Mode() == state.Editing:
		s.Label = fmt.Sprintf("%s (%s: %s)", a.Field, a.ToolbarRole, a.ToolbarLabel)
	case m.editor.Focused():
		s.Label = a.Label
	}
	return s
}
