// Package inlineedit provides a click-to-edit label for Bubble Tea programs.
//
// While viewing, the widget renders its value (or a placeholder) as a label.
// Clicking the label, or pressing enter/space while it has keyboard focus,
// swaps in a text field followed by commit and cancel controls placed right
// after the text. Enter commits, esc cancels, and pressing the mouse anywhere
// outside the widget cancels.
//
// Mouse hit-testing uses bubblezone: the final program view must be passed
// through Zones().Scan before it is returned from the top-level View.
package inlineedit

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"click-to-edit/internal/logging"
	"click-to-edit/internal/tui/outside"
	"click-to-edit/internal/tui/placement"
	"click-to-edit/internal/tui/state"
	"click-to-edit/internal/tui/util"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Options configures a Widget. Value and OnChange are required.
type Options struct {
	// Value returns the live external value. It is read once when editing
	// starts and on every render while viewing.
	Value state.ValueFunc
	// OnChange receives the new value when a commit changed it.
	OnChange state.ChangeFunc

	Placeholder string
	// MaxLength is passed to the field as its character limit; 0 means none.
	MaxLength int
	// ShowButtons renders the commit/cancel controls. nil means true.
	ShowButtons *bool
	// Width is the container width in cells.
	Width int

	// Placement overrides the control layout constants.
	Placement *placement.Options
	// Metrics reports the cell geometry. Defaults to the terminal on stdout.
	Metrics util.MetricsSource
	// Zones is the bubblezone manager used for hit-testing. When nil the
	// widget creates one and closes it in Close.
	Zones *zone.Manager
	// Document receives outside activity. When nil the widget owns a private
	// document and dispatches its own mouse messages into it; a shared
	// document must be fed by the caller.
	Document *outside.Document
	// Boundary replaces the zone-backed boundary of the widget.
	Boundary outside.Boundary

	KeyMap  *KeyMap
	Styles  *util.EditStyles
	NoColor bool
	Logger  logging.Logger
}

// Accessibility holds the descriptive labels of the widget's parts.
type Accessibility struct {
	Label        string
	Field        string
	ToolbarRole  string
	ToolbarLabel string
}

// Widget is an inline click-to-edit text field.
type Widget struct {
	id     int
	prefix string

	placeholder string
	maxLength   int
	showButtons bool
	width       int
	focused     bool

	ctrl  *state.Controller
	watch *outside.Watcher
	calc  *placement.Calculator
	meas  measurer
	field *textinput.Model

	metrics  util.MetricsSource
	zones    *zone.Manager
	ownZones bool
	doc      *outside.Document
	ownDoc   bool
	boundary outside.Boundary

	keys   KeyMap
	styles util.EditStyles
	log    logging.Logger

	offsetCells int
}

// focusMsg asks widget id to focus its field once the field is on screen.
type focusMsg struct{ id int }

// New builds a Widget in viewing mode. It fails when Value or OnChange is
// missing.
func New(opts Options) (*Widget, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Global()
	}
	ctrl, err := state.NewController(opts.Value, opts.OnChange, log)
	if err != nil {
		return nil, fmt.Errorf("inline edit: %w", err)
	}

	w := &Widget{
		id:          nextID(),
		placeholder: opts.Placeholder,
		maxLength:   opts.MaxLength,
		showButtons: opts.ShowButtons == nil || *opts.ShowButtons,
		width:       opts.Width,
		ctrl:        ctrl,
		metrics:     opts.Metrics,
		zones:       opts.Zones,
		doc:         opts.Document,
		boundary:    opts.Boundary,
		keys:        DefaultKeyMap(),
		log:         log,
	}
	if opts.KeyMap != nil {
		w.keys = *opts.KeyMap
	}
	if opts.Styles != nil {
		w.styles = *opts.Styles
	} else {
		w.styles = util.NewEditStyles(util.DefaultPalette(), util.NoColor(opts.NoColor))
	}
	if w.metrics == nil {
		w.metrics = util.TerminalMetrics{}
	}
	if w.zones == nil {
		w.zones = zone.New()
		w.ownZones = true
	}
	w.prefix = w.zones.NewPrefix()
	if w.doc == nil {
		w.doc = outside.NewDocument()
		w.ownDoc = true
	}
	if w.boundary == nil {
		w.boundary = outside.ZoneBoundary{Zones: w.zones, ID: w.zoneID("root"), Shadow: w.zoneID("toolbar")}
	}

	popts := placement.DefaultOptions()
	if opts.Placement != nil {
		popts = *opts.Placement
	}
	w.calc = placement.NewCalculator(popts, placement.FontFunc(w.rootFontSize), log)
	w.watch = outside.NewWatcher(w.doc, w.Cancel, outside.WithLogger(log))
	return w, nil
}

// Zones returns the bubblezone manager that must scan the final view.
func (w *Widget) Zones() *zone.Manager { return w.zones }

// Document returns the document the widget watches for outside activity.
func (w *Widget) Document() *outside.Document { return w.doc }

// KeyMap returns the active key bindings.
func (w *Widget) KeyMap() KeyMap { return w.keys }

// Mode returns the editing mode.
func (w *Widget) Mode() state.EditMode { return w.ctrl.Mode() }

// Editing reports whether the field is shown.
func (w *Widget) Editing() bool { return w.ctrl.Editing() }

// Focus gives the label keyboard focus so enter/space start editing.
func (w *Widget) Focus() { w.focused = true }

// Blur removes keyboard focus from the label.
func (w *Widget) Blur() { w.focused = false }

// Focused reports whether the label has keyboard focus.
func (w *Widget) Focused() bool { return w.focused }

// Width returns the container width in cells.
func (w *Widget) Width() int { return w.width }

// SetWidth sets the container width in cells.
func (w *Widget) SetWidth(width int) {
	w.width = width
	if w.field != nil {
		w.field.Width = fieldWidth(width)
		w.reposition()
	}
}

// Offset returns the last computed control offset in pixels.
func (w *Widget) Offset() int { return w.calc.Offset() }

// OffsetCells returns the control offset in cells, as rendered.
func (w *Widget) OffsetCells() int { return w.offsetCells }

// Value returns the field content while editing and "" otherwise.
func (w *Widget) Value() string { return w.fieldValue() }

// ShowButtons reports whether the commit/cancel controls are rendered.
func (w *Widget) ShowButtons() bool { return w.showButtons }

// Accessibility returns the labels derived from the placeholder.
func (w *Widget) Accessibility() Accessibility {
	name := w.placeholder
	if name == "" {
		name = "text"
	}
	return Accessibility{
		Label:        "Edit " + name,
		Field:        name,
		ToolbarRole:  "toolbar",
		ToolbarLabel: "Edit actions",
	}
}

// Activate starts editing. The returned command focuses the field after the
// next render.
func (w *Widget) Activate() tea.Cmd {
	if !w.ctrl.Begin() {
		return nil
	}
	w.mount()
	id := w.id
	return func() tea.Msg { return focusMsg{id: id} }
}

// Commit saves the field content and returns to viewing.
func (w *Widget) Commit() {
	w.ctrl.Commit(w.fieldValue())
	w.sync()
}

// Cancel drops the field content and returns to viewing.
func (w *Widget) Cancel() {
	w.ctrl.Cancel()
	w.sync()
}

// Close releases the measurement style, the document listener and an owned
// zone manager.
func (w *Widget) Close() {
	w.ctrl.Cancel()
	w.field = nil
	w.watch.Close()
	w.meas.release()
	if w.ownZones {
		w.zones.Close()
		w.ownZones = false
	}
}

func (w *Widget) zoneID(part string) string { return w.prefix + part }

// fieldValue returns the live field content; a missing field reads as "".
func (w *Widget) fieldValue() string {
	if w.field == nil {
		return ""
	}
	return w.field.Value()
}

func fieldWidth(width int) int {
	if width <= 1 {
		return 0
	}
	return width - 1
}

func (w *Widget) mount() {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = w.placeholder
	ti.CharLimit = w.maxLength
	ti.Width = fieldWidth(w.width)
	ti.TextStyle = w.styles.Field
	ti.PlaceholderStyle = w.styles.Placeholder
	ti.SetValue(w.ctrl.Entry())
	w.field = &ti

	w.watch.SetBoundary(w.boundary)
	w.watch.SetActive(true)
	w.reposition()
}

// sync unmounts the field once the controller is back in viewing mode.
func (w *Widget) sync() {
	if w.ctrl.Editing() {
		return
	}
	w.field = nil
	w.watch.SetActive(false)
	w.watch.SetBoundary(nil)
}

func (w *Widget) rootFontSize() (float64, error) {
	m, err := w.metrics.Metrics()
	if err != nil {
		return 0, err
	}
	return m.CellHeight, nil
}

func (w *Widget) cellMetrics() util.Metrics {
	m, err := w.metrics.Metrics()
	if err != nil {
		w.log.Debug("cell metrics: %v", err)
		return util.Metrics{}.OrFallback()
	}
	return m.OrFallback()
}

// reposition measures the field text and moves the controls after it. It
// does nothing while viewing.
func (w *Widget) reposition() {
	if !w.ctrl.Editing() || w.field == nil {
		return
	}
	m := w.cellMetrics()
	text := float64(w.meas.measure(w.field.TextStyle, w.field.Value())) * m.CellWidth
	px := w.calc.Update(text, func() (float64, bool) {
		if w.width <= 0 {
			return 0, false
		}
		return float64(w.width) * m.CellWidth, true
	})
	w.offsetCells = int(float64(px) / m.CellWidth)
}
