// Package outside reports pointer activity that lands outside a boundary.
package outside

import tea "github.com/charmbracelet/bubbletea"

// EventKind is the kind of activity an Event carries.
type EventKind int

const (
	PointerDown EventKind = iota
	TouchStart
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case TouchStart:
		return "touchstart"
	default:
		return "unknown"
	}
}

// DefaultKinds are the event kinds a Watcher listens for unless told otherwise.
var DefaultKinds = []EventKind{PointerDown, TouchStart}

// Event is one piece of activity on the screen, in cell coordinates.
type Event struct {
	Kind  EventKind
	X, Y  int
	Mouse tea.MouseMsg
}

// FromMouse converts a mouse message into an Event. Only button presses count
// as activity; motion, release and wheel messages report false.
func FromMouse(msg tea.MouseMsg) (Event, bool) {
	if msg.Action != tea.MouseActionPress {
		return Event{}, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft, tea.MouseButtonMiddle, tea.MouseButtonRight:
		return Event{Kind: PointerDown, X: msg.X, Y: msg.Y, Mouse: msg}, true
	default:
		return Event{}, false
	}
}

// Listener receives dispatched events.
type Listener func(Event)

// Document fans events out to its listeners. It is the screen-wide
// equivalent of a document node and is not safe for concurrent use; it lives
// on the Bubble Tea update goroutine.
type Document struct {
	next      int
	listeners map[int]Listener
	order     []int
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{listeners: map[int]Listener{}}
}

// Subscribe registers fn and returns the function that removes it. Calling
// the returned function more than once is harmless.
func (d *Document) Subscribe(fn Listener) (unsubscribe func()) {
	id := d.next
	d.next++
	d.listeners[id] = fn
	d.order = append(d.order, id)
	return func() {
		if _, ok := d.listeners[id]; !ok {
			return
		}
		delete(d.listeners, id)
		for i, v := range d.order {
			if v == id {
				d.order = append(d.order[:i], d.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers ev to every listener registered when Dispatch began.
// Listeners removed during delivery are skipped.
func (d *Document) Dispatch(ev Event) {
	ids := append([]int(nil), d.order...)
	for _, id := range ids {
		fn, ok := d.listeners[id]
		if !ok {
			continue
		}
		fn(ev)
	}
}

// Listeners returns the number of registered listeners.
func (d *Document) Listeners() int { return len(d.listeners) }
