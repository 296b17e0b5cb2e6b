package outside

import "click-to-edit/internal/logging"

// Watcher calls a dismissal function for activity outside its boundary while
// it is active. It holds at most one Document subscription at a time.
type Watcher struct {
	doc       *Document
	onOutside func()
	kinds     map[EventKind]bool
	log       logging.Logger

	active      bool
	boundary    Boundary
	unsubscribe func()
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithKinds replaces DefaultKinds.
func WithKinds(kinds ...EventKind) Option {
	return func(w *Watcher) {
		w.kinds = make(map[EventKind]bool, len(kinds))
		for _, k := range kinds {
			w.kinds[k] = true
		}
	}
}

// WithLogger sets the diagnostic sink.
func WithLogger(l logging.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWatcher returns an inactive watcher on doc.
func NewWatcher(doc *Document, onOutside func(), opts ...Option) *Watcher {
	w := &Watcher{doc: doc, onOutside: onOutside, log: logging.Global()}
	WithKinds(DefaultKinds...)(w)
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SetBoundary sets the region treated as inside. nil means not mounted yet;
// nothing is dismissed until a boundary is set.
func (w *Watcher) SetBoundary(b Boundary) { w.boundary = b }

// Active reports whether the watcher is listening.
func (w *Watcher) Active() bool { return w.active }

// SetActive installs the document listener when active becomes true and
// removes it when it becomes false. Repeated calls with the same value do
// nothing.
func (w *Watcher) SetActive(active bool) {
	if active == w.active {
		return
	}
	w.active = active
	if active {
		w.unsubscribe = w.doc.Subscribe(w.handle)
		w.log.Debug("outside watcher listening")
		return
	}
	w.release()
}

// Close removes any listener. The watcher may be reactivated afterwards.
func (w *Watcher) Close() {
	w.active = false
	w.release()
}

func (w *Watcher) release() {
	if w.unsubscribe == nil {
		return
	}
	w.unsubscribe()
	w.unsubscribe = nil
	w.log.Debug("outside watcher cleaned up")
}

func (w *Watcher) handle(ev Event) {
	if !w.active || !w.kinds[ev.Kind] {
		return
	}
	if w.boundary == nil || w.inside(ev) {
		return
	}
	w.log.Debug("%s outside at %d,%d", ev.Kind, ev.X, ev.Y)
	if w.onOutside != nil {
		w.onOutside()
	}
}

func (w *Watcher) inside(ev Event) bool {
	if w.boundary.Contains(ev) {
		return true
	}
	host, ok := w.boundary.(ShadowHost)
	if !ok {
		return false
	}
	root := host.ShadowRoot()
	return root != nil && root.Contains(ev)
}
