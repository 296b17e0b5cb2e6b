package state

// EditMode is the inline editor's current mode.
type EditMode int

const (
	Viewing EditMode = iota
	Editing
)

func (m EditMode) String() string {
	switch m {
	case Viewing:
		return "VIEW"
	case Editing:
		return "EDIT"
	default:
		return "UNKNOWN"
	}
}

// EditSession is the state of one inline editor.
//
// Entry is the external value captured when editing began; Working is the
// text currently in the field. Both are meaningless while Viewing.
type EditSession struct {
	Mode    EditMode
	Entry   string
	Working string
}

// Editing reports whether the session is in Editing mode.
func (s EditSession) Editing() bool { return s.Mode == Editing }
