package state

import (
	"errors"
	"fmt"

	"click-to-edit/internal/logging"
)

// Configuration errors returned by NewController.
var (
	ErrNilValueFunc  = errors.New("current value accessor is nil")
	ErrNilChangeFunc = errors.New("change handler is nil")
)

// ValueFunc returns the live external value.
type ValueFunc func() (string, error)

// ChangeFunc receives a committed value.
type ChangeFunc func(newValue string) error

// Controller drives an EditSession and isolates the session from failing
// consumer callbacks: errors and panics from ValueFunc or ChangeFunc are
// logged and swallowed, and the transition in progress always completes.
type Controller struct {
	current ValueFunc
	change  ChangeFunc
	log     logging.Logger

	session   EditSession
	lastKnown string
	// displayFailing is set while Display reads keep failing; only the
	// first failure of a run is logged as an error.
	displayFailing bool
}

// NewController builds a controller in Viewing mode. A nil log uses the
// global logger.
func NewController(current ValueFunc, change ChangeFunc, log logging.Logger) (*Controller, error) {
	if current == nil {
		return nil, ErrNilValueFunc
	}
	if change == nil {
		return nil, ErrNilChangeFunc
	}
	if log == nil {
		log = logging.Global()
	}
	return &Controller{current: current, change: change, log: log}, nil
}

// Session returns a copy of the current session.
func (c *Controller) Session() EditSession { return c.session }

// Mode returns the current mode.
func (c *Controller) Mode() EditMode { return c.session.Mode }

// Editing reports whether the controller is in Editing mode.
func (c *Controller) Editing() bool { return c.session.Editing() }

// Entry returns the value captured when editing began.
func (c *Controller) Entry() string { return c.session.Entry }

// Display returns the text shown while Viewing: the external value, or the
// placeholder when the value is empty. placeholder reports which one it is.
// It runs on every render, so repeated accessor failures log at Debug.
func (c *Controller) Display(placeholderText string) (text string, placeholder bool) {
	v, err := c.read()
	switch {
	case err != nil && !c.displayFailing:
		c.log.Error("read current value for display: %v", err)
		c.displayFailing = true
		v = c.lastKnown
	case err != nil:
		c.log.Debug("read current value for display: %v", err)
		v = c.lastKnown
	case c.displayFailing:
		c.log.Info("current value readable again")
		c.displayFailing = false
	}
	if v == "" {
		return placeholderText, true
	}
	return v, false
}

// Begin enters Editing, reading the external value exactly once. It reports
// whether a transition happened. If the accessor fails the session is seeded
// with the last value read successfully.
func (c *Controller) Begin() bool {
	if c.session.Editing() {
		return false
	}
	v, err := c.read()
	if err != nil {
		c.log.Error("read current value on edit: %v", err)
		v = c.lastKnown
	}
	c.session = BeginEdit(c.session, v)
	c.log.Debug("editing started with %q", v)
	return true
}

// Update records the field content while Editing.
func (c *Controller) Update(value string) {
	c.session = SetWorking(c.session, value)
}

// Commit hands value to the change handler when it differs from the entry
// value, then returns to Viewing whatever the handler did.
func (c *Controller) Commit(value string) {
	if !c.session.Editing() {
		return
	}
	defer func() {
		c.session = EndEdit(c.session)
	}()

	if !Changed(c.session, value) {
		c.log.Debug("commit without change")
		return
	}
	if err := c.notify(value); err != nil {
		c.log.Error("change handler failed: %v", err)
		return
	}
	c.lastKnown = value
}

// Cancel discards the working value and returns to Viewing.
func (c *Controller) Cancel() {
	if !c.session.Editing() {
		return
	}
	c.session = EndEdit(c.session)
	c.log.Debug("edit cancelled")
}

// HandleKey applies the keyboard transitions: "enter" commits fieldValue and
// "esc" cancels. It reports whether the key was consumed.
func (c *Controller) HandleKey(key string, fieldValue string) bool {
	if !c.session.Editing() {
		return false
	}
	switch key {
	case "enter":
		c.Commit(fieldValue)
		return true
	case "esc":
		c.Cancel()
		return true
	}
	return false
}

func (c *Controller) read() (v string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	v, err = c.current()
	if err == nil {
		c.lastKnown = v
	}
	return v, err
}

func (c *Controller) notify(value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.change(value)
}
