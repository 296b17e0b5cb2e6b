package state

// BeginEdit switches to Editing seeded with current. While already Editing it
// returns s unchanged so an external change never clobbers an edit in progress.
func BeginEdit(s EditSession, current string) EditSession {
	if s.Mode == Editing {
		return s
	}
	s.Mode = Editing
	s.Entry = current
	s.Working = current
	return s
}

// SetWorking records the field content while Editing.
func SetWorking(s EditSession, value string) EditSession {
	if s.Mode != Editing {
		return s
	}
	s.Working = value
	return s
}

// EndEdit returns to Viewing and drops the working value.
func EndEdit(s EditSession) EditSession {
	s.Mode = Viewing
	s.Working = ""
	return s
}

// Changed reports whether value differs from the value captured at entry.
func Changed(s EditSession, value string) bool {
	return value != s.Entry
}
