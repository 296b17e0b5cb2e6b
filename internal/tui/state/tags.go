package state

// TagKind enumerates the status chips shown next to an edited value.
type TagKind int

const (
	// Stable ordering for display: Edited, Empty, Length, Max Length
	EDITED TagKind = iota
	EMPTY
	LENGTH
	MAX_LEN
)

// Tag represents a single status chip. Value is used for numeric counters;
// non-numeric tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value int
}
