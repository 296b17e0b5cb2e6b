package util

import (
	"unicode/utf8"

	"click-to-edit/internal/tui/state"
)

// ComputeTags describes value for the tag chips.
//
// The returned slice preserves a stable order:
//   Edited, Empty, Length, Max Length
//
// Edited reflects a commit made in this session. Max Length is only present
// when maxLength is positive; it is advisory and never enforced here.
func ComputeTags(value string, maxLength int, edited bool) []state.Tag {
	n := utf8.RuneCountInString(value)

	tags := make([]state.Tag, 0, 4)
	if edited {
		tags = append(tags, state.Tag{Kind: state.EDITED})
	}
	if n == 0 {
		tags = append(tags, state.Tag{Kind: state.EMPTY})
	}
	tags = append(tags, state.Tag{Kind: state.LENGTH, Value: n})
	if maxLength > 0 {
		tags = append(tags, state.Tag{Kind: state.MAX_LEN, Value: maxLength})
	}
	return tags
}
