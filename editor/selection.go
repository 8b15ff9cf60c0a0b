package editor

import "github.com/iw2rmb/tedit/buffer"

// Selection derives the selected span from an optional anchor and the
// cursor. The span is ordered regardless of which end the gesture started
// from. It reports false when there is no anchor.
func Selection(anchor *buffer.Pos, cursor buffer.Pos) (buffer.Range, bool) {
	if anchor == nil {
		return buffer.Range{}, false
	}
	if cursor.IsBefore(*anchor) {
		return buffer.Range{Start: cursor, End: *anchor}, true
	}
	return buffer.Range{Start: *anchor, End: cursor}, true
}
