package editor

import "github.com/iw2rmb/tedit/buffer"

// ChangeEvent is delivered to Config.OnChange after every edit, undo, redo
// or cursor move.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Edit is the op applied to the document, or nil for cursor moves. For an
	// undo it is the inverse of the undone op.
	Edit *buffer.EditOp

	Modified bool
}

func (s *State) notify(edit *buffer.EditOp) {
	s.version++
	if s.cfg.OnChange == nil {
		return
	}
	ev := ChangeEvent{
		Version:  s.version,
		Cursor:   s.cursor.Pos,
		Edit:     edit,
		Modified: s.Modified(),
	}
	if r, ok := s.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	s.cfg.OnChange(ev)
}
