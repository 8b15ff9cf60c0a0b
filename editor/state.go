package editor

import "github.com/iw2rmb/tedit/buffer"

// State owns one open document: its content, cursor, viewport, selection
// anchor and edit history. It is not safe for concurrent use; a single loop
// drives it.
type State struct {
	cfg Config

	content *buffer.Content
	cursor  buffer.Cursor
	anchor  *buffer.Pos
	view    Viewport
	history *buffer.History

	// Terminal size; the viewport excludes the status row.
	width, height int

	version      uint64
	editVersion  uint64
	savedVersion uint64

	dragging bool
}

// New returns a State editing content with the cursor at the document start.
func New(content *buffer.Content, cfg Config) *State {
	if content == nil {
		content = buffer.NewContent(nil, buffer.LF)
	}
	cfg = cfg.withDefaults()
	return &State{
		cfg:     cfg,
		content: content,
		history: buffer.NewHistory(cfg.HistoryLimit),
	}
}

func (s *State) Content() *buffer.Content { return s.content }

func (s *State) Cursor() buffer.Cursor { return s.cursor }

func (s *State) Viewport() Viewport { return s.view }

func (s *State) Text() string { return s.content.Text() }

// Version increases on every change reported to OnChange.
func (s *State) Version() uint64 { return s.version }

// Modified reports whether the document changed since the last MarkSaved.
func (s *State) Modified() bool { return s.editVersion != s.savedVersion }

// MarkSaved records the current document as saved.
func (s *State) MarkSaved() { s.savedVersion = s.editVersion }

func (s *State) CanUndo() bool { return s.history.CanUndo() }

func (s *State) CanRedo() bool { return s.history.CanRedo() }

// Anchor returns the selection anchor, if one is set.
func (s *State) Anchor() (buffer.Pos, bool) {
	if s.anchor == nil {
		return buffer.Pos{}, false
	}
	return *s.anchor, true
}

// Selection returns the ordered selection span, clamped into the document.
// It reports false when no anchor is set.
func (s *State) Selection() (buffer.Range, bool) {
	if s.anchor == nil {
		return buffer.Range{}, false
	}
	anchor := s.content.Clamp(*s.anchor)
	return Selection(&anchor, s.content.Clamp(s.cursor.Pos))
}

// editSelection returns the selection if it spans at least one cluster.
func (s *State) editSelection() (buffer.Range, bool) {
	r, ok := s.Selection()
	if !ok || r.IsEmpty() {
		return buffer.Range{}, false
	}
	return r, true
}

// SelectedText returns the selected text joined with the document delimiter.
func (s *State) SelectedText() string {
	r, ok := s.editSelection()
	if !ok {
		return ""
	}
	return s.content.TextRange(r)
}

func (s *State) cursorPoint() Point {
	p := s.content.Clamp(s.cursor.Pos)
	return Point{X: s.content.Row(p.Row).MonoColAt(p.Col), Y: p.Row}
}

func (s *State) scrollIntoView() bool {
	v, ok := s.view.ScrollIntoView(s.cursorPoint())
	if ok {
		s.view = v
	}
	return ok
}

// MoveCursor assigns next as the cursor. With selecting set the anchor is
// placed at the previous cursor position unless one already exists; without
// it the anchor is cleared. The viewport follows the cursor. It reports
// whether the visible content needs a repaint.
func (s *State) MoveCursor(next buffer.Cursor, selecting bool) bool {
	repaint := false
	if selecting {
		if s.anchor == nil {
			anchor := s.cursor.Pos
			s.anchor = &anchor
		}
		repaint = true
	} else if s.anchor != nil {
		s.anchor = nil
		repaint = true
	}

	s.cursor = next
	if s.scrollIntoView() {
		repaint = true
	}
	s.notify(nil)
	return repaint
}

// Edit applies op, records it for undo and invalidates redo. The cursor
// moves to the end of the change and the selection is cleared.
func (s *State) Edit(op buffer.EditOp) {
	end := buffer.Process(s.content, op)
	s.history.Record(op)
	s.afterEdit(end, &op)
}

// Undo reverts the most recent edit and places the cursor at its start.
// It reports false when there is nothing to undo.
func (s *State) Undo() bool {
	op, ok := s.history.Undo()
	if !ok {
		return false
	}
	inv := op.Inverse()
	buffer.Process(s.content, inv)
	s.afterEdit(op.From, &inv)
	return true
}

// Redo reapplies the most recently undone edit. The cursor lands where the
// original edit left it.
func (s *State) Redo() bool {
	op, ok := s.history.Redo()
	if !ok {
		return false
	}
	end := buffer.Process(s.content, op)
	s.afterEdit(end, &op)
	return true
}

func (s *State) afterEdit(cursor buffer.Pos, op *buffer.EditOp) {
	s.cursor = buffer.NewCursor(s.content.Clamp(cursor))
	s.anchor = nil
	s.editVersion++
	s.scrollIntoView()
	s.notify(op)
}

// InsertText inserts text at the cursor, replacing a non-empty selection.
func (s *State) InsertText(text string) bool {
	if s.cfg.ReadOnly || text == "" {
		return false
	}
	if r, ok := s.editSelection(); ok {
		s.Edit(buffer.Replace(s.content, r.Start, r.End, text))
		return true
	}
	s.Edit(buffer.Insert(s.content.Clamp(s.cursor.Pos), text))
	return true
}

// Backspace deletes the selection, or the cluster before the cursor.
func (s *State) Backspace() bool {
	return s.deleteWith(buffer.Cursor.MoveLeft)
}

// DeleteForward deletes the selection, or the cluster after the cursor.
func (s *State) DeleteForward() bool {
	return s.deleteWith(buffer.Cursor.MoveRight)
}

func (s *State) deleteWith(move func(buffer.Cursor, *buffer.Content) (buffer.Cursor, bool)) bool {
	if s.cfg.ReadOnly {
		return false
	}
	if r, ok := s.editSelection(); ok {
		s.Edit(buffer.Delete(s.content, r.Start, r.End))
		return true
	}
	next, ok := move(s.cursor, s.content)
	if !ok {
		return false
	}
	s.Edit(buffer.Delete(s.content, s.cursor.Pos, next.Pos))
	return true
}

// Scroll moves the viewport by delta rows without moving the cursor.
func (s *State) Scroll(delta int) bool {
	var (
		v  Viewport
		ok bool
	)
	if delta < 0 {
		v, ok = s.view.ScrollUp(-delta)
	} else {
		v, ok = s.view.ScrollDown(delta, s.content.LastLineRow())
	}
	if ok {
		s.view = v
	}
	return ok
}

// Resize sets the terminal size. With a status bar the last row is not part
// of the viewport. The scroll origin is kept.
func (s *State) Resize(width, height int) bool {
	s.width, s.height = max(width, 0), max(height, 0)
	if s.cfg.StatusBar {
		height--
	}
	v, ok := s.view.Resize(width, height)
	s.view = v
	return ok
}

// Size returns the terminal size last passed to Resize.
func (s *State) Size() (width, height int) { return s.width, s.height }
