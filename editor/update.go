package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/tedit/buffer"
	"github.com/iw2rmb/tedit/input"
)

// Action is a request from the editor to its host.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionSave
)

// Result reports what handling an event requires from the host. Redraw asks
// for a repaint of the document rows; the cursor and status bar are redrawn
// after every event regardless.
type Result struct {
	Redraw bool
	Action Action
}

// HandleEvent routes one input event through the editor.
func (s *State) HandleEvent(ev input.Event) Result {
	switch ev := ev.(type) {
	case input.KeyEvent:
		if !ev.Code.IsVertical() {
			s.cursor = s.cursor.ResetColumn()
		}
		return s.handleKey(ev)
	case input.MouseEvent:
		s.cursor = s.cursor.ResetColumn()
		return Result{Redraw: s.handleMouse(ev)}
	case input.PasteEvent:
		s.cursor = s.cursor.ResetColumn()
		return Result{Redraw: s.InsertText(ev.Text)}
	}
	return Result{}
}

func (s *State) handleKey(ev input.KeyEvent) Result {
	km := s.cfg.KeyMap
	selecting := ev.Mod.Has(input.ModShift)

	switch {
	case key.Matches(ev, km.Quit):
		return Result{Action: ActionQuit}
	case key.Matches(ev, km.Save):
		return Result{Action: ActionSave}

	case key.Matches(ev, km.DocStart):
		return s.navigate(buffer.Cursor.MoveDocumentStart, selecting)
	case key.Matches(ev, km.DocEnd):
		return s.navigate(buffer.Cursor.MoveDocumentEnd, selecting)
	case key.Matches(ev, km.Left):
		return s.navigate(buffer.Cursor.MoveLeft, selecting)
	case key.Matches(ev, km.Right):
		return s.navigate(buffer.Cursor.MoveRight, selecting)
	case key.Matches(ev, km.WordLeft):
		return s.navigate(buffer.Cursor.MoveWordLeft, selecting)
	case key.Matches(ev, km.WordRight):
		return s.navigate(buffer.Cursor.MoveWordRight, selecting)
	case key.Matches(ev, km.Home):
		return s.navigate(buffer.Cursor.MoveLineStart, selecting)
	case key.Matches(ev, km.End):
		return s.navigate(buffer.Cursor.MoveLineEnd, selecting)
	case key.Matches(ev, km.Up):
		return s.navigateRows(-1, selecting)
	case key.Matches(ev, km.Down):
		return s.navigateRows(1, selecting)
	case key.Matches(ev, km.PageUp):
		return s.navigateRows(-s.pageRows(), selecting)
	case key.Matches(ev, km.PageDown):
		return s.navigateRows(s.pageRows(), selecting)

	case key.Matches(ev, km.ScrollUp):
		return Result{Redraw: s.Scroll(-s.cfg.ScrollStep)}
	case key.Matches(ev, km.ScrollDown):
		return Result{Redraw: s.Scroll(s.cfg.ScrollStep)}

	case key.Matches(ev, km.Backspace):
		return Result{Redraw: s.Backspace()}
	case key.Matches(ev, km.Delete):
		return Result{Redraw: s.DeleteForward()}
	case key.Matches(ev, km.Enter):
		return Result{Redraw: s.InsertText(s.content.Delimiter())}
	case key.Matches(ev, km.Tab):
		return Result{Redraw: s.InsertText("\t")}

	case key.Matches(ev, km.Undo):
		return Result{Redraw: !s.cfg.ReadOnly && s.Undo()}
	case key.Matches(ev, km.Redo):
		return Result{Redraw: !s.cfg.ReadOnly && s.Redo()}

	case key.Matches(ev, km.Copy):
		_ = s.copySelection()
		return Result{}
	case key.Matches(ev, km.Cut):
		return Result{Redraw: s.cutSelection()}
	case key.Matches(ev, km.Paste):
		return Result{Redraw: s.pasteClipboard()}
	}

	if ev.Printable() {
		return Result{Redraw: s.InsertText(string(ev.Rune))}
	}
	return Result{}
}

func (s *State) pageRows() int {
	return max(s.view.Height-1, 1)
}

func (s *State) navigate(move func(buffer.Cursor, *buffer.Content) (buffer.Cursor, bool), selecting bool) Result {
	next, ok := move(s.cursor, s.content)
	if !ok {
		return Result{}
	}
	return Result{Redraw: s.MoveCursor(next, selecting)}
}

func (s *State) navigateRows(delta int, selecting bool) Result {
	var (
		next buffer.Cursor
		ok   bool
	)
	if delta < 0 {
		next, ok = s.cursor.MoveUp(s.content, -delta)
	} else {
		next, ok = s.cursor.MoveDown(s.content, delta)
	}
	if !ok {
		return Result{}
	}
	return Result{Redraw: s.MoveCursor(next, selecting)}
}

func (s *State) handleMouse(ev input.MouseEvent) bool {
	switch ev.Kind {
	case input.MouseWheelUp:
		return s.Scroll(-s.cfg.ScrollStep)
	case input.MouseWheelDown:
		return s.Scroll(s.cfg.ScrollStep)
	}
	if ev.Button != input.ButtonLeft {
		return false
	}

	switch ev.Action {
	case input.MousePress:
		if ev.Y >= s.view.Height || ev.X >= s.view.Width {
			return false
		}
		s.dragging = true
		return s.click(ev.X, ev.Y, ev.Mod.Has(input.ModShift))
	case input.MouseDrag:
		if !s.dragging {
			return false
		}
		x := min(max(ev.X, 0), max(s.view.Width-1, 0))
		y := min(max(ev.Y, 0), max(s.view.Height-1, 0))
		return s.click(x, y, true)
	case input.MouseRelease:
		s.dragging = false
	}
	return false
}

func (s *State) click(x, y int, selecting bool) bool {
	p := s.view.ToAbsolute(Point{X: x, Y: y})
	next, ok := s.cursor.Click(s.content, p.Y, p.X)
	if !ok {
		// A plain click on the cursor still drops the selection.
		if !selecting && s.anchor != nil {
			s.anchor = nil
			s.notify(nil)
			return true
		}
		return false
	}
	return s.MoveCursor(next, selecting)
}

func (s *State) copySelection() error {
	if s.cfg.Clipboard == nil {
		return nil
	}
	text := s.SelectedText()
	if text == "" {
		return nil
	}
	return s.cfg.Clipboard.WriteText(text)
}

// cutSelection deletes the selection only once it reached the clipboard.
func (s *State) cutSelection() bool {
	if s.cfg.ReadOnly {
		_ = s.copySelection()
		return false
	}
	r, ok := s.editSelection()
	if !ok {
		return false
	}
	if err := s.copySelection(); err != nil {
		return false
	}
	s.Edit(buffer.Delete(s.content, r.Start, r.End))
	return true
}

func (s *State) pasteClipboard() bool {
	if s.cfg.Clipboard == nil {
		return false
	}
	text, err := s.cfg.Clipboard.ReadText()
	if err != nil {
		return false
	}
	return s.InsertText(text)
}
