package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings. Bindings are matched against
// input.KeyEvent names. Holding shift on a navigation key extends the
// selection, so navigation bindings list their shifted form too.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding
	DocStart, DocEnd      key.Binding

	ScrollUp, ScrollDown key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	Save, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "shift+left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "shift+right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "shift+up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "shift+down"), key.WithHelp("↓", "down")),

		WordLeft:  key.NewBinding(key.WithKeys("ctrl+left", "ctrl+shift+left"), key.WithHelp("ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("ctrl+right", "ctrl+shift+right"), key.WithHelp("ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "shift+home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "shift+end", "ctrl+e"), key.WithHelp("end", "line end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup", "shift+pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "shift+pgdown"), key.WithHelp("pgdown", "page down")),

		DocStart: key.NewBinding(key.WithKeys("ctrl+home", "ctrl+shift+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end", "ctrl+shift+end"), key.WithHelp("ctrl+end", "document end")),

		ScrollUp:   key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "scroll down")),

		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "quit")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Quit.Keys()) == 0 && len(km.Enter.Keys()) == 0
}

// ShortHelp returns the bindings shown in a compact help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Save, km.Quit, km.Undo, km.Redo}
}

// FullHelp returns every binding grouped by concern.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.WordLeft, km.WordRight, km.Home, km.End, km.PageUp, km.PageDown, km.DocStart, km.DocEnd},
		{km.ScrollUp, km.ScrollDown},
		{km.Backspace, km.Delete, km.Enter, km.Tab},
		{km.Undo, km.Redo, km.Copy, km.Cut, km.Paste},
		{km.Save, km.Quit},
	}
}
