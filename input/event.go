package input

import (
	"fmt"
	"strings"
)

// Event is one decoded terminal input: a KeyEvent, MouseEvent or PasteEvent.
type Event interface {
	isEvent()
}

// KeyCode identifies a key. Character keys use KeyRune with the character in
// KeyEvent.Rune.
type KeyCode uint8

const (
	KeyRune KeyCode = iota
	KeyEsc
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyNames = map[KeyCode]string{
	KeyEsc:       "esc",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
}

func (k KeyCode) String() string {
	if k == KeyRune {
		return "rune"
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", k)
}

// IsVertical reports whether k moves the cursor between rows.
func (k KeyCode) IsVertical() bool {
	switch k {
	case KeyUp, KeyDown, KeyPageUp, KeyPageDown:
		return true
	default:
		return false
	}
}

// Modifier is a bitmask of modifier keys, laid out as in the xterm modifier
// parameter minus one.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl

	ModNone Modifier = 0
)

func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

// String returns the modifier prefix used in key names, e.g. "ctrl+shift+".
func (m Modifier) String() string {
	var sb strings.Builder
	if m.Has(ModCtrl) {
		sb.WriteString("ctrl+")
	}
	if m.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	if m.Has(ModShift) {
		sb.WriteString("shift+")
	}
	return sb.String()
}

// KeyEvent is a key press.
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
}

func (KeyEvent) isEvent() {}

// String names the key the way key bindings spell it: "ctrl+c", "shift+up",
// "alt+x", "pgdown". An unmodified character is the character itself.
func (e KeyEvent) String() string {
	name := e.Code.String()
	if e.Code == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' && e.Mod != ModNone {
			name = "space"
		}
	}
	return e.Mod.String() + name
}

// Printable reports whether e inserts its character when typed.
func (e KeyEvent) Printable() bool {
	return e.Code == KeyRune && e.Rune >= 0x20 && !e.Mod.Has(ModCtrl|ModAlt)
}

type MouseKind uint8

const (
	MouseButton MouseKind = iota
	MouseWheelUp
	MouseWheelDown
)

type MouseButtonID uint8

const (
	ButtonLeft MouseButtonID = iota
	ButtonMiddle
	ButtonRight
)

type MouseAction uint8

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseDrag
)

// MouseEvent is an SGR mouse report. X and Y are 0-based screen cells.
// Button and Action are meaningful only for Kind == MouseButton.
type MouseEvent struct {
	Kind   MouseKind
	Button MouseButtonID
	Action MouseAction
	X, Y   int
	Mod    Modifier
}

func (MouseEvent) isEvent() {}

// PasteEvent carries the payload of one bracketed paste.
type PasteEvent struct {
	Text string
}

func (PasteEvent) isEvent() {}
