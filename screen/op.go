// Package screen turns abstract draw directives into terminal output.
//
// The editor emits a slice of Ops per frame. A Sink applies them: Writer
// translates them into ANSI escape sequences, Grid keeps an in-memory cell
// matrix used by tests and by hosts that render through a string view.
// Coordinates are 0-based cells.
package screen

import "fmt"

type OpKind uint8

const (
	OpMoveTo OpKind = iota
	OpPrint
	OpClearToEOL
	OpClearLine
	OpClearScreen
	OpHideCursor
	OpShowCursor
	OpSetStyle
)

// StyleID selects one of the styles of a Styles set.
type StyleID uint8

const (
	StyleNormal StyleID = iota
	StyleSelection
	StyleStatus
)

// Op is one draw directive.
type Op struct {
	Kind  OpKind
	X, Y  int
	Text  string
	Style StyleID
}

func MoveTo(x, y int) Op { return Op{Kind: OpMoveTo, X: x, Y: y} }

// Print writes text at the current position. Text must contain only
// printable clusters; tabs are expanded by the caller.
func Print(text string) Op { return Op{Kind: OpPrint, Text: text} }

func ClearToEOL() Op  { return Op{Kind: OpClearToEOL} }
func ClearLine() Op   { return Op{Kind: OpClearLine} }
func ClearScreen() Op { return Op{Kind: OpClearScreen} }
func HideCursor() Op  { return Op{Kind: OpHideCursor} }
func ShowCursor() Op  { return Op{Kind: OpShowCursor} }

func SetStyle(id StyleID) Op { return Op{Kind: OpSetStyle, Style: id} }

func (o Op) String() string {
	switch o.Kind {
	case OpMoveTo:
		return fmt.Sprintf("move(%d,%d)", o.X, o.Y)
	case OpPrint:
		return fmt.Sprintf("print(%q)", o.Text)
	case OpClearToEOL:
		return "clear-eol"
	case OpClearLine:
		return "clear-line"
	case OpClearScreen:
		return "clear-screen"
	case OpHideCursor:
		return "hide-cursor"
	case OpShowCursor:
		return "show-cursor"
	case OpSetStyle:
		return fmt.Sprintf("style(%d)", o.Style)
	default:
		return fmt.Sprintf("Op(%d)", o.Kind)
	}
}

// Sink consumes draw directives.
type Sink interface {
	Apply(ops ...Op)
	Flush() error
}
