// Package terminal switches the controlling terminal into the mode the editor
// runs in and back.
package terminal

import (
	"errors"
	"fmt"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ErrNoSize is returned by Size when the descriptor is not a terminal.
var ErrNoSize = errors.New("terminal size unavailable")

type Options struct {
	// Capture mouse clicks, drags and the wheel as SGR reports.
	Mouse bool
	Title string
}

// Guard holds the terminal state captured by Enter. Restore undoes every
// mode Enter set; it is safe to call more than once.
type Guard struct {
	fd    int
	out   *termenv.Output
	opts  Options
	state *term.State
	done  bool
}

// Enter puts the terminal on fd into raw mode and writes the mode sequences
// for the alternate screen, mouse capture, bracketed paste and the window
// title to out. A descriptor that is not a terminal is left in its current
// mode; the sequences are written regardless.
func Enter(fd int, out *termenv.Output, opts Options) (*Guard, error) {
	g := &Guard{fd: fd, out: out, opts: opts}
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("enable raw mode: %w", err)
		}
		g.state = state
	}

	out.AltScreen()
	out.ClearScreen()
	if opts.Mouse {
		out.EnableMouseCellMotion()
		out.EnableMouseExtendedMode()
	}
	out.EnableBracketedPaste()
	if opts.Title != "" {
		out.SetWindowTitle(opts.Title)
	}
	return g, nil
}

// Raw reports whether Enter switched the terminal into raw mode.
func (g *Guard) Raw() bool { return g.state != nil }

// Restore reverses Enter.
func (g *Guard) Restore() error {
	if g.done {
		return nil
	}
	g.done = true

	g.out.DisableBracketedPaste()
	if g.opts.Mouse {
		g.out.DisableMouseExtendedMode()
		g.out.DisableMouseCellMotion()
	}
	g.out.ShowCursor()
	g.out.ExitAltScreen()

	if g.state == nil {
		return nil
	}
	if err := term.Restore(g.fd, g.state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Size returns the width and height of the terminal on fd.
func Size(fd int) (width, height int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNoSize
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return width, height, nil
}
