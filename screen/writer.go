package screen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Writer is a Sink that emits ANSI escape sequences. Output is batched and
// only reaches the terminal on Flush.
type Writer struct {
	bw     *bufio.Writer
	out    *termenv.Output
	styles Styles
	style  StyleID
}

// NewWriter returns a Writer drawing to w with the given color profile.
func NewWriter(w io.Writer, profile termenv.Profile, theme Theme) *Writer {
	bw := bufio.NewWriter(w)
	out := termenv.NewOutput(bw, termenv.WithProfile(profile))
	r := lipgloss.NewRenderer(bw, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return &Writer{
		bw:     bw,
		out:    out,
		styles: NewStyles(r, theme),
	}
}

// Output exposes the underlying termenv output for terminal mode sequences.
func (w *Writer) Output() *termenv.Output { return w.out }

func (w *Writer) Apply(ops ...Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpMoveTo:
			w.out.MoveCursor(op.Y+1, op.X+1)
		case OpPrint:
			if w.style == StyleNormal {
				_, _ = w.bw.WriteString(op.Text)
				continue
			}
			_, _ = w.bw.WriteString(w.styles.get(w.style).Render(op.Text))
		case OpClearToEOL:
			w.out.ClearLineRight()
		case OpClearLine:
			w.out.ClearLine()
		case OpClearScreen:
			w.out.ClearScreen()
		case OpHideCursor:
			w.out.HideCursor()
		case OpShowCursor:
			w.out.ShowCursor()
		case OpSetStyle:
			w.style = op.Style
		}
	}
}

// Flush writes the batched output. Write errors surface here.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("flush screen: %w", err)
	}
	return nil
}
