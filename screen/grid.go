package screen

import (
	"strings"

	"github.com/iw2rmb/tedit/internal/grapheme"
)

type cell struct {
	text  string // "" marks the trailing half of a wide cluster
	style StyleID
}

var blank = cell{text: " "}

// Grid is an in-memory Sink holding the cells of a width x height screen.
type Grid struct {
	width, height int
	cells         [][]cell

	x, y          int
	style         StyleID
	cursorVisible bool
}

func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize reallocates the grid. Contents are cleared.
func (g *Grid) Resize(width, height int) {
	g.width, g.height = max(width, 0), max(height, 0)
	g.cells = make([][]cell, g.height)
	for y := range g.cells {
		g.cells[y] = make([]cell, g.width)
	}
	g.clearScreen()
	g.x, g.y = 0, 0
}

func (g *Grid) Size() (width, height int) { return g.width, g.height }

// Cursor returns the cursor position and whether it is shown.
func (g *Grid) Cursor() (x, y int, visible bool) { return g.x, g.y, g.cursorVisible }

func (g *Grid) Apply(ops ...Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpMoveTo:
			g.x, g.y = op.X, op.Y
		case OpPrint:
			g.print(op.Text)
		case OpClearToEOL:
			if g.y >= 0 && g.y < g.height {
				for x := max(g.x, 0); x < g.width; x++ {
					g.cells[g.y][x] = blank
				}
			}
		case OpClearLine:
			if g.y >= 0 && g.y < g.height {
				for x := range g.cells[g.y] {
					g.cells[g.y][x] = blank
				}
			}
		case OpClearScreen:
			g.clearScreen()
			g.x, g.y = 0, 0
		case OpHideCursor:
			g.cursorVisible = false
		case OpShowCursor:
			g.cursorVisible = true
		case OpSetStyle:
			g.style = op.Style
		}
	}
}

func (g *Grid) Flush() error { return nil }

func (g *Grid) clearScreen() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = blank
		}
	}
}

func (g *Grid) print(text string) {
	for _, c := range grapheme.Split(text) {
		w := max(grapheme.Width(c), 1)
		if g.y >= 0 && g.y < g.height && g.x >= 0 && g.x+w <= g.width {
			g.cells[g.y][g.x] = cell{text: c, style: g.style}
			for i := 1; i < w; i++ {
				g.cells[g.y][g.x+i] = cell{style: g.style}
			}
		}
		g.x += w
	}
}

// Lines returns the text of every row with trailing blanks trimmed.
func (g *Grid) Lines() []string {
	out := make([]string, g.height)
	for y, row := range g.cells {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(c.text)
		}
		out[y] = strings.TrimRight(sb.String(), " ")
	}
	return out
}

func (g *Grid) String() string { return strings.Join(g.Lines(), "\n") }

// StyleAt returns the style of the cell at (x, y).
func (g *Grid) StyleAt(x, y int) StyleID {
	if y < 0 || y >= g.height || x < 0 || x >= g.width {
		return StyleNormal
	}
	return g.cells[y][x].style
}

// Render returns the grid as styled text, one line per row. A visible cursor
// is drawn with the cursor style.
func (g *Grid) Render(styles Styles) string {
	lines := make([]string, g.height)
	for y, row := range g.cells {
		var sb strings.Builder
		var run strings.Builder
		runStyle := StyleNormal
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == StyleNormal {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styles.get(runStyle).Render(run.String()))
			}
			run.Reset()
		}
		for x, c := range row {
			if c.text == "" {
				continue
			}
			if g.cursorVisible && x == g.x && y == g.y {
				flush()
				sb.WriteString(styles.Cursor.Render(c.text))
				continue
			}
			if c.style != runStyle {
				flush()
				runStyle = c.style
			}
			run.WriteString(c.text)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
