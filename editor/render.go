package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/tedit/buffer"
	"github.com/iw2rmb/tedit/internal/grapheme"
	"github.com/iw2rmb/tedit/screen"
)

// placeholder stands in for clusters without a printable glyph.
const placeholder = "\uFFFD"

// Render returns the draw directives of one frame. With full set every
// visible row is repainted; otherwise only the status bar and the cursor.
func (s *State) Render(full bool) []screen.Op {
	ops := []screen.Op{screen.HideCursor()}
	if full {
		ops = s.renderRows(ops)
	}
	if s.cfg.StatusBar && s.height > 0 {
		ops = s.renderStatus(ops)
	}

	p := s.cursorPoint()
	if s.view.CursorWithin(p) {
		rel := s.view.ToRelative(p)
		ops = append(ops, screen.MoveTo(rel.X, rel.Y), screen.ShowCursor())
	}
	return ops
}

func (s *State) renderRows(ops []screen.Op) []screen.Op {
	sel, selOK := s.editSelection()
	last := s.content.LastLineRow()
	for y := 0; y < s.view.Height; y++ {
		row := s.view.Top + y
		if row > last {
			ops = append(ops, screen.MoveTo(0, y), screen.ClearLine())
			continue
		}
		ops = append(ops, screen.MoveTo(0, y))
		ops = s.renderRow(ops, row, sel, selOK)
		ops = append(ops, screen.SetStyle(screen.StyleNormal), screen.ClearToEOL())
	}
	return ops
}

// run collects consecutive visible text sharing one style.
type run struct {
	ops   []screen.Op
	style screen.StyleID
	text  strings.Builder
}

func (r *run) write(style screen.StyleID, text string) {
	if style != r.style {
		r.flush()
		r.style = style
		r.ops = append(r.ops, screen.SetStyle(style))
	}
	r.text.WriteString(text)
}

func (r *run) flush() {
	if r.text.Len() == 0 {
		return
	}
	r.ops = append(r.ops, screen.Print(r.text.String()))
	r.text.Reset()
}

func (s *State) renderRow(ops []screen.Op, rowIdx int, sel buffer.Range, selOK bool) []screen.Op {
	row := s.content.Row(rowIdx)
	left, right := s.view.Left, s.view.Left+s.view.Width

	r := &run{ops: ops, style: screen.StyleNormal}
	r.ops = append(r.ops, screen.SetStyle(screen.StyleNormal))

	i := row.CharIdxAt(left)
	if i > 0 && row.MonoColAt(i) > left {
		i--
	}
	for ; i < row.Len(); i++ {
		col, w := row.MonoColAt(i), row.ClusterWidth(i)
		if col >= right {
			break
		}
		if col+w <= left {
			continue
		}
		style := screen.StyleNormal
		if selOK && inRange(sel, buffer.Pos{Row: rowIdx, Col: i}) {
			style = screen.StyleSelection
		}
		r.write(style, cellText(row.Cluster(i), col, w, left, right))
	}

	// A selection that continues onto the next row highlights one cell past
	// the end of this one.
	if selOK && sel.Start.Row <= rowIdx && rowIdx < sel.End.Row {
		if end := row.Width(); end >= left && end < right {
			r.write(screen.StyleSelection, " ")
		}
	}
	r.flush()
	return r.ops
}

// cellText is what a cluster occupying [col, col+w) prints inside the
// visible columns [left, right).
func cellText(cluster string, col, w, left, right int) string {
	visible := min(col+w, right) - max(col, left)
	switch {
	case visible < w:
		return strings.Repeat(" ", visible)
	case cluster == "\t":
		return strings.Repeat(" ", w)
	case grapheme.IsControl(cluster) || grapheme.Width(cluster) == 0:
		return placeholder
	default:
		return cluster
	}
}

func inRange(r buffer.Range, p buffer.Pos) bool {
	return !p.IsBefore(r.Start) && p.IsBefore(r.End)
}

// renderStatus truncates the status line from the right but keeps the
// modified marker visible.
func (s *State) renderStatus(ops []screen.Op) []screen.Op {
	line, marker := s.statusParts()
	status := runewidth.Truncate(line, max(s.width-runewidth.StringWidth(marker), 0), "") + marker
	status = runewidth.FillRight(runewidth.Truncate(status, s.width, ""), s.width)
	return append(ops,
		screen.MoveTo(0, s.height-1),
		screen.SetStyle(screen.StyleStatus),
		screen.Print(status),
		screen.SetStyle(screen.StyleNormal),
	)
}

// StatusLine formats the status bar: viewport size, 1-based cursor row and
// column, 1-based top row and the line delimiter. A trailing "*" marks
// unsaved changes.
func (s *State) StatusLine() string {
	line, marker := s.statusParts()
	return line + marker
}

func (s *State) statusParts() (line, marker string) {
	p := s.content.Clamp(s.cursor.Pos)
	line = fmt.Sprintf("%dx%d | %d %d | %d | %s",
		s.view.Width, s.view.Height, p.Row+1, p.Col+1, s.view.Top+1, delimiterLabel(s.content.Delimiter()))
	if s.Modified() {
		marker = " *"
	}
	return line, marker
}

func delimiterLabel(delim string) string {
	switch delim {
	case buffer.CRLF:
		return "CRLF"
	case buffer.CR:
		return "CR"
	case buffer.LF:
		return "LF"
	default:
		return "?"
	}
}
