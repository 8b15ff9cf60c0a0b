package buffer

import "strings"

// Line delimiters recognized when splitting text into rows.
const (
	CRLF = "\r\n"
	LF   = "\n"
	CR   = "\r"
)

// DetectDelimiter picks the line delimiter of text: CRLF if present, else LF,
// else CR. Text without any delimiter defaults to LF.
func DetectDelimiter(text string) string {
	switch {
	case strings.Contains(text, CRLF):
		return CRLF
	case strings.Contains(text, LF):
		return LF
	case strings.Contains(text, CR):
		return CR
	default:
		return LF
	}
}

// SplitText splits text on its detected delimiter. The result always holds at
// least one line; a trailing delimiter yields a trailing empty line.
func SplitText(text string) (lines []string, delim string) {
	delim = DetectDelimiter(text)
	return strings.Split(text, delim), delim
}

// Content is the ordered sequence of rows of one document plus the line
// delimiter detected when it was loaded. It always holds at least one row.
type Content struct {
	rows  []Row
	delim string
}

// Parse detects the delimiter of text and splits it into rows.
func Parse(text string) *Content {
	lines, delim := SplitText(text)
	return NewContent(lines, delim)
}

// NewContent builds content from delimiter-free lines.
func NewContent(lines []string, delim string) *Content {
	if delim == "" {
		delim = LF
	}
	rows := make([]Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, NewRow(l))
	}
	if len(rows) == 0 {
		rows = append(rows, NewRow(""))
	}
	return &Content{rows: rows, delim: delim}
}

// Delimiter returns the line delimiter used when joining rows.
func (c *Content) Delimiter() string { return c.delim }

// Len returns the number of rows.
func (c *Content) Len() int { return len(c.rows) }

// Row returns row i. Out-of-range indexes are clamped.
func (c *Content) Row(i int) Row {
	return c.rows[clampInt(i, 0, len(c.rows)-1)]
}

// Rows returns rows [from, to), clamped to the document.
func (c *Content) Rows(from, to int) []Row {
	from = clampInt(from, 0, len(c.rows))
	to = clampInt(to, from, len(c.rows))
	return c.rows[from:to]
}

// Lines returns the text of every row.
func (c *Content) Lines() []string {
	out := make([]string, len(c.rows))
	for i, r := range c.rows {
		out[i] = r.String()
	}
	return out
}

// LineLen returns the cluster count of row.
func (c *Content) LineLen(row int) int { return c.Row(row).Len() }

// LineEnd returns the position just past the last cluster of row.
func (c *Content) LineEnd(row int) Pos {
	row = clampInt(row, 0, c.LastLineRow())
	return Pos{Row: row, Col: c.LineLen(row)}
}

func (c *Content) LastLineRow() int { return len(c.rows) - 1 }

func (c *Content) LastLineEnd() Pos { return c.LineEnd(c.LastLineRow()) }

// Clamp moves p into [0, LastLineRow()] x [0, LineLen(row)].
func (c *Content) Clamp(p Pos) Pos {
	row := clampInt(p.Row, 0, c.LastLineRow())
	return Pos{Row: row, Col: clampInt(p.Col, 0, c.LineLen(row))}
}

// Splice replaces rows [from, to) with rows. The document keeps at least one
// row.
func (c *Content) Splice(from, to int, rows []Row) {
	from = clampInt(from, 0, len(c.rows))
	to = clampInt(to, from, len(c.rows))

	out := make([]Row, 0, len(c.rows)-(to-from)+len(rows))
	out = append(out, c.rows[:from]...)
	out = append(out, rows...)
	out = append(out, c.rows[to:]...)
	if len(out) == 0 {
		out = append(out, NewRow(""))
	}
	c.rows = out
}

// Text joins all rows with the document delimiter.
func (c *Content) Text() string {
	return strings.Join(c.Lines(), c.delim)
}

// TextRange returns the text spanned by r joined with the document delimiter.
func (c *Content) TextRange(r Range) string {
	r = Range{Start: c.Clamp(r.Start), End: c.Clamp(r.End)}.Normalize()
	if r.IsEmpty() {
		return ""
	}
	return strings.Join(c.span(r.Start, r.End), c.delim)
}

// span captures the text of [from, to) as delimiter-free lines. from and to
// must be clamped and ordered.
func (c *Content) span(from, to Pos) []string {
	if from.Row == to.Row {
		return []string{c.rows[from.Row].Slice(from.Col, to.Col)}
	}

	lines := make([]string, 0, to.Row-from.Row+1)
	lines = append(lines, c.rows[from.Row].From(from.Col))
	for row := from.Row + 1; row < to.Row; row++ {
		lines = append(lines, c.rows[row].String())
	}
	lines = append(lines, c.rows[to.Row].To(to.Col))
	return lines
}
