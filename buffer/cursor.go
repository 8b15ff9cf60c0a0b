package buffer

import "github.com/iw2rmb/tedit/internal/grapheme"

// Cursor is a document position plus the display column remembered across a
// run of vertical moves.
//
// Cursors are values: every move returns a new Cursor and reports false when
// the position would not change. Vertical moves set Furthest; every other move
// clears it. Whether a move continues a vertical run is decided by the caller,
// which passes the previous Cursor through unchanged or with ResetColumn.
type Cursor struct {
	Pos

	Furthest    int
	HasFurthest bool
}

// NewCursor returns a cursor at p with no remembered column.
func NewCursor(p Pos) Cursor { return Cursor{Pos: p} }

// ResetColumn returns c without a remembered column.
func (c Cursor) ResetColumn() Cursor {
	c.Furthest, c.HasFurthest = 0, false
	return c
}

func (c Cursor) jump(content *Content, p Pos) (Cursor, bool) {
	from := content.Clamp(c.Pos)
	p = content.Clamp(p)
	if p == from {
		return c, false
	}
	return NewCursor(p), true
}

// MoveLeft moves one cluster left, wrapping to the end of the previous row.
func (c Cursor) MoveLeft(content *Content) (Cursor, bool) {
	p := content.Clamp(c.Pos)
	switch {
	case p.Col > 0:
		p.Col--
	case p.Row > 0:
		p = content.LineEnd(p.Row - 1)
	}
	return c.jump(content, p)
}

// MoveRight moves one cluster right, wrapping to the start of the next row.
func (c Cursor) MoveRight(content *Content) (Cursor, bool) {
	p := content.Clamp(c.Pos)
	switch {
	case p.Col < content.LineLen(p.Row):
		p.Col++
	case p.Row < content.LastLineRow():
		p = Pos{Row: p.Row + 1}
	}
	return c.jump(content, p)
}

// MoveUp moves up to n rows up, keeping the display column.
func (c Cursor) MoveUp(content *Content, n int) (Cursor, bool) {
	p := content.Clamp(c.Pos)
	return c.vertical(content, p, -min(n, p.Row))
}

// MoveDown moves up to n rows down, keeping the display column.
func (c Cursor) MoveDown(content *Content, n int) (Cursor, bool) {
	p := content.Clamp(c.Pos)
	return c.vertical(content, p, min(n, content.LastLineRow()-p.Row))
}

func (c Cursor) vertical(content *Content, p Pos, delta int) (Cursor, bool) {
	if delta == 0 {
		return c, false
	}

	col := content.Row(p.Row).MonoColAt(p.Col)
	if c.HasFurthest {
		col = c.Furthest
	}

	row := p.Row + delta
	target := content.Row(row)
	next := Cursor{
		Pos:         Pos{Row: row, Col: min(target.CharIdxAt(col), target.Len())},
		Furthest:    col,
		HasFurthest: true,
	}
	return next, true
}

// MoveLineStart jumps to column 0 of the current row.
func (c Cursor) MoveLineStart(content *Content) (Cursor, bool) {
	return c.jump(content, Pos{Row: c.Row})
}

// MoveLineEnd jumps past the last cluster of the current row.
func (c Cursor) MoveLineEnd(content *Content) (Cursor, bool) {
	return c.jump(content, content.LineEnd(c.Row))
}

// MoveWordLeft skips whitespace and then the word before the cursor. Row
// starts are hard boundaries.
func (c Cursor) MoveWordLeft(content *Content) (Cursor, bool) {
	p := content.Clamp(c.Pos)
	row := content.Row(p.Row)
	i := p.Col
	for i > 0 && grapheme.IsSpace(row.Cluster(i-1)) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(row.Cluster(i-1)) {
		i--
	}
	return c.jump(content, Pos{Row: p.Row, Col: i})
}

// MoveWordRight skips whitespace and then the word after the cursor. Row
// ends are hard boundaries.
func (c Cursor) MoveWordRight(content *Content) (Cursor, bool) {
	p := content.Clamp(c.Pos)
	row := content.Row(p.Row)
	i := p.Col
	for i < row.Len() && grapheme.IsSpace(row.Cluster(i)) {
		i++
	}
	for i < row.Len() && !grapheme.IsSpace(row.Cluster(i)) {
		i++
	}
	return c.jump(content, Pos{Row: p.Row, Col: i})
}

func (c Cursor) MoveDocumentStart(content *Content) (Cursor, bool) {
	return c.jump(content, Pos{})
}

func (c Cursor) MoveDocumentEnd(content *Content) (Cursor, bool) {
	return c.jump(content, content.LastLineEnd())
}

// MoveTo jumps to p clamped into the document.
func (c Cursor) MoveTo(content *Content, p Pos) (Cursor, bool) {
	return c.jump(content, p)
}

// Click jumps to the cluster at display column col of row, both clamped into
// the document.
func (c Cursor) Click(content *Content, row, col int) (Cursor, bool) {
	row = clampInt(row, 0, content.LastLineRow())
	return c.jump(content, Pos{Row: row, Col: content.Row(row).CharIdxAt(col)})
}
