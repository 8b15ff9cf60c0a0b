package buffer

import (
	"fmt"
	"strings"
)

type EditKind int

const (
	EditInsert EditKind = iota
	EditDelete
	EditReplace
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	case EditReplace:
		return "replace"
	default:
		return fmt.Sprintf("EditKind(%d)", int(k))
	}
}

// EditOp describes one atomic document mutation together with the exact text
// it inserts or removes, so that it can be reversed without a snapshot.
//
// Lines holds the delimiter-free lines inserted (EditInsert, EditReplace) or
// removed (EditDelete). Deleted holds the removed lines of an EditReplace.
// An EditOp is never mutated after creation.
type EditOp struct {
	Kind    EditKind
	From    Pos
	Lines   []string
	Deleted []string
}

// Insert returns an op inserting text at from. Text is split into lines with
// the same delimiter detection used for documents.
func Insert(from Pos, text string) EditOp {
	lines, _ := SplitText(text)
	return EditOp{Kind: EditInsert, From: from, Lines: lines}
}

// Delete returns an op removing [from, to) from c. The endpoints are clamped
// and ordered before the spanned text is captured.
func Delete(c *Content, from, to Pos) EditOp {
	r := Range{Start: c.Clamp(from), End: c.Clamp(to)}.Normalize()
	return EditOp{Kind: EditDelete, From: r.Start, Lines: c.span(r.Start, r.End)}
}

// Replace returns an op removing [from, to) from c and inserting text in its
// place.
func Replace(c *Content, from, to Pos, text string) EditOp {
	del := Delete(c, from, to)
	ins := Insert(del.From, text)
	return EditOp{Kind: EditReplace, From: del.From, Lines: ins.Lines, Deleted: del.Lines}
}

// To returns the end of the text the op leaves behind (Insert, Replace) or
// removes (Delete).
func (op EditOp) To() Pos {
	return spanEnd(op.From, op.Lines)
}

func spanEnd(from Pos, lines []string) Pos {
	switch len(lines) {
	case 0:
		return from
	case 1:
		return Pos{Row: from.Row, Col: from.Col + NewRow(lines[0]).Len()}
	default:
		last := lines[len(lines)-1]
		return Pos{Row: from.Row + len(lines) - 1, Col: NewRow(last).Len()}
	}
}

// Inverse returns the op that undoes op.
func (op EditOp) Inverse() EditOp {
	switch op.Kind {
	case EditInsert:
		return EditOp{Kind: EditDelete, From: op.From, Lines: op.Lines}
	case EditDelete:
		return EditOp{Kind: EditInsert, From: op.From, Lines: op.Lines}
	default:
		return EditOp{Kind: EditReplace, From: op.From, Lines: op.Deleted, Deleted: op.Lines}
	}
}

// Process applies op to c and returns the resulting cursor position: the end
// of the inserted text for Insert and Replace, the start of the removed span
// for Delete.
func Process(c *Content, op EditOp) Pos {
	switch op.Kind {
	case EditInsert:
		return insertLines(c, op.From, op.Lines)
	case EditDelete:
		return deleteLines(c, op.From, op.Lines)
	default:
		from := deleteLines(c, op.From, op.Deleted)
		return insertLines(c, from, op.Lines)
	}
}

func insertLines(c *Content, from Pos, lines []string) Pos {
	from = c.Clamp(from)
	if len(lines) == 0 {
		return from
	}

	prefix, suffix := c.Row(from.Row).SplitAt(from.Col)
	rows := make([]Row, 0, len(lines))
	if len(lines) == 1 {
		rows = append(rows, NewRow(prefix.String()+lines[0]+suffix.String()))
	} else {
		rows = append(rows, NewRow(prefix.String()+lines[0]))
		for _, l := range lines[1 : len(lines)-1] {
			rows = append(rows, NewRow(l))
		}
		rows = append(rows, NewRow(lines[len(lines)-1]+suffix.String()))
	}
	c.Splice(from.Row, from.Row+1, rows)
	return spanEnd(from, lines)
}

// deleteLines removes the captured lines starting at from. The text is
// matched by bytes, so an op whose text merged with a neighbouring cluster
// still removes exactly what it inserted. When the document no longer holds
// the text at from, the equivalent cluster span is removed instead.
func deleteLines(c *Content, from Pos, lines []string) Pos {
	from = c.Clamp(from)
	last := from.Row + len(lines) - 1
	if len(lines) == 0 || last > c.LastLineRow() {
		return deleteSpan(c, from, spanEnd(from, lines))
	}

	start := c.Row(from.Row)
	off, ok := start.textAt(from.Col, lines[0], len(lines) > 1)
	if !ok {
		return deleteSpan(c, from, spanEnd(from, lines))
	}
	head, tail := start.text[:off], start.text[off+len(lines[0]):]
	if len(lines) > 1 {
		end, lastLine := c.Row(last).text, lines[len(lines)-1]
		if !strings.HasPrefix(end, lastLine) {
			return deleteSpan(c, from, spanEnd(from, lines))
		}
		tail = end[len(lastLine):]
	}
	c.Splice(from.Row, last+1, []Row{NewRow(head + tail)})
	return Pos{Row: from.Row, Col: NewRow(head).Len()}
}

func deleteSpan(c *Content, from, to Pos) Pos {
	r := Range{Start: c.Clamp(from), End: c.Clamp(to)}.Normalize()
	if r.IsEmpty() {
		return r.Start
	}

	prefix := c.Row(r.Start.Row).To(r.Start.Col)
	suffix := c.Row(r.End.Row).From(r.End.Col)
	c.Splice(r.Start.Row, r.End.Row+1, []Row{NewRow(prefix + suffix)})
	return r.Start
}
