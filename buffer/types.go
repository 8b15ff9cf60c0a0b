package buffer

import (
	"cmp"
	"fmt"
)

// Pos points into the document by (row, col). Col counts grapheme clusters,
// never bytes or terminal cells. Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Compare orders positions row first: -1 if p is before other, +1 if after.
func (p Pos) Compare(other Pos) int {
	if c := cmp.Compare(p.Row, other.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, other.Col)
}

// IsBefore reports whether p sorts strictly before other.
func (p Pos) IsBefore(other Pos) bool { return p.Compare(other) < 0 }

// Range is a half-open span [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// Normalize returns r with Start not after End.
func (r Range) Normalize() Range {
	if r.End.IsBefore(r.Start) {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// clampInt bounds v to [lo, hi]; lo wins when hi < lo.
func clampInt(v, lo, hi int) int {
	return max(min(v, hi), lo)
}
