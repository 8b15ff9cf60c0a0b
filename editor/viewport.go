package editor

// Point is a document-space cell: X is a display column, Y a row.
type Point struct {
	X, Y int
}

// Viewport is the visible window onto the document. Left and Top are the
// document-space scroll origin; Width and Height the visible size in cells.
//
// Left and Top change only through ScrollIntoView and the explicit scroll
// methods, never on Resize.
type Viewport struct {
	Left, Top     int
	Width, Height int
}

// ScrollIntoView returns the viewport scrolled the minimal amount that makes
// p visible, and false when p is already visible.
func (v Viewport) ScrollIntoView(p Point) (Viewport, bool) {
	next := v
	next.Left = scrollAxis(p.X, v.Left, v.Width)
	next.Top = scrollAxis(p.Y, v.Top, v.Height)
	return next, next != v
}

func scrollAxis(pos, start, size int) int {
	switch {
	case size <= 0:
		return start
	case pos < start:
		return pos
	case pos >= start+size:
		return pos - size + 1
	default:
		return start
	}
}

// ScrollUp scrolls up by n rows, stopping at the first row.
func (v Viewport) ScrollUp(n int) (Viewport, bool) {
	return v.ScrollTo(v.Left, v.Top-min(n, v.Top), v.Top)
}

// ScrollDown scrolls down by n rows, never past lastRow.
func (v Viewport) ScrollDown(n, lastRow int) (Viewport, bool) {
	return v.ScrollTo(v.Left, v.Top+max(min(n, lastRow-v.Top), 0), lastRow)
}

// ScrollTo moves the origin to (left, top), clamping top to [0, lastRow].
func (v Viewport) ScrollTo(left, top, lastRow int) (Viewport, bool) {
	next := v
	next.Left = max(left, 0)
	next.Top = max(min(top, lastRow), 0)
	return next, next != v
}

// Resize changes the visible size and keeps the scroll origin.
func (v Viewport) Resize(width, height int) (Viewport, bool) {
	next := v
	next.Width, next.Height = max(width, 0), max(height, 0)
	return next, next != v
}

// ToRelative translates a document-space point into screen cells.
func (v Viewport) ToRelative(p Point) Point {
	return Point{X: p.X - v.Left, Y: p.Y - v.Top}
}

// ToAbsolute translates screen cells into a document-space point.
func (v Viewport) ToAbsolute(p Point) Point {
	return Point{X: p.X + v.Left, Y: p.Y + v.Top}
}

// CursorWithin reports whether p is inside the visible window.
func (v Viewport) CursorWithin(p Point) bool {
	return p.X >= v.Left && p.X < v.Left+v.Width &&
		p.Y >= v.Top && p.Y < v.Top+v.Height
}
