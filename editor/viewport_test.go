package editor

import "testing"

func TestViewport_ScrollIntoView(t *testing.T) {
	v := Viewport{Left: 10, Top: 5, Width: 20, Height: 10}

	cases := []struct {
		name string
		p    Point
		want Viewport
		ok   bool
	}{
		{name: "inside", p: Point{X: 15, Y: 8}, want: v, ok: false},
		{name: "top-left-edge", p: Point{X: 10, Y: 5}, want: v, ok: false},
		{name: "bottom-right-edge", p: Point{X: 29, Y: 14}, want: v, ok: false},
		{name: "above", p: Point{X: 15, Y: 2}, want: Viewport{Left: 10, Top: 2, Width: 20, Height: 10}, ok: true},
		{name: "below", p: Point{X: 15, Y: 15}, want: Viewport{Left: 10, Top: 6, Width: 20, Height: 10}, ok: true},
		{name: "left", p: Point{X: 3, Y: 8}, want: Viewport{Left: 3, Top: 5, Width: 20, Height: 10}, ok: true},
		{name: "right", p: Point{X: 30, Y: 8}, want: Viewport{Left: 11, Top: 5, Width: 20, Height: 10}, ok: true},
		{name: "both-axes", p: Point{X: 0, Y: 40}, want: Viewport{Left: 0, Top: 31, Width: 20, Height: 10}, ok: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := v.ScrollIntoView(tc.p)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ScrollIntoView(%v)=%+v,%v, want %+v,%v", tc.p, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestViewport_ScrollUpDown(t *testing.T) {
	v := Viewport{Top: 2, Width: 10, Height: 5}

	up, ok := v.ScrollUp(5)
	if !ok || up.Top != 0 {
		t.Fatalf("ScrollUp(5)=%+v,%v, want top 0", up, ok)
	}
	if _, ok := up.ScrollUp(1); ok {
		t.Fatalf("ScrollUp at top must be a no-op")
	}

	down, ok := v.ScrollDown(10, 7)
	if !ok || down.Top != 7 {
		t.Fatalf("ScrollDown(10)=%+v,%v, want top 7", down, ok)
	}
	if _, ok := down.ScrollDown(1, 7); ok {
		t.Fatalf("ScrollDown at last row must be a no-op")
	}

	// A document that shrank below the viewport pulls it back on ScrollTo.
	back, ok := Viewport{Top: 9}.ScrollTo(0, 9, 4)
	if !ok || back.Top != 4 {
		t.Fatalf("ScrollTo=%+v,%v, want top 4", back, ok)
	}
}

func TestViewport_Translation(t *testing.T) {
	v := Viewport{Left: 4, Top: 10, Width: 8, Height: 3}
	abs := Point{X: 6, Y: 11}

	rel := v.ToRelative(abs)
	if rel != (Point{X: 2, Y: 1}) {
		t.Fatalf("ToRelative=%v, want (2,1)", rel)
	}
	if got := v.ToAbsolute(rel); got != abs {
		t.Fatalf("ToAbsolute=%v, want %v", got, abs)
	}

	if !v.CursorWithin(abs) {
		t.Fatalf("expected %v within %+v", abs, v)
	}
	for _, p := range []Point{{X: 3, Y: 11}, {X: 12, Y: 11}, {X: 6, Y: 9}, {X: 6, Y: 13}} {
		if v.CursorWithin(p) {
			t.Fatalf("expected %v outside %+v", p, v)
		}
	}
}

func TestViewport_ResizeKeepsOrigin(t *testing.T) {
	v := Viewport{Left: 3, Top: 7, Width: 10, Height: 10}
	got, ok := v.Resize(5, 2)
	if !ok || got.Left != 3 || got.Top != 7 || got.Width != 5 || got.Height != 2 {
		t.Fatalf("Resize=%+v,%v", got, ok)
	}
	if _, ok := got.Resize(5, 2); ok {
		t.Fatalf("same size must be a no-op")
	}
}
