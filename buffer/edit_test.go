package buffer

import "testing"

func TestInsert_MultiLine(t *testing.T) {
	c := NewContent([]string{"Hello", "World"}, LF)

	op := Insert(Pos{Row: 0, Col: 5}, ",\nBig")
	if got, want := op.To(), (Pos{Row: 1, Col: 3}); got != want {
		t.Fatalf("To()=%v, want %v", got, want)
	}

	end := Process(c, op)
	assertLines(t, c, "Hello,", "Big", "World")
	if want := (Pos{Row: 1, Col: 3}); end != want {
		t.Fatalf("Process end=%v, want %v", end, want)
	}
}

func TestInsert_SplitsOnDetectedDelimiter(t *testing.T) {
	op := Insert(Pos{}, "a\r\nb\r\nc")
	if got := len(op.Lines); got != 3 {
		t.Fatalf("lines=%q, want 3 lines", op.Lines)
	}

	c := NewContent([]string{"xy"}, LF)
	end := Process(c, Insert(Pos{Row: 0, Col: 1}, "1\n2\n"))
	assertLines(t, c, "x1", "2", "y")
	if want := (Pos{Row: 2, Col: 0}); end != want {
		t.Fatalf("end=%v, want %v", end, want)
	}
}

func TestDelete_AcrossLines(t *testing.T) {
	c := NewContent([]string{"Hello", "Amazing", "World"}, LF)

	op := Delete(c, Pos{Row: 0, Col: 3}, Pos{Row: 2, Col: 3})
	want := []string{"lo", "Amazing", "Wor"}
	if len(op.Lines) != len(want) {
		t.Fatalf("captured=%q, want %q", op.Lines, want)
	}
	for i := range want {
		if op.Lines[i] != want[i] {
			t.Fatalf("captured=%q, want %q", op.Lines, want)
		}
	}

	end := Process(c, op)
	assertLines(t, c, "Helld")
	if want := (Pos{Row: 0, Col: 3}); end != want {
		t.Fatalf("end=%v, want %v", end, want)
	}
}

func TestDelete_OrdersAndClampsEndpoints(t *testing.T) {
	c := NewContent([]string{"abc", "de"}, LF)

	op := Delete(c, Pos{Row: 7, Col: 7}, Pos{Row: 0, Col: 2})
	if got, want := op.From, (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("From=%v, want %v", got, want)
	}
	if got, want := op.To(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("To()=%v, want %v", got, want)
	}
	Process(c, op)
	assertLines(t, c, "ab")
}

func TestDelete_RespectsClusters(t *testing.T) {
	c := NewContent([]string{"a" + family + "b"}, LF)
	Process(c, Delete(c, Pos{Row: 0, Col: 1}, Pos{Row: 0, Col: 2}))
	assertLines(t, c, "ab")
}

func TestReplace_UndoRestoresSelection(t *testing.T) {
	c := NewContent([]string{"Hello Kitty"}, LF)

	op := Replace(c, Pos{Row: 0, Col: 2}, Pos{Row: 0, Col: 10}, "i")
	if got, want := op.Deleted, []string{"llo Kitt"}; len(got) != 1 || got[0] != want[0] {
		t.Fatalf("Deleted=%q, want %q", got, want)
	}

	end := Process(c, op)
	assertLines(t, c, "Heiy")
	if want := (Pos{Row: 0, Col: 3}); end != want {
		t.Fatalf("end=%v, want %v", end, want)
	}

	Process(c, op.Inverse())
	assertLines(t, c, "Hello Kitty")
}

func TestEditOp_Inverse(t *testing.T) {
	from := Pos{Row: 1, Col: 2}
	ins := EditOp{Kind: EditInsert, From: from, Lines: []string{"x"}}
	if inv := ins.Inverse(); inv.Kind != EditDelete || inv.From != from || inv.Lines[0] != "x" {
		t.Fatalf("Insert.Inverse()=%+v", inv)
	}
	if back := ins.Inverse().Inverse(); back.Kind != EditInsert {
		t.Fatalf("double inverse kind=%v, want insert", back.Kind)
	}

	rep := EditOp{Kind: EditReplace, From: from, Lines: []string{"new"}, Deleted: []string{"old", ""}}
	inv := rep.Inverse()
	if inv.Kind != EditReplace || inv.Lines[0] != "old" || inv.Deleted[0] != "new" {
		t.Fatalf("Replace.Inverse()=%+v", inv)
	}
	if got, want := inv.To(), (Pos{Row: 2, Col: 0}); got != want {
		t.Fatalf("inverse To()=%v, want %v", got, want)
	}
}

func TestProcess_InverseRoundTrip(t *testing.T) {
	base := []string{"Hello", "Amazing", "界é world", "", "tab\there"}

	ops := []struct {
		name string
		op   func(c *Content) EditOp
	}{
		{name: "insert-single", op: func(*Content) EditOp { return Insert(Pos{Row: 2, Col: 1}, "xyz") }},
		{name: "insert-multi", op: func(*Content) EditOp { return Insert(Pos{Row: 0, Col: 2}, "a\nb\nc") }},
		{name: "insert-newline-at-end", op: func(c *Content) EditOp { return Insert(c.LastLineEnd(), "\n") }},
		{name: "insert-empty", op: func(*Content) EditOp { return Insert(Pos{Row: 1, Col: 3}, "") }},
		{name: "delete-in-row", op: func(c *Content) EditOp { return Delete(c, Pos{Row: 2, Col: 0}, Pos{Row: 2, Col: 2}) }},
		{name: "delete-join", op: func(c *Content) EditOp { return Delete(c, Pos{Row: 0, Col: 5}, Pos{Row: 1, Col: 0}) }},
		{name: "delete-all", op: func(c *Content) EditOp { return Delete(c, Pos{}, c.LastLineEnd()) }},
		{name: "replace-multi", op: func(c *Content) EditOp {
			return Replace(c, Pos{Row: 1, Col: 3}, Pos{Row: 3, Col: 0}, "one\ntwo")
		}},
		{name: "replace-with-empty", op: func(c *Content) EditOp { return Replace(c, Pos{Row: 4, Col: 0}, Pos{Row: 4, Col: 3}, "") }},
	}

	for _, tc := range ops {
		t.Run(tc.name, func(t *testing.T) {
			c := NewContent(base, LF)
			op := tc.op(c)
			Process(c, op)
			Process(c, op.Inverse())
			assertLines(t, c, base...)

			// Reapplying after the round trip lands on the same end position.
			if got, want := Process(c, op), processedEnd(op); got != want {
				t.Fatalf("redo end=%v, want %v", got, want)
			}
		})
	}
}

func TestProcess_InverseRoundTripMergedClusters(t *testing.T) {
	cases := []struct {
		name  string
		base  []string
		op    func(c *Content) EditOp
		after string
	}{
		{
			name:  "mark-joins-previous",
			base:  []string{"ex"},
			op:    func(*Content) EditOp { return Insert(Pos{Row: 0, Col: 1}, "\u0301") },
			after: "e\u0301x",
		},
		{
			name:  "base-absorbs-mark",
			base:  []string{"\u0301x"},
			op:    func(*Content) EditOp { return Insert(Pos{Row: 0, Col: 0}, "e") },
			after: "e\u0301x",
		},
		{
			name:  "multi-line-mark",
			base:  []string{"ab", "cd"},
			op:    func(*Content) EditOp { return Insert(Pos{Row: 0, Col: 1}, "\u0301\n\u0301") },
			after: "a\u0301",
		},
		{
			name:  "replace-with-mark",
			base:  []string{"abc"},
			op:    func(c *Content) EditOp { return Replace(c, Pos{Row: 0, Col: 1}, Pos{Row: 0, Col: 2}, "\u0308") },
			after: "a\u0308c",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewContent(tc.base, LF)
			op := tc.op(c)
			Process(c, op)
			if got := c.Row(0).String(); got != tc.after {
				t.Fatalf("after=%q, want %q", got, tc.after)
			}
			Process(c, op.Inverse())
			assertLines(t, c, tc.base...)
		})
	}
}

func TestProcess_DeleteFallsBackToClusterSpan(t *testing.T) {
	c := NewContent([]string{"hello"}, LF)
	// The captured text is gone; the same cluster span is removed.
	Process(c, EditOp{Kind: EditDelete, From: Pos{Row: 0, Col: 1}, Lines: []string{"zz"}})
	assertLines(t, c, "hlo")
}

func processedEnd(op EditOp) Pos {
	if op.Kind == EditDelete {
		return op.From
	}
	return op.To()
}

func TestEditKind_String(t *testing.T) {
	if got := EditReplace.String(); got != "replace" {
		t.Fatalf("String()=%q", got)
	}
	if got := EditKind(9).String(); got != "EditKind(9)" {
		t.Fatalf("String()=%q", got)
	}
}
