package input

import (
	"reflect"
	"testing"
)

func decodeAll(t *testing.T, d *Decoder, chunks ...string) []Event {
	t.Helper()

	var out []Event
	for _, c := range chunks {
		d.Feed([]byte(c))
		for {
			ev, ok := d.Next()
			if !ok {
				break
			}
			out = append(out, ev)
		}
	}
	return out
}

func TestDecoder_Keys(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Event
	}{
		{name: "lone-esc", in: "\x1b", want: KeyEvent{Code: KeyEsc}},
		{name: "del", in: "\x7f", want: KeyEvent{Code: KeyBackspace}},
		{name: "bs", in: "\x08", want: KeyEvent{Code: KeyBackspace}},
		{name: "tab", in: "\t", want: KeyEvent{Code: KeyTab}},
		{name: "cr", in: "\r", want: KeyEvent{Code: KeyEnter}},
		{name: "lf", in: "\n", want: KeyEvent{Code: KeyEnter}},
		{name: "ascii", in: "a", want: KeyEvent{Code: KeyRune, Rune: 'a'}},
		{name: "utf8", in: "界", want: KeyEvent{Code: KeyRune, Rune: '界'}},
		{name: "ctrl-c", in: "\x03", want: KeyEvent{Code: KeyRune, Rune: 'c', Mod: ModCtrl}},
		{name: "ctrl-space", in: "\x00", want: KeyEvent{Code: KeyRune, Rune: ' ', Mod: ModCtrl}},
		{name: "alt-x", in: "\x1bx", want: KeyEvent{Code: KeyRune, Rune: 'x', Mod: ModAlt}},
		{name: "up", in: "\x1b[A", want: KeyEvent{Code: KeyUp}},
		{name: "down", in: "\x1b[B", want: KeyEvent{Code: KeyDown}},
		{name: "right", in: "\x1b[C", want: KeyEvent{Code: KeyRight}},
		{name: "left", in: "\x1b[D", want: KeyEvent{Code: KeyLeft}},
		{name: "home", in: "\x1b[H", want: KeyEvent{Code: KeyHome}},
		{name: "end", in: "\x1b[F", want: KeyEvent{Code: KeyEnd}},
		{name: "shift-left", in: "\x1b[1;2D", want: KeyEvent{Code: KeyLeft, Mod: ModShift}},
		{name: "alt-up", in: "\x1b[1;3A", want: KeyEvent{Code: KeyUp, Mod: ModAlt}},
		{name: "ctrl-up", in: "\x1b[1;5A", want: KeyEvent{Code: KeyUp, Mod: ModCtrl}},
		{name: "ctrl-shift-end", in: "\x1b[1;6F", want: KeyEvent{Code: KeyEnd, Mod: ModCtrl | ModShift}},
		{name: "ss3-up", in: "\x1bOA", want: KeyEvent{Code: KeyUp}},
		{name: "insert", in: "\x1b[2~", want: KeyEvent{Code: KeyInsert}},
		{name: "delete", in: "\x1b[3~", want: KeyEvent{Code: KeyDelete}},
		{name: "shift-delete", in: "\x1b[3;2~", want: KeyEvent{Code: KeyDelete, Mod: ModShift}},
		{name: "pgup", in: "\x1b[5~", want: KeyEvent{Code: KeyPageUp}},
		{name: "pgdown", in: "\x1b[6~", want: KeyEvent{Code: KeyPageDown}},
		{name: "home-tilde", in: "\x1b[1~", want: KeyEvent{Code: KeyHome}},
		{name: "end-tilde", in: "\x1b[8~", want: KeyEvent{Code: KeyEnd}},
		{name: "backtab", in: "\x1b[Z", want: KeyEvent{Code: KeyTab, Mod: ModShift}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := decodeAll(t, NewDecoder(), tc.in)
			if len(got) != 1 || !reflect.DeepEqual(got[0], tc.want) {
				t.Fatalf("decode(%q)=%#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecoder_Mouse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want MouseEvent
	}{
		{name: "left-press", in: "\x1b[<0;10;5M", want: MouseEvent{Button: ButtonLeft, Action: MousePress, X: 9, Y: 4}},
		{name: "left-release", in: "\x1b[<0;10;5m", want: MouseEvent{Button: ButtonLeft, Action: MouseRelease, X: 9, Y: 4}},
		{name: "right-press", in: "\x1b[<2;1;1M", want: MouseEvent{Button: ButtonRight, Action: MousePress}},
		{name: "drag", in: "\x1b[<32;3;4M", want: MouseEvent{Button: ButtonLeft, Action: MouseDrag, X: 2, Y: 3}},
		{name: "shift-click", in: "\x1b[<4;3;4M", want: MouseEvent{Button: ButtonLeft, Action: MousePress, X: 2, Y: 3, Mod: ModShift}},
		{name: "wheel-up", in: "\x1b[<64;7;8M", want: MouseEvent{Kind: MouseWheelUp, X: 6, Y: 7}},
		{name: "wheel-down", in: "\x1b[<65;7;8M", want: MouseEvent{Kind: MouseWheelDown, X: 6, Y: 7}},
		{name: "wheel-zero-coords", in: "\x1b[<65;0;0M", want: MouseEvent{Kind: MouseWheelDown}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := decodeAll(t, NewDecoder(), tc.in)
			if len(got) != 1 || !reflect.DeepEqual(got[0], tc.want) {
				t.Fatalf("decode(%q)=%#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecoder_BracketedPasteAcrossReads(t *testing.T) {
	d := NewDecoder()

	got := decodeAll(t, d, "\x1b[200~", "Hello, ", "world!\x1b[201~")
	want := []Event{PasteEvent{Text: "Hello, world!"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events=%#v, want %#v", got, want)
	}
	if d.Pasting() || d.Buffered() != 0 {
		t.Fatalf("decoder must be idle after paste: pasting=%v buffered=%d", d.Pasting(), d.Buffered())
	}
}

func TestDecoder_PasteKeepsControlBytes(t *testing.T) {
	got := decodeAll(t, NewDecoder(), "\x1b[200~a\r\n\x1b[Ab\x1b[20", "1~x")
	want := []Event{
		PasteEvent{Text: "a\r\n\x1b[Ab"},
		KeyEvent{Code: KeyRune, Rune: 'x'},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events=%#v, want %#v", got, want)
	}
}

func TestDecoder_PartialSequencesStayBuffered(t *testing.T) {
	d := NewDecoder()

	if got := decodeAll(t, d, "\x1b[1;"); len(got) != 0 {
		t.Fatalf("partial CSI decoded early: %#v", got)
	}
	got := decodeAll(t, d, "5C")
	if want := (KeyEvent{Code: KeyRight, Mod: ModCtrl}); len(got) != 1 || got[0] != want {
		t.Fatalf("events=%#v, want %#v", got, want)
	}

	utf := []byte("界")
	if got := decodeAll(t, d, string(utf[:1])); len(got) != 0 {
		t.Fatalf("partial UTF-8 decoded early: %#v", got)
	}
	got = decodeAll(t, d, string(utf[1:]))
	if want := (KeyEvent{Code: KeyRune, Rune: '界'}); len(got) != 1 || got[0] != want {
		t.Fatalf("events=%#v, want %#v", got, want)
	}
}

func TestDecoder_DiscardsUnknownSequences(t *testing.T) {
	d := NewDecoder()
	var dropped []string
	d.OnDiscard = func(seq []byte) { dropped = append(dropped, string(seq)) }

	got := decodeAll(t, d, "\x1b[99~a\x1b[5Xb\x1bOzc\x1b[201~\xffd")
	want := []Event{
		KeyEvent{Code: KeyRune, Rune: 'a'},
		KeyEvent{Code: KeyRune, Rune: 'b'},
		KeyEvent{Code: KeyRune, Rune: 'c'},
		KeyEvent{Code: KeyRune, Rune: 'd'},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events=%#v, want %#v", got, want)
	}
	wantDropped := []string{"\x1b[99~", "\x1b[5X", "\x1bOz", "\x1b[201~", "\xff"}
	if !reflect.DeepEqual(dropped, wantDropped) {
		t.Fatalf("dropped=%q, want %q", dropped, wantDropped)
	}
}

func TestDecoder_ButtonNeedsCoordinates(t *testing.T) {
	d := NewDecoder()
	var dropped []string
	d.OnDiscard = func(seq []byte) { dropped = append(dropped, string(seq)) }

	if got := decodeAll(t, d, "\x1b[<0;0;5M"); len(got) != 0 {
		t.Fatalf("events=%#v, want none", got)
	}
	if len(dropped) != 1 {
		t.Fatalf("dropped=%q, want one sequence", dropped)
	}
}

func TestDecoder_MultipleEventsInOneRead(t *testing.T) {
	got := decodeAll(t, NewDecoder(), "ab\x1b[A\r")
	want := []Event{
		KeyEvent{Code: KeyRune, Rune: 'a'},
		KeyEvent{Code: KeyRune, Rune: 'b'},
		KeyEvent{Code: KeyUp},
		KeyEvent{Code: KeyEnter},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events=%#v, want %#v", got, want)
	}
}

func TestKeyEvent_String(t *testing.T) {
	cases := []struct {
		ev   KeyEvent
		want string
	}{
		{ev: KeyEvent{Code: KeyRune, Rune: 'a'}, want: "a"},
		{ev: KeyEvent{Code: KeyRune, Rune: 'c', Mod: ModCtrl}, want: "ctrl+c"},
		{ev: KeyEvent{Code: KeyRune, Rune: ' ', Mod: ModCtrl}, want: "ctrl+space"},
		{ev: KeyEvent{Code: KeyLeft, Mod: ModShift}, want: "shift+left"},
		{ev: KeyEvent{Code: KeyUp, Mod: ModCtrl | ModAlt | ModShift}, want: "ctrl+alt+shift+up"},
		{ev: KeyEvent{Code: KeyPageDown}, want: "pgdown"},
		{ev: KeyEvent{Code: KeyEsc}, want: "esc"},
	}
	for _, tc := range cases {
		if got := tc.ev.String(); got != tc.want {
			t.Fatalf("String()=%q, want %q", got, tc.want)
		}
	}
}

func TestKeyEvent_Printable(t *testing.T) {
	if !(KeyEvent{Code: KeyRune, Rune: 'x'}).Printable() {
		t.Fatalf("plain rune must be printable")
	}
	if (KeyEvent{Code: KeyRune, Rune: 'x', Mod: ModCtrl}).Printable() {
		t.Fatalf("ctrl+x must not be printable")
	}
	if !(KeyEvent{Code: KeyRune, Rune: 'X', Mod: ModShift}).Printable() {
		t.Fatalf("shift+X must be printable")
	}
	if (KeyEvent{Code: KeyEnter}).Printable() {
		t.Fatalf("enter must not be printable")
	}
}
