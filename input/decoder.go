package input

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"
)

const esc = 0x1b

var (
	pasteStart = []byte("\x1b[200~")
	pasteEnd   = []byte("\x1b[201~")
)

// Decoder turns a stream of raw terminal input bytes into Events.
//
// Bytes are fed in arbitrary chunks. Incomplete escape sequences, incomplete
// UTF-8 and bracketed paste without its end marker stay buffered until more
// bytes arrive. Sequences that cannot be decoded are dropped and reported to
// OnDiscard, if set.
type Decoder struct {
	buf     []byte
	pasting bool

	OnDiscard func(seq []byte)
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends raw input bytes.
func (d *Decoder) Feed(p []byte) {
	d.buf = append(d.buf, p...)
}

// Buffered returns the number of bytes not yet decoded.
func (d *Decoder) Buffered() int { return len(d.buf) }

// Pasting reports whether a bracketed paste has started but not ended.
func (d *Decoder) Pasting() bool { return d.pasting }

// Next decodes the next complete event. It returns false when the buffered
// bytes do not yet hold one.
func (d *Decoder) Next() (Event, bool) {
	for {
		if d.pasting {
			i := bytes.Index(d.buf, pasteEnd)
			if i < 0 {
				return nil, false
			}
			text := string(d.buf[:i])
			d.consume(i + len(pasteEnd))
			d.pasting = false
			return PasteEvent{Text: text}, true
		}
		if len(d.buf) == 0 {
			return nil, false
		}

		ev, n, st := d.decode(d.buf)
		switch st {
		case stIncomplete:
			return nil, false
		case stDiscard:
			d.discard(n)
			continue
		case stPasteStart:
			d.consume(n)
			d.pasting = true
			continue
		}
		d.consume(n)
		return ev, true
	}
}

type status uint8

const (
	stOK status = iota
	stIncomplete
	stDiscard
	stPasteStart
)

func (d *Decoder) consume(n int) {
	d.buf = append(d.buf[:0], d.buf[n:]...)
}

func (d *Decoder) discard(n int) {
	if d.OnDiscard != nil {
		d.OnDiscard(append([]byte(nil), d.buf[:n]...))
	}
	d.consume(n)
}

func (d *Decoder) decode(b []byte) (Event, int, status) {
	if b[0] != esc {
		return decodePlain(b)
	}
	if len(b) == 1 {
		return KeyEvent{Code: KeyEsc}, 1, stOK
	}

	switch b[1] {
	case '[':
		return decodeCSI(b)
	case 'O':
		return decodeSS3(b)
	case esc:
		return KeyEvent{Code: KeyEsc}, 1, stOK
	}

	ev, n, st := decodePlain(b[1:])
	if st != stOK {
		return ev, n + 1, st
	}
	k := ev.(KeyEvent)
	k.Mod |= ModAlt
	return k, n + 1, stOK
}

// decodePlain decodes one key that does not start with ESC.
func decodePlain(b []byte) (Event, int, status) {
	c := b[0]
	switch {
	case c == 0x7f || c == 0x08:
		return KeyEvent{Code: KeyBackspace}, 1, stOK
	case c == '\t':
		return KeyEvent{Code: KeyTab}, 1, stOK
	case c == '\r' || c == '\n':
		return KeyEvent{Code: KeyEnter}, 1, stOK
	case c == 0:
		return KeyEvent{Code: KeyRune, Rune: ' ', Mod: ModCtrl}, 1, stOK
	case c < 0x1b:
		return KeyEvent{Code: KeyRune, Rune: rune('a' + c - 1), Mod: ModCtrl}, 1, stOK
	case c < 0x20:
		return KeyEvent{Code: KeyRune, Rune: rune('\\' + c - 0x1c), Mod: ModCtrl}, 1, stOK
	}

	if !utf8.FullRune(b) {
		return nil, 0, stIncomplete
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return nil, 1, stDiscard
	}
	return KeyEvent{Code: KeyRune, Rune: r}, size, stOK
}

// decodeCSI decodes "ESC [ params intermediates final".
func decodeCSI(b []byte) (Event, int, status) {
	i := 2
	for i < len(b) && b[i] >= 0x30 && b[i] <= 0x3f {
		i++
	}
	for i < len(b) && b[i] >= 0x20 && b[i] <= 0x2f {
		i++
	}
	if i == len(b) {
		return nil, 0, stIncomplete
	}
	final := b[i]
	if final < 0x40 || final > 0x7e {
		// Not a CSI sequence; drop what was read and resume at the stray byte.
		return nil, i, stDiscard
	}
	n := i + 1
	params := string(b[2:i])

	if strings.HasPrefix(params, "<") && (final == 'M' || final == 'm') {
		ev, ok := decodeSGRMouse(params[1:], final == 'm')
		if !ok {
			return nil, n, stDiscard
		}
		return ev, n, stOK
	}

	switch final {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		fields := strings.Split(params, ";")
		mod := ModNone
		if len(fields) == 2 {
			m, ok := decodeModifier(fields[1])
			if !ok {
				return nil, n, stDiscard
			}
			mod = m
		} else if len(fields) > 2 || (params != "" && params != "1") {
			return nil, n, stDiscard
		}
		return KeyEvent{Code: cursorKeys[final], Mod: mod}, n, stOK
	case 'Z':
		if params != "" {
			return nil, n, stDiscard
		}
		return KeyEvent{Code: KeyTab, Mod: ModShift}, n, stOK
	case '~':
		return decodeTilde(params, n)
	}
	return nil, n, stDiscard
}

var cursorKeys = map[byte]KeyCode{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

var tildeKeys = map[int]KeyCode{
	1: KeyHome,
	2: KeyInsert,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

func decodeTilde(params string, n int) (Event, int, status) {
	fields := strings.Split(params, ";")
	if len(fields) > 2 {
		return nil, n, stDiscard
	}
	code, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, n, stDiscard
	}
	if code == 200 && len(fields) == 1 {
		return nil, n, stPasteStart
	}

	key, ok := tildeKeys[code]
	if !ok {
		return nil, n, stDiscard
	}
	mod := ModNone
	if len(fields) == 2 {
		if mod, ok = decodeModifier(fields[1]); !ok {
			return nil, n, stDiscard
		}
	}
	return KeyEvent{Code: key, Mod: mod}, n, stOK
}

// decodeModifier decodes the xterm modifier parameter, which is the bitmask
// plus one.
func decodeModifier(s string) (Modifier, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return ModNone, false
	}
	return Modifier(v-1) & (ModShift | ModAlt | ModCtrl), true
}

// decodeSS3 decodes "ESC O final", sent for cursor keys in application mode.
func decodeSS3(b []byte) (Event, int, status) {
	if len(b) < 3 {
		return nil, 0, stIncomplete
	}
	key, ok := cursorKeys[b[2]]
	if !ok {
		return nil, 3, stDiscard
	}
	return KeyEvent{Code: key}, 3, stOK
}

// decodeSGRMouse decodes the "button;x;y" parameters of an SGR mouse report.
func decodeSGRMouse(params string, release bool) (Event, bool) {
	fields := strings.Split(params, ";")
	if len(fields) != 3 {
		return nil, false
	}
	var v [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, false
		}
		v[i] = n
	}
	cb, x, y := v[0], v[1]-1, v[2]-1

	// Wheel reports carry no meaningful position.
	ev := MouseEvent{X: max(x, 0), Y: max(y, 0)}
	if cb&4 != 0 {
		ev.Mod |= ModShift
	}
	if cb&8 != 0 {
		ev.Mod |= ModAlt
	}
	if cb&16 != 0 {
		ev.Mod |= ModCtrl
	}

	if cb&64 != 0 {
		switch cb & 3 {
		case 0:
			ev.Kind = MouseWheelUp
		case 1:
			ev.Kind = MouseWheelDown
		default:
			return nil, false
		}
		return ev, true
	}

	if x < 0 || y < 0 {
		return nil, false
	}
	switch cb & 3 {
	case 0:
		ev.Button = ButtonLeft
	case 1:
		ev.Button = ButtonMiddle
	case 2:
		ev.Button = ButtonRight
	default:
		return nil, false
	}
	switch {
	case release:
		ev.Action = MouseRelease
	case cb&32 != 0:
		ev.Action = MouseDrag
	default:
		ev.Action = MousePress
	}
	return ev, true
}
