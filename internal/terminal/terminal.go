package terminal

import (
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
)

// Terminal manages raw mode, the alternate screen buffer and terminal
// dimensions.
type Terminal struct {
	in        io.Reader
	inFd      int
	outFd     int
	out       io.Writer
	oldState  *term.State
	altScreen bool
	pending   []byte // Read but not yet decoded
}

// NewTerminal switches stdin to raw mode and enters the alternate screen.
// Callers must Restore on every exit path.
func NewTerminal() (*Terminal, error) {
	t := &Terminal{
		in:    os.Stdin,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
		out:   os.Stdout,
	}

	oldState, err := term.MakeRaw(t.inFd)
	if err != nil {
		return nil, err
	}
	t.oldState = oldState

	io.WriteString(t.out, enterAltScreen)
	t.altScreen = true
	return t, nil
}

// Size queries the current terminal dimensions as (columns, rows).
func (t *Terminal) Size() (int, int, error) {
	return term.GetSize(t.outFd)
}

// Restore leaves the alternate screen and returns the terminal to its
// original state. Safe to call twice.
func (t *Terminal) Restore() {
	if t.altScreen {
		io.WriteString(t.out, leaveAltScreen)
		t.altScreen = false
	}
	if t.oldState != nil {
		term.Restore(t.inFd, t.oldState)
		t.oldState = nil
	}
}

// ReadKey blocks for the next keypress. A single read may carry several keys
// (paste, key repeat, a slow link); they are returned one per call.
func (t *Terminal) ReadKey() (Key, error) {
	buf := make([]byte, 64)
	for {
		if len(t.pending) > 0 {
			if k, n := parseKey(t.pending); n > 0 {
				t.pending = t.pending[n:]
				return k, nil
			}
		}
		n, err := t.in.Read(buf)
		if err != nil {
			return Key{}, err
		}
		t.pending = append(t.pending, buf[:n]...)
	}
}

// Key types.
const (
	KeyRune      = iota // Normal printable character
	KeyEscape           // Escape key (standalone)
	KeyEnter            // Enter/Return
	KeyBackspace        // Backspace/Delete-backward
	KeyUp               // Arrow up
	KeyDown             // Arrow down
	KeyLeft             // Arrow left
	KeyRight            // Arrow right
	KeyUnknown          // Unrecognised sequence
)

// Key is one decoded key event. Release is set for key-up events; drivers
// that cannot observe releases never set it.
type Key struct {
	Type    int
	Rune    rune
	Release bool
}

// String names the key for logs.
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	}
	return "Unknown"
}

// parseKey decodes the first key in buf and reports how many bytes it used.
// It returns 0 bytes when buf ends inside a UTF-8 sequence and more input is
// needed.
func parseKey(buf []byte) (Key, int) {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}, 0
	}

	b := buf[0]
	switch {
	case b == 27:
		return parseEscape(buf)
	case b == 13 || b == 10:
		return Key{Type: KeyEnter}, 1
	case b == 127 || b == 8:
		return Key{Type: KeyBackspace}, 1
	case b < 32:
		return Key{Type: KeyUnknown}, 1
	case b < utf8.RuneSelf:
		return Key{Type: KeyRune, Rune: rune(b)}, 1
	}

	if !utf8.FullRune(buf) {
		return Key{Type: KeyUnknown}, 0
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return Key{Type: KeyUnknown}, size
	}
	return Key{Type: KeyRune, Rune: r}, size
}

// parseEscape decodes input starting with ESC. An ESC not followed by a CSI
// (ESC [) or SS3 (ESC O) introducer is a standalone Escape key.
func parseEscape(buf []byte) (Key, int) {
	if len(buf) < 3 || (buf[1] != '[' && buf[1] != 'O') {
		return Key{Type: KeyEscape}, 1
	}

	if buf[1] == 'O' {
		return Key{Type: arrow(buf[2])}, 3
	}

	// CSI: parameter and intermediate bytes, then one final byte in 0x40-0x7E.
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7E {
			if i == 2 {
				return Key{Type: arrow(buf[2])}, 3
			}
			return Key{Type: KeyUnknown}, i + 1
		}
		if buf[i] < 0x20 || buf[i] > 0x3F {
			// Malformed; drop the introducer only.
			return Key{Type: KeyUnknown}, 2
		}
	}
	return Key{Type: KeyUnknown}, len(buf)
}

func arrow(final byte) int {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyUnknown
}
