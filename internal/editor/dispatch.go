package editor

import (
	"github.com/JackWReid/modal/internal/log"
	"github.com/JackWReid/modal/internal/terminal"
)

// handler applies one key to the editor. It returns true when the session
// should end.
type handler func(e *Editor, key terminal.Key) bool

// keymap is the transition table for one mode. Rune keys are looked up in
// runes first and fall back to anyRune; other key types use keys. Keys with
// no entry are no-ops.
type keymap struct {
	runes   map[rune]handler
	anyRune handler
	keys    map[int]handler
}

var navigation = map[int]handler{
	terminal.KeyLeft:  moveLeft,
	terminal.KeyRight: moveRight,
	terminal.KeyUp:    moveUp,
	terminal.KeyDown:  moveDown,
}

var transitions = map[Mode]keymap{
	ModeCommand: {
		runes: map[rune]handler{
			'i': switchTo(ModeInsert),
			'q': quit,
		},
		keys: withNavigation(map[int]handler{
			terminal.KeyEscape: quit,
		}),
	},
	ModeInsert: {
		anyRune: insertRune,
		keys: withNavigation(map[int]handler{
			terminal.KeyEscape:    switchTo(ModeCommand),
			terminal.KeyEnter:     splitLine,
			terminal.KeyBackspace: backspace,
		}),
	},
}

func withNavigation(keys map[int]handler) map[int]handler {
	for k, h := range navigation {
		keys[k] = h
	}
	return keys
}

// lookup returns the handler for key in mode m, or nil for a no-op.
func lookup(m Mode, key terminal.Key) handler {
	km, ok := transitions[m]
	if !ok {
		return nil
	}
	if key.Type == terminal.KeyRune {
		if h, ok := km.runes[key.Rune]; ok {
			return h
		}
		return km.anyRune
	}
	return km.keys[key.Type]
}

// Dispatch applies key to the editor state according to the current mode.
// Release events are ignored. Returns true when the key ends the session.
func (e *Editor) Dispatch(key terminal.Key) bool {
	if key.Release {
		return false
	}
	h := lookup(e.mode, key)
	if h == nil {
		log.Debug("key ignored", "key", key.String(), "mode", e.mode.String())
		return false
	}
	log.Debug("dispatch", "key", key.String(), "mode", e.mode.String())
	return h(e, key)
}

func quit(e *Editor, _ terminal.Key) bool {
	return true
}

func switchTo(m Mode) handler {
	return func(e *Editor, _ terminal.Key) bool {
		log.Debug("mode change", "from", e.mode.String(), "to", m.String())
		e.mode = m
		return false
	}
}

// insertRune inserts the key's character at the cursor and advances the cursor.
func insertRune(e *Editor, key terminal.Key) bool {
	e.buf.InsertChar(e.cursor.Line, e.cursor.Col, key.Rune)
	e.cursor.Col++
	return false
}

// splitLine breaks the current line at the cursor.
func splitLine(e *Editor, _ terminal.Key) bool {
	e.buf.SplitLine(e.cursor.Line, e.cursor.Col)
	e.cursor.Line++
	e.cursor.Col = 0
	return false
}

// backspace deletes the character before the cursor, or joins the current
// line onto the previous one at column 0.
func backspace(e *Editor, _ terminal.Key) bool {
	switch {
	case e.cursor.Col > 0:
		e.buf.DeleteChar(e.cursor.Line, e.cursor.Col)
		e.cursor.Col--
	case e.cursor.Line > 0:
		e.cursor.Col = e.buf.JoinWithPrevious(e.cursor.Line)
		e.cursor.Line--
	}
	return false
}

func moveLeft(e *Editor, _ terminal.Key) bool {
	e.cursor.MoveLeft(e.buf)
	return false
}

func moveRight(e *Editor, _ terminal.Key) bool {
	e.cursor.MoveRight(e.buf)
	return false
}

func moveUp(e *Editor, _ terminal.Key) bool {
	e.cursor.MoveUp(e.buf)
	return false
}

func moveDown(e *Editor, _ terminal.Key) bool {
	e.cursor.MoveDown(e.buf)
	return false
}
