package editor

import (
	"fmt"

	"github.com/JackWReid/modal/internal/log"
	"github.com/JackWReid/modal/internal/terminal"
)

// Driver is the key source and size oracle of a terminal.
type Driver interface {
	ReadKey() (terminal.Key, error)
	Size() (cols, rows int, err error)
}

// Editor is the session state: one buffer, one cursor, one viewport, one mode.
type Editor struct {
	buf      *Buffer
	cursor   Cursor
	viewport *Viewport
	renderer *Renderer
	mode     Mode
}

// NewEditor creates a session over an empty buffer for a terminal of the
// given size, starting in command mode.
func NewEditor(width, height int) *Editor {
	return &Editor{
		buf:      NewBuffer(),
		viewport: NewViewport(width, height),
		renderer: NewRenderer(),
		mode:     ModeCommand,
	}
}

func (e *Editor) Buffer() *Buffer { return e.buf }
func (e *Editor) Cursor() Cursor { return e.cursor }
func (e *Editor) Viewport() *Viewport { return e.viewport }
func (e *Editor) Mode() Mode { return e.mode }

// Run drives the read, dispatch, scroll, render cycle until a quit key. The
// terminal size is read once; any I/O failure ends the session with an error.
func Run(d Driver, s Screen) error {
	cols, rows, err := d.Size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	e := NewEditor(cols, rows)
	log.Info("session start", "cols", cols, "rows", rows)

	if err := e.Loop(d, s); err != nil {
		log.Error("session aborted", "err", err)
		return err
	}
	log.Info("session end", "lines", e.buf.LineCount())
	return nil
}

// Loop runs the edit cycle for an existing session. The screen is cleared on
// entry and again on a clean exit.
func (e *Editor) Loop(d Driver, s Screen) error {
	s.ClearAll()
	if err := e.render(s); err != nil {
		return err
	}

	for {
		key, err := d.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		if e.Dispatch(key) {
			break
		}
		e.viewport.EnsureCursorVisible(e.cursor.Line, e.buf.LineCount())
		if err := e.render(s); err != nil {
			return err
		}
	}

	s.ClearAll()
	if err := s.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (e *Editor) render(s Screen) error {
	if err := e.renderer.RenderFrame(s, e.buf, e.viewport, e.cursor, e.mode); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
