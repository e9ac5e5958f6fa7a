package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JackWReid/modal/internal/terminal"
)

// scriptedDriver replays a fixed key sequence. Running past the end is an
// error so a missing quit key fails the test instead of hanging.
type scriptedDriver struct {
	keys    []terminal.Key
	cols    int
	rows    int
	sizeErr error
	readErr error
	reads   int
}

func (d *scriptedDriver) ReadKey() (terminal.Key, error) {
	if d.readErr != nil && d.reads == len(d.keys) {
		return terminal.Key{}, d.readErr
	}
	if d.reads >= len(d.keys) {
		return terminal.Key{}, errors.New("script exhausted")
	}
	k := d.keys[d.reads]
	d.reads++
	return k, nil
}

func (d *scriptedDriver) Size() (int, int, error) {
	return d.cols, d.rows, d.sizeErr
}

func script(keys ...terminal.Key) *scriptedDriver {
	return &scriptedDriver{keys: keys, cols: 40, rows: 6}
}

func TestRunQuitsOnQ(t *testing.T) {
	d := script(runeKey('q'))
	s := newRecordingScreen()

	require.NoError(t, Run(d, s))
	assert.Equal(t, 1, d.reads)
	// Initial frame plus the exit flush.
	assert.Equal(t, 2, s.flushes)
	assert.Equal(t, "clear all", s.calls[len(s.calls)-2])
	assert.Empty(t, s.rows)
}

func TestLoopEditsAndRedraws(t *testing.T) {
	d := script(
		runeKey('i'), runeKey('h'), runeKey('i'),
		key(terminal.KeyEnter),
		runeKey('b'), runeKey('y'), runeKey('e'),
	)
	s := newRecordingScreen()
	e := NewEditor(d.cols, d.rows)

	err := e.Loop(d, s)
	require.Error(t, err, "script ends without a quit key")

	assert.Equal(t, []string{"hi", "bye"}, e.buf.Lines())
	assert.Equal(t, "1 hi", s.rows[0])
	assert.Equal(t, "2 bye", s.rows[1])
	assert.Equal(t, "-- INSERT -- Line: 2, Col: 4", s.rows[5])
	assert.Equal(t, 8, s.flushes, "one frame per key plus the initial frame")
}

func TestLoopScrollsBeforeRender(t *testing.T) {
	keys := []terminal.Key{runeKey('i')}
	for i := 0; i < 7; i++ {
		keys = append(keys, key(terminal.KeyEnter))
	}
	keys = append(keys, key(terminal.KeyEscape), key(terminal.KeyEscape))
	d := script(keys...)
	s := newRecordingScreen()
	e := NewEditor(d.cols, d.rows)

	require.NoError(t, e.Loop(d, s))
	assert.Equal(t, 7, e.cursor.Line)
	assert.Equal(t, 3, e.viewport.ScrollOffset) // 7 - 5 + 1
	assert.Equal(t, ModeCommand, e.mode)
}

func TestRunReadErrorIsFatal(t *testing.T) {
	d := script(runeKey('i'), runeKey('x'))
	d.readErr = errors.New("stdin closed")
	s := newRecordingScreen()

	err := Run(d, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, d.readErr)
	assert.Contains(t, err.Error(), "read key")
}

func TestRunSizeErrorIsFatal(t *testing.T) {
	d := script(runeKey('q'))
	d.sizeErr = errors.New("not a tty")

	err := Run(d, newRecordingScreen())
	assert.ErrorIs(t, err, d.sizeErr)
	assert.Equal(t, 0, d.reads)
}

func TestRunRenderErrorIsFatal(t *testing.T) {
	d := script(runeKey('q'))
	s := newRecordingScreen()
	s.flushErr = errors.New("write failed")

	err := Run(d, s)
	assert.ErrorIs(t, err, s.flushErr)
	assert.Contains(t, err.Error(), "render")
	assert.Equal(t, 0, d.reads, "initial frame fails before any read")
}
