package terminal

import (
	"bufio"
	"fmt"
	"io"
)

// Screen paints into a terminal with ANSI escape sequences. Output is
// buffered until Flush so a whole frame reaches the terminal in one write.
type Screen struct {
	w   *bufio.Writer
	err error
}

func NewScreen(out io.Writer) *Screen {
	return &Screen{w: bufio.NewWriter(out)}
}

// MoveTo places the terminal cursor at 0-based column x, row y.
func (s *Screen) MoveTo(x, y int) {
	s.write(fmt.Sprintf("\x1b[%d;%dH", y+1, x+1))
}

// ClearLine erases the row the cursor is on.
func (s *Screen) ClearLine() {
	s.write("\x1b[2K")
}

// ClearAll erases the whole screen and homes the cursor.
func (s *Screen) ClearAll() {
	s.write("\x1b[2J\x1b[H")
}

func (s *Screen) WriteString(text string) {
	s.write(text)
}

// Flush writes the buffered frame. The first write error seen since the last
// Flush is returned.
func (s *Screen) Flush() error {
	if s.err != nil {
		err := s.err
		s.err = nil
		return err
	}
	return s.w.Flush()
}

func (s *Screen) write(text string) {
	if s.err != nil {
		return
	}
	if _, err := s.w.WriteString(text); err != nil {
		s.err = err
	}
}
