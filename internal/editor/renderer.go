package editor

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

// Screen is the painting surface a frame is drawn onto. Coordinates are
// 0-based cells.
type Screen interface {
	MoveTo(x, y int)
	ClearLine()
	ClearAll()
	WriteString(s string)
	Flush() error
}

// Renderer draws line-numbered text rows, the status bar and the cursor.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame paints the visible rows, the status bar on the last row, then
// positions the cursor and flushes.
func (r *Renderer) RenderFrame(s Screen, buf *Buffer, vp *Viewport, cur Cursor, mode Mode) error {
	content := vp.ContentHeight()
	for row := 0; row < content; row++ {
		s.MoveTo(0, row)
		s.ClearLine()
		idx := vp.ScrollOffset + row
		if idx < buf.LineCount() {
			s.WriteString(r.fit(strconv.Itoa(idx+1)+" "+buf.Line(idx), vp.Width))
		}
	}

	// Status bar on the last row. A one-row terminal has no room for it.
	if vp.Height > content {
		s.MoveTo(0, vp.Height-1)
		s.ClearLine()
		s.WriteString(r.fit(FormatStatus(mode, cur), vp.Width))
	}

	x, y := CursorScreenPos(vp, cur)
	s.MoveTo(x, y)
	return s.Flush()
}

// CursorScreenPos returns the cell the terminal cursor belongs in. The line
// number prefix width comes from the cursor line's own number.
func CursorScreenPos(vp *Viewport, cur Cursor) (x, y int) {
	prefix := len(strconv.Itoa(cur.Line + 1))
	return prefix + 1 + cur.Col, cur.Line - vp.ScrollOffset
}

// fit truncates text to width display cells so a row never wraps. A
// non-positive width leaves text untouched.
func (r *Renderer) fit(text string, width int) string {
	if width <= 0 {
		return text
	}
	return runewidth.Truncate(text, width, "")
}
