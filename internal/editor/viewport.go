package editor

// Viewport is the visible window into the buffer. Height includes the status
// bar row; dimensions are fixed for the session.
type Viewport struct {
	Width        int
	Height       int
	ScrollOffset int // Index of the first visible line
}

func NewViewport(termWidth, termHeight int) *Viewport {
	return &Viewport{
		Width:  termWidth,
		Height: termHeight,
	}
}

// ContentHeight returns the number of rows available for text (excluding
// the status bar). Never less than one, so the cursor line always has a row.
func (v *Viewport) ContentHeight() int {
	if v.Height-1 < 1 {
		return 1
	}
	return v.Height - 1
}

// EnsureCursorVisible scrolls the minimum amount that keeps line on screen.
// lineCount bounds the offset after the buffer has shrunk.
func (v *Viewport) EnsureCursorVisible(line, lineCount int) {
	if v.ScrollOffset > lineCount-1 {
		v.ScrollOffset = lineCount - 1
	}
	if v.ScrollOffset < 0 {
		v.ScrollOffset = 0
	}

	vis := v.ContentHeight()
	if line >= v.ScrollOffset+vis {
		v.ScrollOffset = line - vis + 1
	} else if line < v.ScrollOffset {
		v.ScrollOffset = line
	}
}

// Contains reports whether line falls inside the visible window.
func (v *Viewport) Contains(line int) bool {
	return line >= v.ScrollOffset && line < v.ScrollOffset+v.ContentHeight()
}
