package editor

// Cursor is a (line, column) position in a Buffer. Col may equal the line
// length, which is the append position.
type Cursor struct {
	Line int
	Col  int
}

// MoveLeft steps back one column, wrapping to the end of the previous line.
func (c *Cursor) MoveLeft(b *Buffer) {
	if c.Col > 0 {
		c.Col--
	} else if c.Line > 0 {
		c.Line--
		c.Col = b.LineLen(c.Line)
	}
}

// MoveRight steps forward one column, wrapping to the start of the next line.
func (c *Cursor) MoveRight(b *Buffer) {
	if c.Col < b.LineLen(c.Line) {
		c.Col++
	} else if c.Line < b.LineCount()-1 {
		c.Line++
		c.Col = 0
	}
}

func (c *Cursor) MoveUp(b *Buffer) {
	if c.Line > 0 {
		c.Line--
		c.clampCol(b)
	}
}

func (c *Cursor) MoveDown(b *Buffer) {
	if c.Line < b.LineCount()-1 {
		c.Line++
		c.clampCol(b)
	}
}

func (c *Cursor) clampCol(b *Buffer) {
	if n := b.LineLen(c.Line); c.Col > n {
		c.Col = n
	}
}

// Valid reports whether the cursor lies within b.
func (c Cursor) Valid(b *Buffer) bool {
	return c.Line >= 0 && c.Line < b.LineCount() && c.Col >= 0 && c.Col <= b.LineLen(c.Line)
}
