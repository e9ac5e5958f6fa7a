package editor

// Buffer holds the document text as a slice of lines. It always has at least
// one line. Columns are rune indexes into a line.
//
// The edit primitives do no bounds policy of their own: the dispatcher only
// calls them with positions the cursor invariant already guarantees.
type Buffer struct {
	lines [][]rune
}

// NewBuffer returns a buffer with a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewBufferFromLines returns a buffer holding the given lines. An empty slice
// yields a single empty line.
func NewBufferFromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return NewBuffer()
	}
	b := &Buffer{lines: make([][]rune, len(lines))}
	for i, l := range lines {
		b.lines[i] = []rune(l)
	}
	return b
}

// InsertChar inserts ch at col in line. Requires col <= LineLen(line).
func (b *Buffer) InsertChar(line, col int, ch rune) {
	runes := b.lines[line]
	runes = append(runes, 0)
	copy(runes[col+1:], runes[col:])
	runes[col] = ch
	b.lines[line] = runes
}

// DeleteChar removes the character immediately before col. Requires col > 0.
func (b *Buffer) DeleteChar(line, col int) {
	runes := b.lines[line]
	b.lines[line] = append(runes[:col-1], runes[col:]...)
}

// SplitLine breaks line at col; the tail becomes the following line.
func (b *Buffer) SplitLine(line, col int) {
	runes := b.lines[line]
	tail := make([]rune, len(runes)-col)
	copy(tail, runes[col:])
	b.lines[line] = runes[:col:col]

	b.lines = append(b.lines, nil)
	copy(b.lines[line+2:], b.lines[line+1:])
	b.lines[line+1] = tail
}

// JoinWithPrevious appends line to line-1 and removes it. Requires line > 0.
// Returns the previous line's length before the join, which is the join point.
func (b *Buffer) JoinWithPrevious(line int) int {
	prev := b.lines[line-1]
	joinAt := len(prev)
	b.lines[line-1] = append(prev, b.lines[line]...)
	b.lines = append(b.lines[:line], b.lines[line+1:]...)
	return joinAt
}

// Line returns the text of line i.
func (b *Buffer) Line(i int) string {
	return string(b.lines[i])
}

// Lines returns a copy of all lines as strings.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// LineLen returns the rune-length of a given line.
func (b *Buffer) LineLen(line int) int {
	return len(b.lines[line])
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}
