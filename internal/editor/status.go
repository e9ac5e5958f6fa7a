package editor

import "fmt"

// FormatStatus returns the status bar text: mode name and the 1-based cursor
// position.
func FormatStatus(mode Mode, cur Cursor) string {
	return fmt.Sprintf("-- %s -- Line: %d, Col: %d", mode, cur.Line+1, cur.Col+1)
}
