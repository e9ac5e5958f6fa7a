package editor

// Mode represents the editor mode.
type Mode int

const (
	ModeCommand Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeInsert:
		return "INSERT"
	}
	return "UNKNOWN"
}
