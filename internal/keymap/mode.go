package keymap

// Mode identifies the editor mode a binding belongs to.
type Mode string

// Supported modes.
const (
	ModeNormal      Mode = "normal"
	ModeInsert      Mode = "insert"
	ModeVisual      Mode = "visual"
	ModeVisualBlock Mode = "visual-block"
	ModeTerminal    Mode = "terminal"
	ModeCommand     Mode = "command"
)

// modes is the set of valid modes.
var modes = map[Mode]bool{
	ModeNormal:      true,
	ModeInsert:      true,
	ModeVisual:      true,
	ModeVisualBlock: true,
	ModeTerminal:    true,
	ModeCommand:     true,
}

// Valid returns true if m is a supported mode.
func (m Mode) Valid() bool {
	return modes[m]
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Modes returns all supported modes in a stable order.
func Modes() []Mode {
	return []Mode{
		ModeNormal,
		ModeInsert,
		ModeVisual,
		ModeVisualBlock,
		ModeTerminal,
		ModeCommand,
	}
}

// ParseMode converts a mode name to a Mode, also accepting the short
// single-letter forms used in configuration files ("n", "i", "v", "x",
// "t", "c").
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "n":
		return ModeNormal, true
	case "i":
		return ModeInsert, true
	case "v":
		return ModeVisual, true
	case "x":
		return ModeVisualBlock, true
	case "t":
		return ModeTerminal, true
	case "c":
		return ModeCommand, true
	}
	m := Mode(name)
	if m.Valid() {
		return m, true
	}
	return "", false
}
