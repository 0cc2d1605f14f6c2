package key

// Modifier represents keyboard modifier keys as a bitmask.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModShift indicates the Shift key.
	ModShift

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// prefix returns the canonical modifier prefix, e.g. "C-S-" for Ctrl+Shift.
// Order is fixed: Ctrl, Shift, Alt, Meta.
func (m Modifier) prefix() string {
	s := ""
	if m.Has(ModCtrl) {
		s += "C-"
	}
	if m.Has(ModShift) {
		s += "S-"
	}
	if m.Has(ModAlt) {
		s += "A-"
	}
	if m.Has(ModMeta) {
		s += "M-"
	}
	return s
}
