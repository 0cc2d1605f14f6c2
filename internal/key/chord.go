package key

import (
	"strings"
	"unicode"
)

// Chord is a single key press: one key plus its modifiers.
type Chord struct {
	// Key is the key type. KeyRune for character keys.
	Key Key

	// Rune holds the character when Key is KeyRune.
	Rune rune

	// Mods are the active modifiers.
	Mods Modifier
}

// NewRuneChord creates a chord for a character key.
// A bare Shift on a letter is folded into the rune, so "A" and Shift+"a"
// normalize to the same chord. With further modifiers the Shift is kept
// verbatim ("<C-S-p>"), matching how terminals report those presses.
func NewRuneChord(r rune, mods Modifier) Chord {
	if mods == ModShift && unicode.IsLetter(r) {
		r = unicode.ToUpper(r)
		mods = ModNone
	}
	return Chord{Key: KeyRune, Rune: r, Mods: mods}
}

// NewSpecialChord creates a chord for a named key.
func NewSpecialChord(k Key, mods Modifier) Chord {
	return Chord{Key: k, Mods: mods}
}

// IsRune returns true if this chord is a character key.
func (c Chord) IsRune() bool {
	return c.Key == KeyRune
}

// Equals returns true if both chords denote the same key press.
func (c Chord) Equals(other Chord) bool {
	return c.Key == other.Key && c.Rune == other.Rune && c.Mods == other.Mods
}

// String returns the canonical notation for the chord.
// Bare character keys render as themselves ("a", "A", "?"); everything
// else uses angle-bracket notation ("<Esc>", "<C-s>", "<C-S-F5>").
func (c Chord) String() string {
	if c.IsRune() && c.Mods.IsEmpty() {
		switch c.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(c.Rune)
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(c.Mods.prefix())
	if c.IsRune() {
		switch c.Rune {
		case ' ':
			b.WriteString("Space")
		case '<':
			b.WriteString("lt")
		default:
			b.WriteRune(c.Rune)
		}
	} else {
		b.WriteString(c.Key.String())
	}
	b.WriteByte('>')
	return b.String()
}

// Sequence is an ordered series of chords, e.g. "g g" or "<C-w>v".
type Sequence []Chord

// String returns the canonical space-separated notation for the sequence.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Equals returns true if both sequences contain the same chords in order.
func (s Sequence) Equals(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

// HasPrefix returns true if other is a prefix of this sequence.
func (s Sequence) HasPrefix(other Sequence) bool {
	if len(other) > len(s) {
		return false
	}
	for i := range other {
		if !s[i].Equals(other[i]) {
			return false
		}
	}
	return true
}
