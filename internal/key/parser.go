package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors.
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// specialNames maps lowercase spec names (and vim aliases) to keys.
var specialNames = map[string]Key{
	"esc": KeyEscape, "escape": KeyEscape,
	"cr": KeyEnter, "enter": KeyEnter, "return": KeyEnter,
	"tab": KeyTab,
	"bs":  KeyBackspace, "backspace": KeyBackspace,
	"del": KeyDelete, "delete": KeyDelete,
	"ins": KeyInsert, "insert": KeyInsert,
	"home": KeyHome,
	"end":  KeyEnd,
	"pgup": KeyPageUp, "pageup": KeyPageUp,
	"pgdn": KeyPageDown, "pagedown": KeyPageDown,
	"up": KeyUp, "down": KeyDown, "left": KeyLeft, "right": KeyRight,
	"f1": KeyF1, "f2": KeyF2, "f3": KeyF3, "f4": KeyF4,
	"f5": KeyF5, "f6": KeyF6, "f7": KeyF7, "f8": KeyF8,
	"f9": KeyF9, "f10": KeyF10, "f11": KeyF11, "f12": KeyF12,
}

// runeAliases maps spec names to character keys.
var runeAliases = map[string]rune{
	"space":  ' ',
	"lt":     '<',
	"gt":     '>',
	"bar":    '|',
	"bslash": '\\',
}

// Parse parses a single chord specification.
//
// Supported formats:
//   - Single character: "a", "A", "?"
//   - Named keys: "<Esc>", "<CR>", "<Tab>", "<Space>", "<F5>"
//   - With modifiers: "<C-s>", "<A-CR>", "<C-S-p>", "<M-x>"
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") {
		if !strings.HasSuffix(spec, ">") || len(spec) < 3 {
			return Chord{}, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		return parseBracketed(spec[1 : len(spec)-1])
	}

	runes := []rune(spec)
	if len(runes) != 1 {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	return NewRuneChord(runes[0], ModNone), nil
}

// parseBracketed parses the inside of an angle-bracket spec like "C-s" or "Esc".
func parseBracketed(inner string) (Chord, error) {
	if inner == "" {
		return Chord{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]
	var mods Modifier

	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "":
			// Produced by a "-" key, e.g. "<C-->"; handled below.
		case "c":
			mods = mods.With(ModCtrl)
		case "s":
			mods = mods.With(ModShift)
		case "a":
			mods = mods.With(ModAlt)
		case "m", "d":
			mods = mods.With(ModMeta)
		default:
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		// "<C-->" binds Ctrl+hyphen.
		if len(parts) >= 2 {
			return NewRuneChord('-', mods), nil
		}
		return Chord{}, ErrInvalidSpec
	}

	lower := strings.ToLower(keyPart)
	if k, ok := specialNames[lower]; ok {
		return NewSpecialChord(k, mods), nil
	}
	if r, ok := runeAliases[lower]; ok {
		return NewRuneChord(r, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		// Modified letters are case-folded so <C-S> and <C-s> collide.
		if !mods.IsEmpty() && unicode.IsUpper(r) && !mods.Has(ModShift) {
			r = unicode.ToLower(r)
		}
		return NewRuneChord(r, mods), nil
	}

	return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// ParseSequence parses a full left-hand-side specification into a sequence.
// Chords may be separated by spaces ("g g") or adjacent ("gg", "<C-w>v").
func ParseSequence(spec string) (Sequence, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}

	seq := make(Sequence, 0, 2)
	runes := []rune(spec)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ' ' {
			continue
		}
		if r == '<' {
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '>' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
			}
			chord, err := Parse(string(runes[i : end+1]))
			if err != nil {
				return nil, err
			}
			seq = append(seq, chord)
			i = end
			continue
		}
		seq = append(seq, NewRuneChord(r, ModNone))
	}

	if len(seq) == 0 {
		return nil, ErrEmptySpec
	}
	return seq, nil
}

// Normalize parses a lhs specification and returns its canonical notation,
// so that equivalent spellings ("<c-S>", "<C-s>") map to the same string.
func Normalize(spec string) (string, error) {
	seq, err := ParseSequence(spec)
	if err != nil {
		return "", err
	}
	return seq.String(), nil
}

// ExpandLeader replaces "<leader>" tokens in a spec with the given leader
// chord specification.
func ExpandLeader(spec, leader string) string {
	if leader == "" {
		return spec
	}
	return strings.ReplaceAll(spec, "<leader>", leader)
}
