package autocmd

import (
	"fmt"
	"strings"
)

// Pattern is a glob matched against an event's subject (filename or
// filetype). Supported syntax:
//
//	*        matches any run of characters, including none
//	?        matches exactly one character
//	[abc]    matches one character from the set
//	[a-z]    matches one character from the range
//	[^abc]   matches one character not in the set ([!abc] also accepted)
//
// The bare pattern "*" matches every subject, including an empty one.
type Pattern string

// MatchAll is the pattern that matches every subject.
const MatchAll Pattern = "*"

// IsAll returns true for the match-everything pattern.
func (p Pattern) IsAll() bool {
	return p == MatchAll
}

// Validate checks the pattern for malformed syntax.
func (p Pattern) Validate() error {
	if p == "" {
		return ErrEmptyPattern
	}
	runes := []rune(string(p))
	for i := 0; i < len(runes); i++ {
		if runes[i] != '[' {
			continue
		}
		closed := false
		for j := i + 1; j < len(runes); j++ {
			if runes[j] == ']' && j > i+1 {
				closed = true
				i = j
				break
			}
		}
		if !closed {
			return fmt.Errorf("%w: unclosed character class in %q", ErrInvalidPattern, p)
		}
	}
	return nil
}

// Match reports whether the subject matches the pattern. An empty subject
// matches only the match-everything pattern.
func (p Pattern) Match(subject string) bool {
	if p.IsAll() {
		return true
	}
	if subject == "" {
		return false
	}
	return matchGlob([]rune(string(p)), []rune(subject))
}

// matchGlob performs recursive glob matching, the same shape as segment
// wildcard matching but over characters.
func matchGlob(pattern, subject []rune) bool {
	pi, si := 0, 0

	for pi < len(pattern) {
		switch pattern[pi] {
		case '*':
			// Try matching zero or more subject characters.
			for skip := si; skip <= len(subject); skip++ {
				if matchGlob(pattern[pi+1:], subject[skip:]) {
					return true
				}
			}
			return false

		case '?':
			if si >= len(subject) {
				return false
			}
			pi++
			si++

		case '[':
			if si >= len(subject) {
				return false
			}
			ok, next := matchClass(pattern, pi, subject[si])
			if !ok {
				return false
			}
			pi = next
			si++

		default:
			if si >= len(subject) || pattern[pi] != subject[si] {
				return false
			}
			pi++
			si++
		}
	}

	return si == len(subject)
}

// matchClass matches one character against the class starting at pattern[start]
// (which must be '['). It returns whether the character matched and the index
// just past the closing bracket. A malformed class matches the literal '['.
func matchClass(pattern []rune, start int, c rune) (bool, int) {
	end := -1
	for j := start + 1; j < len(pattern); j++ {
		if pattern[j] == ']' && j > start+1 {
			end = j
			break
		}
	}
	if end < 0 {
		// Unclosed class: treat '[' as a literal.
		return pattern[start] == c, start + 1
	}

	set := pattern[start+1 : end]
	negate := false
	if len(set) > 0 && (set[0] == '^' || set[0] == '!') {
		negate = true
		set = set[1:]
	}

	matched := false
	for i := 0; i < len(set); i++ {
		if i+2 < len(set) && set[i+1] == '-' {
			if set[i] <= c && c <= set[i+2] {
				matched = true
			}
			i += 2
			continue
		}
		if set[i] == c {
			matched = true
		}
	}

	return matched != negate, end + 1
}

// joinPatterns renders a pattern list back to its comma-separated form.
func joinPatterns(pats []string) string {
	return strings.Join(pats, ",")
}

// splitPatterns splits a comma-separated pattern list ("*.go,*.md") into
// individual patterns.
func splitPatterns(spec string) []Pattern {
	parts := strings.Split(spec, ",")
	out := make([]Pattern, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, Pattern(p))
		}
	}
	return out
}
