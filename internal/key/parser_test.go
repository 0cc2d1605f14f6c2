package key

import (
	"errors"
	"testing"
)

func TestParseSingleChar(t *testing.T) {
	c, err := Parse("a")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !c.IsRune() || c.Rune != 'a' || !c.Mods.IsEmpty() {
		t.Errorf("Parse(a) = %+v, want rune 'a'", c)
	}
}

func TestParseBracketed(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"<C-s>", "<C-s>"},
		{"<c-S>", "<C-s>"},
		{"<C-S-p>", "<C-S-p>"},
		{"<Esc>", "<Esc>"},
		{"<CR>", "<CR>"},
		{"<Enter>", "<CR>"},
		{"<Return>", "<CR>"},
		{"<BS>", "<BS>"},
		{"<Space>", "<Space>"},
		{"<A-F4>", "<A-F4>"},
		{"<M-x>", "<M-x>"},
		{"<D-x>", "<M-x>"},
		{"<lt>", "<lt>"},
		{"<C-->", "<C-->"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			c, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmptySpec},
		{"  ", ErrEmptySpec},
		{"<C-s", ErrUnmatchedBracket},
		{"<X-s>", ErrInvalidSpec},
		{"<notakey>", ErrInvalidSpec},
		{"ab", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if _, err := Parse(tt.spec); !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		spec string
		want string
		len  int
	}{
		{"gg", "g g", 2},
		{"g g", "g g", 2},
		{"<C-w>v", "<C-w> v", 2},
		{"<C-x><C-f>", "<C-x> <C-f>", 2},
		{"j", "j", 1},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			seq, err := ParseSequence(tt.spec)
			if err != nil {
				t.Fatalf("ParseSequence(%q) error = %v", tt.spec, err)
			}
			if len(seq) != tt.len {
				t.Errorf("len = %d, want %d", len(seq), tt.len)
			}
			if got := seq.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeCollision(t *testing.T) {
	a, err := Normalize("<c-S>")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	b, err := Normalize("<C-s>")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if a != b {
		t.Errorf("equivalent specs normalize differently: %q vs %q", a, b)
	}
}

func TestShiftedLetterFolding(t *testing.T) {
	upper, _ := Parse("A")
	shifted, _ := Parse("<S-a>")
	if !upper.Equals(shifted) {
		t.Errorf("A (%+v) and <S-a> (%+v) should be the same chord", upper, shifted)
	}
}

func TestSequencePrefix(t *testing.T) {
	full, _ := ParseSequence("g g")
	prefix, _ := ParseSequence("g")

	if !full.HasPrefix(prefix) {
		t.Error("g should be a prefix of g g")
	}
	if prefix.HasPrefix(full) {
		t.Error("g g should not be a prefix of g")
	}
}

func TestExpandLeader(t *testing.T) {
	got := ExpandLeader("<leader>w", "<Space>")
	if got != "<Space>w" {
		t.Errorf("ExpandLeader = %q, want %q", got, "<Space>w")
	}
	if got := ExpandLeader("jk", "<Space>"); got != "jk" {
		t.Errorf("ExpandLeader without token = %q, want unchanged", got)
	}
}
