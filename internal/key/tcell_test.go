package key

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), "j"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), "<C-s>"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "<Esc>"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "<CR>"},
		{"shift tab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "<S-Tab>"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "<A-x>"},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "<F5>"},
		{"pgdn", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), "<PgDn>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTcell(tt.ev).String(); got != tt.want {
				t.Errorf("FromTcell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromTcellMatchesParsedBinding(t *testing.T) {
	bound, err := Parse("<C-s>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	pressed := FromTcell(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	if !bound.Equals(pressed) {
		t.Errorf("parsed %+v does not match pressed %+v", bound, pressed)
	}
}
