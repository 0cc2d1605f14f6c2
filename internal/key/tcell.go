package key

import (
	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a tcell key event into a Chord so terminal hosts can
// feed their input loop straight into a keymap lookup.
func FromTcell(ev *tcell.EventKey) Chord {
	mods := modsFromTcell(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return NewRuneChord(ev.Rune(), mods)
	case tcell.KeyEscape:
		return NewSpecialChord(KeyEscape, mods)
	case tcell.KeyEnter:
		return NewSpecialChord(KeyEnter, mods)
	case tcell.KeyTab:
		return NewSpecialChord(KeyTab, mods)
	case tcell.KeyBacktab:
		return NewSpecialChord(KeyTab, mods.With(ModShift))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return NewSpecialChord(KeyBackspace, mods)
	case tcell.KeyDelete:
		return NewSpecialChord(KeyDelete, mods)
	case tcell.KeyInsert:
		return NewSpecialChord(KeyInsert, mods)
	case tcell.KeyHome:
		return NewSpecialChord(KeyHome, mods)
	case tcell.KeyEnd:
		return NewSpecialChord(KeyEnd, mods)
	case tcell.KeyPgUp:
		return NewSpecialChord(KeyPageUp, mods)
	case tcell.KeyPgDn:
		return NewSpecialChord(KeyPageDown, mods)
	case tcell.KeyUp:
		return NewSpecialChord(KeyUp, mods)
	case tcell.KeyDown:
		return NewSpecialChord(KeyDown, mods)
	case tcell.KeyLeft:
		return NewSpecialChord(KeyLeft, mods)
	case tcell.KeyRight:
		return NewSpecialChord(KeyRight, mods)
	}

	if k := ev.Key(); k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return NewSpecialChord(KeyF1+Key(k-tcell.KeyF1), mods)
	}

	// Control characters arrive as dedicated tcell key codes; fold them
	// back into a rune chord with Ctrl set so <C-a> bindings match.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return NewRuneChord(rune('a'+k-tcell.KeyCtrlA), mods.With(ModCtrl))
	}

	return Chord{}
}

// modsFromTcell translates tcell's modifier mask.
func modsFromTcell(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}
