// Package key provides key chord parsing and canonical notation.
//
// A binding's left-hand side is written in vim-flavored notation: bare
// characters ("a", "A"), named keys ("<Esc>", "<CR>"), modified chords
// ("<C-s>", "<C-S-p>"), and multi-chord sequences ("gg", "<C-w>v").
// Normalize folds equivalent spellings to one canonical string so a
// registry keyed on the lhs never stores the same trigger twice.
//
// FromTcell converts terminal key events so a tcell-based host can resolve
// presses against bindings directly.
package key
