// Package keymap maps (mode, key sequence, scope) triggers to actions.
//
// The registry is the declarative half of key handling: configuration code
// binds triggers to command strings or callbacks, and the host editor's
// input loop resolves presses against it. Invoking the resolved action is
// the host's responsibility.
//
// Rebinding an occupied slot silently replaces the previous binding (last
// write wins). Buffer-local bindings shadow global ones by default; the
// order is configurable via WithPrecedence.
package keymap
