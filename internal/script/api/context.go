package api

import (
	"github.com/iamgerwin/dotfiles-sub006/internal/autocmd"
	"github.com/iamgerwin/dotfiles-sub006/internal/keymap"
)

// KeymapProvider is the keymap surface exposed to scripts. Satisfied by
// *keymap.Registry.
type KeymapProvider interface {
	// Bind registers a binding, replacing any binding on the same slot.
	Bind(b keymap.Binding) error

	// Unbind removes a binding, reporting whether one existed.
	Unbind(mode keymap.Mode, keys string, buffer int) bool

	// Resolve looks up the binding for a key sequence as seen from a buffer.
	Resolve(mode keymap.Mode, keys string, buffer int) (keymap.Binding, bool)

	// Bindings lists all bindings for a mode.
	Bindings(mode keymap.Mode) []keymap.Binding
}

// AutocmdProvider is the autocommand surface exposed to scripts. Satisfied
// by *autocmd.Dispatcher.
type AutocmdProvider interface {
	// DefineGroup creates or redefines a rule group.
	DefineGroup(name string, clearOnRedefine bool) (autocmd.GroupHandle, error)

	// AddRule registers a rule under a defined group.
	AddRule(group string, events []autocmd.Event, pattern string, action autocmd.Action, opts ...autocmd.RuleOption) (autocmd.RuleHandle, error)

	// ClearGroup retires every rule in a group.
	ClearGroup(name string) int

	// Fire dispatches an event to matching rules.
	Fire(event autocmd.Event, ctx autocmd.Context)
}

// OptionProvider is the options surface exposed to scripts. Satisfied by
// *options.Store.
type OptionProvider interface {
	// Set assigns a global option.
	Set(name string, value any)

	// SetBuffer assigns a buffer-local option.
	SetBuffer(buffer int, name string, value any)

	// Get reads a global option.
	Get(name string) (any, bool)

	// GetBuffer reads an option through a buffer's view.
	GetBuffer(buffer int, name string) (any, bool)

	// Unset removes a global option.
	Unset(name string) bool

	// UnsetBuffer removes a buffer-local option.
	UnsetBuffer(buffer int, name string) bool
}

// Context carries the host surfaces a script may touch, plus script-wide
// settings.
type Context struct {
	Keymaps  KeymapProvider
	Autocmds AutocmdProvider
	Options  OptionProvider

	// Leader is substituted for "<leader>" in key specs at bind time.
	Leader string
}
