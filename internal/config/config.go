package config

import (
	"fmt"

	"github.com/iamgerwin/dotfiles-sub006/internal/autocmd"
	"github.com/iamgerwin/dotfiles-sub006/internal/key"
	"github.com/iamgerwin/dotfiles-sub006/internal/keymap"
	"github.com/iamgerwin/dotfiles-sub006/internal/options"
)

// Config is the declarative configuration file: options, command
// keybindings, and command autocommand rules. Anything needing callbacks
// lives in the Lua script instead.
type Config struct {
	// Leader is the chord substituted for "<leader>" in key specs.
	Leader string `toml:"leader" yaml:"leader"`

	// Options are global option assignments.
	Options map[string]any `toml:"options" yaml:"options"`

	// Keymaps are command keybinding declarations.
	Keymaps []KeymapDecl `toml:"keymaps" yaml:"keymaps"`

	// Autocmds are command autocommand declarations.
	Autocmds []AutocmdDecl `toml:"autocmds" yaml:"autocmds"`
}

// KeymapDecl declares one command keybinding.
type KeymapDecl struct {
	// Mode accepts full names ("normal") or short forms ("n").
	Mode string `toml:"mode" yaml:"mode"`

	Keys    string `toml:"keys" yaml:"keys"`
	Command string `toml:"command" yaml:"command"`
	Desc    string `toml:"desc" yaml:"desc"`
	Silent  bool   `toml:"silent" yaml:"silent"`
	NoRemap bool   `toml:"noremap" yaml:"noremap"`
}

// AutocmdDecl declares one command autocommand rule.
type AutocmdDecl struct {
	// Group names the owning group; empty uses DefaultGroup.
	Group string `toml:"group" yaml:"group"`

	Events  []string `toml:"events" yaml:"events"`
	Pattern string   `toml:"pattern" yaml:"pattern"`
	Command string   `toml:"command" yaml:"command"`
	Once    bool     `toml:"once" yaml:"once"`
}

// DefaultGroup owns file-declared autocommands with no explicit group.
const DefaultGroup = "editrc.config"

// Targets are the components a configuration is applied to.
type Targets struct {
	Keymaps  *keymap.Registry
	Autocmds *autocmd.Dispatcher
	Options  *options.Store
}

// Apply installs the configuration into the targets. Configuration errors
// are fatal to loading: they indicate programmer error in the config file.
//
// Autocmd groups are defined with clear-on-redefine, so applying the same
// configuration twice never duplicates handlers.
func (c *Config) Apply(t Targets) error {
	if t.Options != nil {
		for name, value := range c.Options {
			t.Options.Set(name, value)
		}
	}

	if t.Keymaps != nil {
		for i, decl := range c.Keymaps {
			mode, ok := keymap.ParseMode(decl.Mode)
			if !ok {
				return fmt.Errorf("keymap %d: %w: %q", i, keymap.ErrInvalidMode, decl.Mode)
			}
			keys := key.ExpandLeader(decl.Keys, c.Leader)
			b := keymap.NewBinding(mode, keys, keymap.Command(decl.Command)).
				WithDescription(decl.Desc)
			if decl.Silent {
				b = b.WithSilent()
			}
			if decl.NoRemap {
				b = b.WithNoRemap()
			}
			if err := t.Keymaps.Bind(b); err != nil {
				return fmt.Errorf("keymap %d: %w", i, err)
			}
		}
	}

	if t.Autocmds != nil {
		groups := make(map[string]autocmd.GroupHandle)
		for i, decl := range c.Autocmds {
			name := decl.Group
			if name == "" {
				name = DefaultGroup
			}
			g, ok := groups[name]
			if !ok {
				var err error
				g, err = t.Autocmds.DefineGroup(name, true)
				if err != nil {
					return fmt.Errorf("autocmd %d: %w", i, err)
				}
				groups[name] = g
			}

			events := make([]autocmd.Event, len(decl.Events))
			for j, ev := range decl.Events {
				events[j] = autocmd.Event(ev)
			}

			var opts []autocmd.RuleOption
			if decl.Once {
				opts = append(opts, autocmd.Once())
			}
			if _, err := g.On(events, decl.Pattern, autocmd.Command(decl.Command), opts...); err != nil {
				return fmt.Errorf("autocmd %d: %w", i, err)
			}
		}
	}

	return nil
}
