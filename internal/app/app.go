// Package app wires the configuration runtime together: the keymap
// registry, the autocmd dispatcher, the options store, the declarative
// config file, and the Lua script layer, plus optional live reload.
package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/iamgerwin/dotfiles-sub006/internal/autocmd"
	"github.com/iamgerwin/dotfiles-sub006/internal/config"
	"github.com/iamgerwin/dotfiles-sub006/internal/config/watcher"
	"github.com/iamgerwin/dotfiles-sub006/internal/keymap"
	"github.com/iamgerwin/dotfiles-sub006/internal/options"
	"github.com/iamgerwin/dotfiles-sub006/internal/script"
	"github.com/iamgerwin/dotfiles-sub006/internal/script/api"
)

// DefaultLeader is used when neither config nor options name one.
const DefaultLeader = "\\"

// Options configures the runtime.
type Options struct {
	// ConfigPath is the declarative config file (TOML or YAML). Empty
	// skips the declarative layer.
	ConfigPath string

	// ScriptPath is the Lua config script. Empty skips the script layer.
	ScriptPath string

	// Leader overrides the leader key. The config file's leader, if set,
	// wins over this.
	Leader string

	// Precedence sets buffer-local vs global keymap resolution order.
	Precedence keymap.Precedence

	// Watch enables live reload when the config or script file changes.
	Watch bool

	// ErrorHandler receives isolated action errors and reload failures.
	// Defaults to stderr.
	ErrorHandler func(error)

	// CommandRunner executes command-string actions fired by autocmd
	// rules. Nil leaves command actions inert.
	CommandRunner autocmd.CommandRunner
}

// App is the assembled configuration runtime.
type App struct {
	mu sync.Mutex

	opts     Options
	keymaps  *keymap.Registry
	autocmds *autocmd.Dispatcher
	options  *options.Store
	state    *script.State
	watch    *watcher.Watcher

	leader string
	report func(error)
}

// New creates the runtime and performs the initial load. The caller owns
// Close.
func New(opts Options) (*App, error) {
	report := opts.ErrorHandler
	if report == nil {
		report = func(err error) {
			fmt.Fprintln(os.Stderr, "editrc:", err)
		}
	}

	a := &App{
		opts:    opts,
		keymaps: keymap.NewRegistry(keymap.WithPrecedence(opts.Precedence)),
		options: options.NewStore(),
		report:  report,
	}
	a.autocmds = autocmd.NewDispatcher(
		autocmd.WithErrorHandler(report),
		autocmd.WithCommandRunner(opts.CommandRunner),
	)

	if err := a.load(); err != nil {
		return nil, err
	}

	if opts.Watch {
		if err := a.startWatcher(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Keymaps returns the keymap registry.
func (a *App) Keymaps() *keymap.Registry {
	return a.keymaps
}

// Autocmds returns the autocmd dispatcher.
func (a *App) Autocmds() *autocmd.Dispatcher {
	return a.autocmds
}

// Options returns the options store.
func (a *App) Options() *options.Store {
	return a.options
}

// Leader returns the effective leader key.
func (a *App) Leader() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.leader
}

// Resolve looks up the binding for a key sequence, for host input loops.
func (a *App) Resolve(mode keymap.Mode, keys string, buffer int) (keymap.Binding, bool) {
	return a.keymaps.Resolve(mode, keys, buffer)
}

// Fire dispatches a lifecycle event to matching autocmd rules.
func (a *App) Fire(event autocmd.Event, ctx autocmd.Context) {
	a.autocmds.Fire(event, ctx)
}

// load runs the full configuration pass: declarative file first, then the
// script. Used for both initial load and reload.
func (a *App) load() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loadLocked()
}

func (a *App) loadLocked() error {
	var cfg *config.Config
	if a.opts.ConfigPath != "" {
		loaded, err := config.Load(a.opts.ConfigPath)
		if err != nil {
			return &InitError{Component: "config", Err: err}
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
	}

	a.leader = cfg.Leader
	if a.leader == "" {
		a.leader = a.opts.Leader
	}
	if a.leader == "" {
		a.leader = DefaultLeader
	}
	cfg.Leader = a.leader

	if err := cfg.Apply(config.Targets{
		Keymaps:  a.keymaps,
		Autocmds: a.autocmds,
		Options:  a.options,
	}); err != nil {
		return &InitError{Component: "config", Err: err}
	}

	if a.opts.ScriptPath != "" {
		if err := a.runScriptLocked(); err != nil {
			return err
		}
	}
	return nil
}

// runScriptLocked replaces the script state and runs the script file.
// Callbacks registered by the previous state are retired with their
// groups; the default script group is cleared explicitly because it is
// never redefined with clearing.
func (a *App) runScriptLocked() error {
	if a.state != nil {
		a.state.Close()
		a.autocmds.ClearGroup(api.DefaultGroup)
	}

	a.state = script.NewState()
	api.Register(a.state, &api.Context{
		Keymaps:  a.keymaps,
		Autocmds: a.autocmds,
		Options:  a.options,
		Leader:   a.leader,
	})

	if _, err := os.Stat(a.opts.ScriptPath); os.IsNotExist(err) {
		return nil
	}
	if err := a.state.DoFile(a.opts.ScriptPath); err != nil {
		return &InitError{Component: "script", Err: err}
	}
	return nil
}

// Reload rebuilds all registration state from the config sources. Keymaps
// are cleared and rebound; autocmd groups are redefined, retiring the
// previous generation of rules. Option values persist and are overwritten
// by the new pass.
//
// A failed reload leaves whatever the partial pass registered; the next
// successful reload converges. The config.reloaded event fires only on
// success.
func (a *App) Reload() error {
	a.mu.Lock()
	a.keymaps.Clear()
	err := a.loadLocked()
	a.mu.Unlock()

	if err != nil {
		return err
	}
	a.autocmds.Fire(autocmd.EventConfigReloaded, autocmd.Context{
		File: a.opts.ConfigPath,
	})
	return nil
}

// startWatcher wires live reload for the config and script files.
func (a *App) startWatcher() error {
	w, err := watcher.New()
	if err != nil {
		return &InitError{Component: "watcher", Err: err}
	}
	for _, path := range []string{a.opts.ConfigPath, a.opts.ScriptPath} {
		if path == "" {
			continue
		}
		if err := w.Watch(path); err != nil {
			w.Close()
			return &InitError{Component: "watcher", Err: err}
		}
	}

	w.OnChange(func(watcher.Event) {
		if err := a.Reload(); err != nil {
			a.report(err)
		}
	})
	w.Start()
	a.watch = w
	return nil
}

// Close releases the watcher and the script interpreter.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var err error
	if a.watch != nil {
		err = a.watch.Close()
		a.watch = nil
	}
	if a.state != nil {
		a.state.Close()
		a.state = nil
	}
	return err
}
