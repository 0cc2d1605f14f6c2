package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iamgerwin/dotfiles-sub006/internal/autocmd"
	"github.com/iamgerwin/dotfiles-sub006/internal/keymap"
	"github.com/iamgerwin/dotfiles-sub006/internal/options"
)

const testConfig = `
leader = "<Space>"

[options]
tabstop = 2

[[keymaps]]
mode = "n"
keys = "<leader>w"
command = "editor.save"

[[autocmds]]
events = ["buffer.saved"]
pattern = "*.go"
command = "format.run"
`

const testScript = `
rc.opt.set("scripted", true)
rc.keymap.set("n", "<leader>q", "editor.quit")
rc.autocmd.group("script.lint")
rc.autocmd.on("buffer.saved", "*.go", "lint.run", { group = "script.lint" })
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newApp(t *testing.T, opts Options) *App {
	t.Helper()
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestConfigAndScriptLayers(t *testing.T) {
	dir := t.TempDir()
	a := newApp(t, Options{
		ConfigPath: writeFile(t, dir, "editrc.toml", testConfig),
		ScriptPath: writeFile(t, dir, "init.lua", testScript),
	})

	if a.Leader() != "<Space>" {
		t.Errorf("Leader() = %q", a.Leader())
	}

	// Declarative binding.
	if _, ok := a.Keymaps().Resolve(keymap.ModeNormal, "<Space>w", keymap.GlobalBuffer); !ok {
		t.Error("config binding not resolvable")
	}
	// Scripted binding, with leader expansion.
	if _, ok := a.Keymaps().Resolve(keymap.ModeNormal, "<Space>q", keymap.GlobalBuffer); !ok {
		t.Error("script binding not resolvable")
	}

	if v, _ := a.Options().Int(options.GlobalBuffer, "tabstop"); v != 2 {
		t.Errorf("tabstop = %d", v)
	}
	if v, _ := a.Options().Bool(options.GlobalBuffer, "scripted"); !v {
		t.Error("scripted option not set")
	}

	if got := len(a.Autocmds().Rules()); got != 2 {
		t.Errorf("rules = %d, want 2", got)
	}
}

func TestMissingFilesAreFine(t *testing.T) {
	dir := t.TempDir()
	a := newApp(t, Options{
		ConfigPath: filepath.Join(dir, "absent.toml"),
		ScriptPath: filepath.Join(dir, "absent.lua"),
	})

	if a.Leader() != DefaultLeader {
		t.Errorf("Leader() = %q, want default", a.Leader())
	}
	if got := a.Keymaps().Len(); got != 0 {
		t.Errorf("bindings = %d", got)
	}
}

func TestScriptOverridesConfigBinding(t *testing.T) {
	dir := t.TempDir()
	script := `rc.keymap.set("n", "<leader>w", "editor.save_all")`
	a := newApp(t, Options{
		ConfigPath: writeFile(t, dir, "editrc.toml", testConfig),
		ScriptPath: writeFile(t, dir, "init.lua", script),
	})

	b, ok := a.Keymaps().Resolve(keymap.ModeNormal, "<Space>w", keymap.GlobalBuffer)
	if !ok {
		t.Fatal("binding not resolvable")
	}
	// The script runs after the config file; last write wins.
	if b.Action.Cmd() != "editor.save_all" {
		t.Errorf("action = %q, want script's", b.Action.Cmd())
	}
}

func TestReloadConverges(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "editrc.toml", testConfig)
	scriptPath := writeFile(t, dir, "init.lua", testScript)
	a := newApp(t, Options{ConfigPath: configPath, ScriptPath: scriptPath})

	for i := 0; i < 3; i++ {
		if err := a.Reload(); err != nil {
			t.Fatalf("Reload() #%d error = %v", i, err)
		}
	}

	if got := len(a.Autocmds().Rules()); got != 2 {
		t.Errorf("rules after reloads = %d, want 2", got)
	}
	if got := a.Keymaps().Len(); got != 2 {
		t.Errorf("bindings after reloads = %d, want 2", got)
	}
}

func TestReloadPicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "editrc.toml", testConfig)
	a := newApp(t, Options{ConfigPath: configPath})

	rebound := `
leader = "<Space>"

[[keymaps]]
mode = "n"
keys = "<leader>w"
command = "editor.save_all"

[[autocmds]]
events = ["buffer.saved"]
pattern = "*.go"
command = "vet.run"
`
	writeFile(t, dir, "editrc.toml", rebound)
	if err := a.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	b, ok := a.Keymaps().Resolve(keymap.ModeNormal, "<Space>w", keymap.GlobalBuffer)
	if !ok || b.Action.Cmd() != "editor.save_all" {
		t.Errorf("binding = %+v, want rebound command", b)
	}

	// Redefining the config group retired the old rule.
	rules := a.Autocmds().Rules()
	if len(rules) != 1 || rules[0].Action != "vet.run" {
		t.Errorf("rules = %+v, want single vet.run rule", rules)
	}
}

func TestReloadFiresEvent(t *testing.T) {
	dir := t.TempDir()
	var commands []string
	a := newApp(t, Options{
		ConfigPath: writeFile(t, dir, "editrc.toml", `
[[autocmds]]
events = ["config.reloaded"]
pattern = "*"
command = "status.refresh"
`),
		CommandRunner: func(cmd string, ctx autocmd.Context) error {
			commands = append(commands, cmd)
			return nil
		},
	})

	if err := a.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if len(commands) != 1 || commands[0] != "status.refresh" {
		t.Errorf("commands = %v, want one status.refresh", commands)
	}
}

func TestScriptErrorSurfaces(t *testing.T) {
	dir := t.TempDir()
	_, err := New(Options{
		ScriptPath: writeFile(t, dir, "init.lua", `this is not lua`),
	})
	if err == nil {
		t.Fatal("New() error = nil, want script init error")
	}
}

func TestWatchTriggersReload(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "editrc.toml", testConfig)
	a := newApp(t, Options{ConfigPath: configPath, Watch: true})

	writeFile(t, dir, "editrc.toml", `
leader = "<Space>"

[[keymaps]]
mode = "n"
keys = "<leader>x"
command = "editor.close"
`)

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := a.Keymaps().Resolve(keymap.ModeNormal, "<Space>x", keymap.GlobalBuffer); ok {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("watched change did not trigger reload")
}
