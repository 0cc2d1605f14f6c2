package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// State wraps a sandboxed Lua interpreter running the user's configuration
// script.
//
// gopher-lua's LState is not goroutine-safe. Configuration loading and
// event dispatch are single-threaded by construction, so all calls into a
// State must come from that one goroutine.
type State struct {
	L      *lua.LState
	closed bool
}

// NewState creates a sandboxed Lua state with a restricted standard library.
func NewState() *State {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})

	openSafeLibraries(L)
	installSandbox(L)

	return &State{L: L}
}

// safeLibraries is the subset of the Lua stdlib available to config scripts.
var safeLibraries = []struct {
	name string
	open lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

func openSafeLibraries(L *lua.LState) {
	for _, lib := range safeLibraries {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// installSandbox removes base functions that load arbitrary code. A config
// script declares bindings; it has no business pulling code off disk
// outside the interpreter's control.
func installSandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoFile runs a script file.
func (s *State) DoFile(path string) error {
	if s.closed {
		return ErrStateClosed
	}
	if err := s.L.DoFile(path); err != nil {
		return &ScriptError{Source: path, Err: err}
	}
	return nil
}

// DoString runs inline script source.
func (s *State) DoString(src string) error {
	if s.closed {
		return ErrStateClosed
	}
	if err := s.L.DoString(src); err != nil {
		return &ScriptError{Source: "<string>", Err: err}
	}
	return nil
}

// CallFunction invokes a Lua function with the given arguments, converting
// them through the bridge.
func (s *State) CallFunction(fn *lua.LFunction, args ...any) error {
	if s.closed {
		return ErrStateClosed
	}
	s.L.Push(fn)
	for _, arg := range args {
		s.L.Push(ToLuaValue(s.L, arg))
	}
	if err := s.L.PCall(len(args), 0, nil); err != nil {
		return &ScriptError{Source: "<callback>", Err: err}
	}
	return nil
}

// Closed reports whether the state has been shut down.
func (s *State) Closed() bool {
	return s.closed
}

// Close shuts the interpreter down. Callbacks captured from this state
// become invalid.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// ScriptError wraps a Lua execution failure.
type ScriptError struct {
	// Source is the script path, or a marker like "<callback>".
	Source string

	// Err is the underlying Lua error.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
