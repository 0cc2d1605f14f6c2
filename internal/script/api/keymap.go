package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/iamgerwin/dotfiles-sub006/internal/key"
	"github.com/iamgerwin/dotfiles-sub006/internal/keymap"
	"github.com/iamgerwin/dotfiles-sub006/internal/script"
)

// KeymapModule implements the rc.keymap script API.
type KeymapModule struct {
	s   *script.State
	ctx *Context

	// handlers pins Lua callback functions against collection for the
	// lifetime of the state.
	handlers *lua.LTable
}

func newKeymapModule(s *script.State, ctx *Context) *KeymapModule {
	return &KeymapModule{s: s, ctx: ctx}
}

func (m *KeymapModule) register(L *lua.LState, rc *lua.LTable) {
	m.handlers = L.NewTable()
	L.SetGlobal("_rc_keymap_handlers", m.handlers)

	mod := L.NewTable()
	L.SetField(mod, "set", L.NewFunction(m.set))
	L.SetField(mod, "del", L.NewFunction(m.del))
	L.SetField(mod, "get", L.NewFunction(m.get))
	L.SetField(mod, "list", L.NewFunction(m.list))
	L.SetField(rc, "keymap", mod)
}

// set(mode, keys, action, opts?)
//
// action is a command string or a Lua function. opts may carry desc,
// silent, noremap, and buffer.
func (m *KeymapModule) set(L *lua.LState) int {
	mode, ok := keymap.ParseMode(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown mode")
		return 0
	}
	keys := key.ExpandLeader(L.CheckString(2), m.ctx.Leader)

	var action keymap.Action
	switch av := L.Get(3).(type) {
	case lua.LString:
		action = keymap.Command(string(av))
	case *lua.LFunction:
		m.handlers.Append(av)
		fn := av
		action = keymap.Callback(func() error {
			return m.s.CallFunction(fn)
		})
	default:
		L.ArgError(3, "action must be a command string or function")
		return 0
	}

	b := keymap.NewBinding(mode, keys, action)
	if L.GetTop() >= 4 {
		opts := L.CheckTable(4)
		if desc := getTableString(L, opts, "desc"); desc != "" {
			b = b.WithDescription(desc)
		}
		if getTableBool(L, opts, "silent") {
			b = b.WithSilent()
		}
		if getTableBool(L, opts, "noremap") {
			b = b.WithNoRemap()
		}
		if buf := getTableInt(L, opts, "buffer"); buf != 0 {
			b = b.ForBuffer(buf)
		}
	}

	if err := m.ctx.Keymaps.Bind(b); err != nil {
		L.RaiseError("keymap.set: %v", err)
		return 0
	}
	return 0
}

// del(mode, keys, opts?) -> bool
func (m *KeymapModule) del(L *lua.LState) int {
	mode, ok := keymap.ParseMode(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown mode")
		return 0
	}
	keys := key.ExpandLeader(L.CheckString(2), m.ctx.Leader)

	buffer := keymap.GlobalBuffer
	if L.GetTop() >= 3 {
		buffer = getTableInt(L, L.CheckTable(3), "buffer")
	}

	L.Push(lua.LBool(m.ctx.Keymaps.Unbind(mode, keys, buffer)))
	return 1
}

// get(mode, keys, opts?) -> table or nil
func (m *KeymapModule) get(L *lua.LState) int {
	mode, ok := keymap.ParseMode(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown mode")
		return 0
	}
	keys := key.ExpandLeader(L.CheckString(2), m.ctx.Leader)

	buffer := keymap.GlobalBuffer
	if L.GetTop() >= 3 {
		buffer = getTableInt(L, L.CheckTable(3), "buffer")
	}

	b, found := m.ctx.Keymaps.Resolve(mode, keys, buffer)
	if !found {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(m.bindingToTable(L, b))
	return 1
}

// list(mode) -> array of binding tables
func (m *KeymapModule) list(L *lua.LState) int {
	mode, ok := keymap.ParseMode(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown mode")
		return 0
	}

	result := L.NewTable()
	for i, b := range m.ctx.Keymaps.Bindings(mode) {
		result.RawSetInt(i+1, m.bindingToTable(L, b))
	}
	L.Push(result)
	return 1
}

func (m *KeymapModule) bindingToTable(L *lua.LState, b keymap.Binding) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "mode", lua.LString(b.Mode))
	L.SetField(tbl, "keys", lua.LString(b.Keys))
	L.SetField(tbl, "action", lua.LString(b.Action.String()))
	L.SetField(tbl, "desc", lua.LString(b.Description))
	L.SetField(tbl, "silent", lua.LBool(b.Silent))
	L.SetField(tbl, "noremap", lua.LBool(b.NoRemap))
	L.SetField(tbl, "buffer", lua.LNumber(b.Buffer))
	return tbl
}
