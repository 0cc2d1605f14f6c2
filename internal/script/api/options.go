package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/iamgerwin/dotfiles-sub006/internal/options"
	"github.com/iamgerwin/dotfiles-sub006/internal/script"
)

// OptionModule implements the rc.opt and rc.bo script APIs. rc.opt works
// on the global scope; rc.bo takes a buffer id and works on that buffer's
// local scope.
type OptionModule struct {
	ctx *Context
}

func newOptionModule(ctx *Context) *OptionModule {
	return &OptionModule{ctx: ctx}
}

func (m *OptionModule) register(L *lua.LState, rc *lua.LTable) {
	opt := L.NewTable()
	L.SetField(opt, "set", L.NewFunction(m.set))
	L.SetField(opt, "get", L.NewFunction(m.get))
	L.SetField(opt, "del", L.NewFunction(m.del))
	L.SetField(rc, "opt", opt)

	bo := L.NewTable()
	L.SetField(bo, "set", L.NewFunction(m.setLocal))
	L.SetField(bo, "get", L.NewFunction(m.getLocal))
	L.SetField(bo, "del", L.NewFunction(m.delLocal))
	L.SetField(rc, "bo", bo)
}

// opt.set(name, value)
func (m *OptionModule) set(L *lua.LState) int {
	name := L.CheckString(1)
	m.ctx.Options.Set(name, script.ToGoValue(L.Get(2)))
	return 0
}

// opt.get(name) -> value or nil
func (m *OptionModule) get(L *lua.LState) int {
	name := L.CheckString(1)
	v, ok := m.ctx.Options.Get(name)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(script.ToLuaValue(L, v))
	return 1
}

// opt.del(name) -> bool
func (m *OptionModule) del(L *lua.LState) int {
	name := L.CheckString(1)
	L.Push(lua.LBool(m.ctx.Options.Unset(name)))
	return 1
}

// bo.set(buffer, name, value)
func (m *OptionModule) setLocal(L *lua.LState) int {
	buffer := L.CheckInt(1)
	name := L.CheckString(2)
	if buffer == options.GlobalBuffer {
		L.ArgError(1, "buffer id must be non-zero")
		return 0
	}
	m.ctx.Options.SetBuffer(buffer, name, script.ToGoValue(L.Get(3)))
	return 0
}

// bo.get(buffer, name) -> value or nil
//
// Falls through to the global value when the buffer has no local one.
func (m *OptionModule) getLocal(L *lua.LState) int {
	buffer := L.CheckInt(1)
	name := L.CheckString(2)
	v, ok := m.ctx.Options.GetBuffer(buffer, name)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(script.ToLuaValue(L, v))
	return 1
}

// bo.del(buffer, name) -> bool
func (m *OptionModule) delLocal(L *lua.LState) int {
	buffer := L.CheckInt(1)
	name := L.CheckString(2)
	L.Push(lua.LBool(m.ctx.Options.UnsetBuffer(buffer, name)))
	return 1
}
