package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/iamgerwin/dotfiles-sub006/internal/script"
)

// GlobalName is the table a script reaches the host through.
const GlobalName = "rc"

// Register installs the rc API table into the script state. Call it once
// per state, before running any script.
func Register(s *script.State, ctx *Context) {
	L := s.L
	rc := L.NewTable()

	newKeymapModule(s, ctx).register(L, rc)
	newAutocmdModule(s, ctx).register(L, rc)
	newOptionModule(ctx).register(L, rc)

	L.SetField(rc, "leader", lua.LString(ctx.Leader))
	L.SetGlobal(GlobalName, rc)
}
