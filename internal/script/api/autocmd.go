package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/iamgerwin/dotfiles-sub006/internal/autocmd"
	"github.com/iamgerwin/dotfiles-sub006/internal/script"
)

// DefaultGroup receives script rules registered without an explicit group.
const DefaultGroup = "editrc.script"

// AutocmdModule implements the rc.autocmd script API.
type AutocmdModule struct {
	s   *script.State
	ctx *Context

	handlers *lua.LTable
	rules    map[string]autocmd.RuleHandle
}

func newAutocmdModule(s *script.State, ctx *Context) *AutocmdModule {
	return &AutocmdModule{
		s:     s,
		ctx:   ctx,
		rules: make(map[string]autocmd.RuleHandle),
	}
}

func (m *AutocmdModule) register(L *lua.LState, rc *lua.LTable) {
	m.handlers = L.NewTable()
	L.SetGlobal("_rc_autocmd_handlers", m.handlers)

	mod := L.NewTable()
	L.SetField(mod, "group", L.NewFunction(m.group))
	L.SetField(mod, "on", L.NewFunction(m.on))
	L.SetField(mod, "del", L.NewFunction(m.del))
	L.SetField(mod, "clear", L.NewFunction(m.clear))
	L.SetField(mod, "emit", L.NewFunction(m.emit))
	L.SetField(rc, "autocmd", mod)
}

// group(name, clear?) -> name
//
// Defines a rule group. clear defaults to true, so re-running a script
// redefines its groups instead of stacking duplicate rules.
func (m *AutocmdModule) group(L *lua.LState) int {
	name := L.CheckString(1)
	clear := true
	if L.GetTop() >= 2 {
		clear = L.OptBool(2, true)
	}

	g, err := m.ctx.Autocmds.DefineGroup(name, clear)
	if err != nil {
		L.RaiseError("autocmd.group: %v", err)
		return 0
	}
	L.Push(lua.LString(g.Name()))
	return 1
}

// on(events, pattern, action, opts?) -> rule id
//
// events is an event name or an array of event names. action is a command
// string or a Lua function receiving the event context as a table. opts
// may carry group and once.
func (m *AutocmdModule) on(L *lua.LState) int {
	events, ok := m.checkEvents(L, 1)
	if !ok {
		return 0
	}
	pattern := L.CheckString(2)

	var action autocmd.Action
	switch av := L.Get(3).(type) {
	case lua.LString:
		action = autocmd.Command(string(av))
	case *lua.LFunction:
		m.handlers.Append(av)
		fn := av
		action = autocmd.Callback(func(ctx autocmd.Context) error {
			return m.s.CallFunction(fn, contextToMap(ctx))
		})
	default:
		L.ArgError(3, "action must be a command string or function")
		return 0
	}

	groupName := DefaultGroup
	var ruleOpts []autocmd.RuleOption
	if L.GetTop() >= 4 {
		opts := L.CheckTable(4)
		if g := getTableString(L, opts, "group"); g != "" {
			groupName = g
		}
		if getTableBool(L, opts, "once") {
			ruleOpts = append(ruleOpts, autocmd.Once())
		}
	}

	if groupName == DefaultGroup {
		// The default group always exists and is never implicitly cleared.
		if _, err := m.ctx.Autocmds.DefineGroup(DefaultGroup, false); err != nil {
			L.RaiseError("autocmd.on: %v", err)
			return 0
		}
	}

	h, err := m.ctx.Autocmds.AddRule(groupName, events, pattern, action, ruleOpts...)
	if err != nil {
		L.RaiseError("autocmd.on: %v", err)
		return 0
	}

	m.rules[h.ID()] = h
	L.Push(lua.LString(h.ID()))
	return 1
}

// del(id) -> bool
func (m *AutocmdModule) del(L *lua.LState) int {
	id := L.CheckString(1)
	h, ok := m.rules[id]
	if !ok {
		L.Push(lua.LFalse)
		return 1
	}
	delete(m.rules, id)
	L.Push(lua.LBool(h.Remove()))
	return 1
}

// clear(group) -> retired count
func (m *AutocmdModule) clear(L *lua.LState) int {
	name := L.CheckString(1)
	L.Push(lua.LNumber(m.ctx.Autocmds.ClearGroup(name)))
	return 1
}

// emit(event, ctx?)
//
// Fires an event from script. ctx may carry buffer, file, filetype, and
// data.
func (m *AutocmdModule) emit(L *lua.LState) int {
	event := autocmd.Event(L.CheckString(1))

	var ctx autocmd.Context
	if L.GetTop() >= 2 {
		opts := L.CheckTable(2)
		ctx.Buffer = getTableInt(L, opts, "buffer")
		ctx.File = getTableString(L, opts, "file")
		ctx.FileType = getTableString(L, opts, "filetype")
		if data, ok := L.GetField(opts, "data").(*lua.LTable); ok {
			if converted, ok := script.ToGoValue(data).(map[string]any); ok {
				ctx.Data = converted
			}
		}
	}

	m.ctx.Autocmds.Fire(event, ctx)
	return 0
}

// checkEvents accepts a string or an array of strings at the given stack
// position.
func (m *AutocmdModule) checkEvents(L *lua.LState, pos int) ([]autocmd.Event, bool) {
	switch v := L.Get(pos).(type) {
	case lua.LString:
		return []autocmd.Event{autocmd.Event(string(v))}, true
	case *lua.LTable:
		events := make([]autocmd.Event, 0, v.Len())
		v.ForEach(func(_, el lua.LValue) {
			if s, ok := el.(lua.LString); ok {
				events = append(events, autocmd.Event(string(s)))
			}
		})
		if len(events) == 0 {
			L.ArgError(pos, "events array is empty")
			return nil, false
		}
		return events, true
	default:
		L.ArgError(pos, "events must be a string or array of strings")
		return nil, false
	}
}

// contextToMap converts an event context for delivery to a Lua callback.
func contextToMap(ctx autocmd.Context) map[string]any {
	m := map[string]any{
		"event":    string(ctx.Event),
		"buffer":   ctx.Buffer,
		"file":     ctx.File,
		"filetype": ctx.FileType,
		"match":    string(ctx.Match),
	}
	if len(ctx.Data) > 0 {
		m["data"] = ctx.Data
	}
	return m
}
