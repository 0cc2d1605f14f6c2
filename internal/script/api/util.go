package api

import lua "github.com/yuin/gopher-lua"

func getTableString(L *lua.LState, tbl *lua.LTable, field string) string {
	if s, ok := L.GetField(tbl, field).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func getTableInt(L *lua.LState, tbl *lua.LTable, field string) int {
	if n, ok := L.GetField(tbl, field).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

func getTableBool(L *lua.LState, tbl *lua.LTable, field string) bool {
	if b, ok := L.GetField(tbl, field).(lua.LBool); ok {
		return bool(b)
	}
	return false
}
