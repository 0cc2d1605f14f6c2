package script

import (
	"errors"
	"reflect"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestToGoValueScalars(t *testing.T) {
	tests := []struct {
		name string
		lv   lua.LValue
		want any
	}{
		{"nil", lua.LNil, nil},
		{"bool", lua.LTrue, true},
		{"integer", lua.LNumber(42), int64(42)},
		{"float", lua.LNumber(1.5), 1.5},
		{"string", lua.LString("hi"), "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToGoValue(tt.lv); got != tt.want {
				t.Errorf("ToGoValue(%v) = %v (%T), want %v", tt.lv, got, got, tt.want)
			}
		})
	}
}

func TestToGoValueArrayTable(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	tbl := L.NewTable()
	tbl.RawSetInt(1, lua.LString("a"))
	tbl.RawSetInt(2, lua.LString("b"))

	got := ToGoValue(tbl)
	want := []any{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToGoValue(array) = %#v, want %#v", got, want)
	}
}

func TestToGoValueMapTable(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	tbl := L.NewTable()
	tbl.RawSetString("name", lua.LString("editrc"))
	tbl.RawSetString("count", lua.LNumber(3))

	got, ok := ToGoValue(tbl).(map[string]any)
	if !ok {
		t.Fatalf("ToGoValue(map) = %T, want map[string]any", got)
	}
	if got["name"] != "editrc" || got["count"] != int64(3) {
		t.Errorf("ToGoValue(map) = %#v", got)
	}
}

func TestToGoValueCycle(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	tbl := L.NewTable()
	tbl.RawSetString("self", tbl)

	got, ok := ToGoValue(tbl).(map[string]any)
	if !ok {
		t.Fatal("cyclic table did not convert to a map")
	}
	if got["self"] != nil {
		t.Errorf("cycle entry = %v, want nil", got["self"])
	}
}

func TestToLuaValueRoundTrip(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	in := map[string]any{
		"tabstop": int64(2),
		"wrap":    false,
		"langs":   []any{"go", "lua"},
	}
	out := ToGoValue(ToLuaValue(L, in))
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip = %#v, want %#v", out, in)
	}
}

func TestSandboxRemovesLoaders(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		if v := s.L.GetGlobal(name); v != lua.LNil {
			t.Errorf("global %q = %v, want nil", name, v)
		}
	}
}

func TestSafeLibrariesAvailable(t *testing.T) {
	s := NewState()
	defer s.Close()

	err := s.DoString(`
		local parts = {}
		table.insert(parts, string.upper("ok"))
		table.insert(parts, tostring(math.max(1, 2)))
		result = table.concat(parts, "-")
	`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if got := s.L.GetGlobal("result"); got.String() != "OK-2" {
		t.Errorf("result = %q, want %q", got.String(), "OK-2")
	}
}

func TestDoStringError(t *testing.T) {
	s := NewState()
	defer s.Close()

	err := s.DoString(`error("boom")`)
	if err == nil {
		t.Fatal("DoString() error = nil, want script error")
	}
	var scriptErr *ScriptError
	if !errors.As(err, &scriptErr) {
		t.Errorf("error = %T, want *ScriptError", err)
	}
}

func TestClosedStateRejectsCalls(t *testing.T) {
	s := NewState()
	s.Close()

	if err := s.DoString("x = 1"); err != ErrStateClosed {
		t.Errorf("DoString() after Close = %v, want ErrStateClosed", err)
	}
	s.Close() // idempotent
}
