package options

import (
	"errors"
	"testing"
)

func TestSetGet(t *testing.T) {
	s := NewStore()

	s.Set("tabstop", 4)
	v, ok := s.Get("tabstop")
	if !ok || v != 4 {
		t.Errorf("Get(tabstop) = %v, %v", v, ok)
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
}

func TestBufferFallback(t *testing.T) {
	s := NewStore()

	s.Set("number", true)
	v, ok := s.GetBuffer(3, "number")
	if !ok || v != true {
		t.Error("buffer view should fall back to global value")
	}

	s.SetBuffer(3, "number", false)
	v, _ = s.GetBuffer(3, "number")
	if v != false {
		t.Error("buffer-local value should shadow global")
	}

	// Other buffers still see the global.
	v, _ = s.GetBuffer(4, "number")
	if v != true {
		t.Error("other buffers affected by buffer-local set")
	}

	if !s.UnsetBuffer(3, "number") {
		t.Error("UnsetBuffer = false for set option")
	}
	v, _ = s.GetBuffer(3, "number")
	if v != true {
		t.Error("global value not re-exposed after UnsetBuffer")
	}
}

func TestTypedAccessors(t *testing.T) {
	s := NewStore()
	s.Set("shell", "/bin/zsh")
	s.Set("tabstop", int64(2))
	s.Set("wrap", true)

	if v, err := s.String(GlobalBuffer, "shell"); err != nil || v != "/bin/zsh" {
		t.Errorf("String = %q, %v", v, err)
	}
	if v, err := s.Int(GlobalBuffer, "tabstop"); err != nil || v != 2 {
		t.Errorf("Int = %d, %v", v, err)
	}
	if v, err := s.Bool(GlobalBuffer, "wrap"); err != nil || v != true {
		t.Errorf("Bool = %v, %v", v, err)
	}

	// Unset options read as zero values without error.
	if v, err := s.Int(GlobalBuffer, "missing"); err != nil || v != 0 {
		t.Errorf("Int(missing) = %d, %v", v, err)
	}

	// Wrong types surface a TypeError.
	_, err := s.Int(GlobalBuffer, "shell")
	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Errorf("Int(shell) error = %v, want *TypeError", err)
	}
}

func TestDropBuffer(t *testing.T) {
	s := NewStore()
	s.Set("wrap", true)
	s.SetBuffer(7, "wrap", false)

	s.DropBuffer(7)

	v, _ := s.GetBuffer(7, "wrap")
	if v != true {
		t.Error("dropped buffer should fall back to global")
	}
}

func TestOnChange(t *testing.T) {
	s := NewStore()

	type change struct {
		buffer int
		name   string
		value  any
	}
	var got []change
	s.OnChange(func(buffer int, name string, value any) {
		got = append(got, change{buffer, name, value})
	})

	s.Set("wrap", true)
	s.SetBuffer(2, "wrap", false)

	if len(got) != 2 {
		t.Fatalf("observed %d changes, want 2", len(got))
	}
	if got[0].buffer != GlobalBuffer || got[1].buffer != 2 {
		t.Errorf("changes = %+v", got)
	}
}

func TestNames(t *testing.T) {
	s := NewStore()
	s.Set("wrap", true)
	s.Set("number", true)

	names := s.Names()
	if len(names) != 2 || names[0] != "number" || names[1] != "wrap" {
		t.Errorf("Names() = %v, want sorted [number wrap]", names)
	}
}
