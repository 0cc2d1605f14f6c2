package options

import (
	"fmt"
	"sort"
	"sync"
)

// TypeError is returned when an option holds a different type than the
// accessor expects.
type TypeError struct {
	Name     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("option %q: expected %s, got %s", e.Name, e.Expected, e.Actual)
}

// GlobalBuffer is the buffer id denoting global scope.
const GlobalBuffer = 0

// ChangeFunc observes option mutations. buffer is GlobalBuffer for global
// options.
type ChangeFunc func(buffer int, name string, value any)

// Store holds editor options in a global scope plus per-buffer local
// scopes. A buffer-local value shadows the global value of the same name,
// vim-style; reading an unset buffer option falls through to the global.
type Store struct {
	mu        sync.RWMutex
	global    map[string]any
	buffers   map[int]map[string]any
	listeners []ChangeFunc
}

// NewStore creates an empty options store.
func NewStore() *Store {
	return &Store{
		global:  make(map[string]any),
		buffers: make(map[int]map[string]any),
	}
}

// OnChange registers a mutation observer, used by hosts to apply option
// side effects (redraw, re-highlight).
func (s *Store) OnChange(fn ChangeFunc) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Set assigns a global option.
func (s *Store) Set(name string, value any) {
	s.mu.Lock()
	s.global[name] = value
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(GlobalBuffer, name, value)
	}
}

// SetBuffer assigns a buffer-local option.
func (s *Store) SetBuffer(buffer int, name string, value any) {
	if buffer == GlobalBuffer {
		s.Set(name, value)
		return
	}

	s.mu.Lock()
	b, ok := s.buffers[buffer]
	if !ok {
		b = make(map[string]any)
		s.buffers[buffer] = b
	}
	b[name] = value
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(buffer, name, value)
	}
}

// Get reads a global option.
func (s *Store) Get(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.global[name]
	return v, ok
}

// GetBuffer reads an option as seen from a buffer: the buffer-local value
// if set, otherwise the global value.
func (s *Store) GetBuffer(buffer int, name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.buffers[buffer]; ok {
		if v, ok := b[name]; ok {
			return v, true
		}
	}
	v, ok := s.global[name]
	return v, ok
}

// Unset removes a global option. It reports whether the option existed.
func (s *Store) Unset(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.global[name]; !ok {
		return false
	}
	delete(s.global, name)
	return true
}

// UnsetBuffer removes a buffer-local option, re-exposing the global value.
func (s *Store) UnsetBuffer(buffer int, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.buffers[buffer]
	if !ok {
		return false
	}
	if _, ok := b[name]; !ok {
		return false
	}
	delete(b, name)
	return true
}

// DropBuffer discards all local options for a destroyed buffer.
func (s *Store) DropBuffer(buffer int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buffers, buffer)
}

// String reads an option as a string through the buffer's view.
func (s *Store) String(buffer int, name string) (string, error) {
	v, ok := s.GetBuffer(buffer, name)
	if !ok {
		return "", nil
	}
	str, ok := v.(string)
	if !ok {
		return "", &TypeError{Name: name, Expected: "string", Actual: fmt.Sprintf("%T", v)}
	}
	return str, nil
}

// Int reads an option as an int through the buffer's view. Numeric types
// from config decoding (int64, float64) are converted.
func (s *Store) Int(buffer int, name string) (int, error) {
	v, ok := s.GetBuffer(buffer, name)
	if !ok {
		return 0, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, &TypeError{Name: name, Expected: "integer", Actual: fmt.Sprintf("%T", v)}
	}
}

// Bool reads an option as a bool through the buffer's view.
func (s *Store) Bool(buffer int, name string) (bool, error) {
	v, ok := s.GetBuffer(buffer, name)
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Name: name, Expected: "bool", Actual: fmt.Sprintf("%T", v)}
	}
	return b, nil
}

// Names returns all global option names, sorted, for listings.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.global))
	for name := range s.global {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
