package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/iamgerwin/dotfiles-sub006/internal/key"
)

// Precedence controls which scope wins when a buffer-local and a global
// binding share the same mode and key sequence.
type Precedence int

const (
	// BufferFirst resolves buffer-local bindings before global ones.
	BufferFirst Precedence = iota

	// GlobalFirst resolves global bindings before buffer-local ones.
	GlobalFirst
)

// slot identifies a binding: one binding may exist per (mode, lhs, scope).
type slot struct {
	mode   Mode
	keys   string
	buffer int
}

// entry stores a binding alongside its parsed sequence for prefix queries.
type entry struct {
	binding  Binding
	sequence key.Sequence
}

// Registry maps (mode, key sequence, scope) to actions.
//
// Binding the same slot twice replaces the previous binding; last write
// wins. That is documented policy, not an error.
type Registry struct {
	mu         sync.RWMutex
	entries    map[slot]entry
	precedence Precedence
}

// Option configures a Registry.
type Option func(*Registry)

// WithPrecedence sets the buffer-local vs global resolution order.
func WithPrecedence(p Precedence) Option {
	return func(r *Registry) {
		r.precedence = p
	}
}

// NewRegistry creates an empty keymap registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries:    make(map[slot]entry),
		precedence: BufferFirst,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bind registers a binding. The key sequence is normalized so equivalent
// spellings collide on the same slot. Invalid arguments fail fast.
func (r *Registry) Bind(b Binding) error {
	if !b.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, b.Mode)
	}
	if b.Keys == "" {
		return ErrEmptyKeys
	}
	if b.Action.IsZero() {
		return fmt.Errorf("%w: %s %q", ErrNoAction, b.Mode, b.Keys)
	}

	seq, err := key.ParseSequence(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %s %q: %w", b.Mode, b.Keys, err)
	}
	b.Keys = seq.String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[slot{b.Mode, b.Keys, b.Buffer}] = entry{binding: b, sequence: seq}
	return nil
}

// Unbind removes a binding. It reports whether a binding was removed;
// absence is not an error.
func (r *Registry) Unbind(mode Mode, keys string, buffer int) bool {
	canonical, err := key.Normalize(keys)
	if err != nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s := slot{mode, canonical, buffer}
	if _, ok := r.entries[s]; !ok {
		return false
	}
	delete(r.entries, s)
	return true
}

// Resolve looks up the action bound to a key sequence. The buffer argument
// names the active buffer; buffer-local bindings for it are consulted
// according to the registry's precedence.
func (r *Registry) Resolve(mode Mode, keys string, buffer int) (Binding, bool) {
	canonical, err := key.Normalize(keys)
	if err != nil {
		return Binding{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	scopes := []int{GlobalBuffer}
	if buffer != GlobalBuffer {
		if r.precedence == GlobalFirst {
			scopes = []int{GlobalBuffer, buffer}
		} else {
			scopes = []int{buffer, GlobalBuffer}
		}
	}
	for _, scope := range scopes {
		if e, ok := r.entries[slot{mode, canonical, scope}]; ok {
			return e.binding, true
		}
	}
	return Binding{}, false
}

// ResolveSequence resolves an already-parsed chord sequence, as produced by
// a host input loop.
func (r *Registry) ResolveSequence(mode Mode, seq key.Sequence, buffer int) (Binding, bool) {
	if len(seq) == 0 {
		return Binding{}, false
	}
	return r.Resolve(mode, seq.String(), buffer)
}

// HasPrefix reports whether any binding visible from the given buffer
// starts with the given sequence. Hosts use this to decide whether to wait
// for more input.
func (r *Registry) HasPrefix(mode Mode, seq key.Sequence, buffer int) bool {
	if len(seq) == 0 {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for s, e := range r.entries {
		if s.mode != mode {
			continue
		}
		if s.buffer != GlobalBuffer && s.buffer != buffer {
			continue
		}
		if len(e.sequence) > len(seq) && e.sequence.HasPrefix(seq) {
			return true
		}
	}
	return false
}

// Bindings returns all bindings for a mode, global and buffer-local alike,
// sorted by key sequence for stable listings.
func (r *Registry) Bindings(mode Mode) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Binding, 0)
	for s, e := range r.entries {
		if s.mode == mode {
			result = append(result, e.binding)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Keys != result[j].Keys {
			return result[i].Keys < result[j].Keys
		}
		return result[i].Buffer < result[j].Buffer
	})
	return result
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// ClearBuffer removes all bindings scoped to the given buffer and returns
// how many were removed. Hosts call this when a buffer is destroyed.
func (r *Registry) ClearBuffer(buffer int) int {
	if buffer == GlobalBuffer {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for s := range r.entries {
		if s.buffer == buffer {
			delete(r.entries, s)
			removed++
		}
	}
	return removed
}

// Clear removes every binding. Used when configuration is reloaded from
// scratch.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[slot]entry)
}
