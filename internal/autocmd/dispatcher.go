package autocmd

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// ErrorFunc receives isolated action errors during Fire. It is the bridge
// to the host's error channel.
type ErrorFunc func(error)

// CommandRunner executes a rule's command-string action. Command execution
// belongs to the host; without a runner, command actions are inert.
type CommandRunner func(cmd string, ctx Context) error

// Dispatcher registers autocommand rules and invokes the ones matching a
// fired lifecycle event, synchronously and in registration order.
type Dispatcher struct {
	mu     sync.RWMutex
	groups map[string]*group
	rules  []*rule
	report ErrorFunc
	runner CommandRunner
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithErrorHandler routes action errors to the given function instead of
// the default stderr reporter.
func WithErrorHandler(fn ErrorFunc) Option {
	return func(d *Dispatcher) {
		if fn != nil {
			d.report = fn
		}
	}
}

// WithCommandRunner sets the executor for command-string actions.
func WithCommandRunner(fn CommandRunner) Option {
	return func(d *Dispatcher) {
		d.runner = fn
	}
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		groups: make(map[string]*group),
		report: func(err error) {
			fmt.Fprintln(os.Stderr, err)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// GroupHandle names a defined group and offers convenience registration.
type GroupHandle struct {
	d    *Dispatcher
	name string
}

// Name returns the group name.
func (g GroupHandle) Name() string {
	return g.name
}

// On registers a rule in this group. See Dispatcher.AddRule.
func (g GroupHandle) On(events []Event, pattern string, action Action, opts ...RuleOption) (RuleHandle, error) {
	return g.d.AddRule(g.name, events, pattern, action, opts...)
}

// Clear retires every rule in this group.
func (g GroupHandle) Clear() int {
	return g.d.ClearGroup(g.name)
}

// DefineGroup creates or redefines a named group. With clearOnRedefine,
// redefining an existing group retires all its rules first, which makes
// re-running a configuration script idempotent: reloading never produces
// duplicate handlers.
func (d *Dispatcher) DefineGroup(name string, clearOnRedefine bool) (GroupHandle, error) {
	if name == "" {
		return GroupHandle{}, ErrEmptyGroupName
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	g, ok := d.groups[name]
	if !ok {
		g = &group{name: name}
		d.groups[name] = g
	} else if clearOnRedefine {
		d.clearGroupLocked(g)
	}
	return GroupHandle{d: d, name: name}, nil
}

// RuleOption configures a rule at registration.
type RuleOption func(*rule)

// Once makes the rule retire itself after its first invocation, even if
// the action failed.
func Once() RuleOption {
	return func(r *rule) {
		r.once = true
	}
}

// AddRule registers a rule under an already-defined group. The pattern may
// be a comma-separated list of globs; "*" matches everything. Rules fire in
// registration order.
func (d *Dispatcher) AddRule(groupName string, events []Event, pattern string, action Action, opts ...RuleOption) (RuleHandle, error) {
	if len(events) == 0 {
		return RuleHandle{}, ErrNoEvents
	}
	if action.IsZero() {
		return RuleHandle{}, ErrNoAction
	}

	patterns := splitPatterns(pattern)
	if len(patterns) == 0 {
		return RuleHandle{}, ErrEmptyPattern
	}
	for _, p := range patterns {
		if err := p.Validate(); err != nil {
			return RuleHandle{}, err
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	g, ok := d.groups[groupName]
	if !ok {
		return RuleHandle{}, fmt.Errorf("%w: %q", ErrGroupNotFound, groupName)
	}

	r := &rule{
		id:       uuid.NewString(),
		group:    g,
		gen:      g.gen,
		events:   make(map[Event]struct{}, len(events)),
		patterns: patterns,
		action:   action,
	}
	for _, ev := range events {
		r.events[ev] = struct{}{}
	}
	for _, opt := range opts {
		opt(r)
	}

	d.rules = append(d.rules, r)
	return RuleHandle{d: d, r: r}, nil
}

// RuleHandle refers to a registered rule.
type RuleHandle struct {
	d *Dispatcher
	r *rule
}

// ID returns the rule's unique id.
func (h RuleHandle) ID() string {
	if h.r == nil {
		return ""
	}
	return h.r.id
}

// Remove retires the rule. It reports whether the rule was still live;
// removing an already-retired rule is not an error.
func (h RuleHandle) Remove() bool {
	if h.d == nil || h.r == nil {
		return false
	}
	h.d.mu.Lock()
	defer h.d.mu.Unlock()
	if !h.r.live() {
		return false
	}
	h.r.retired = true
	return true
}

// Fire invokes every live rule registered for the event whose pattern
// matches the context's subject, synchronously and in registration order.
// An action that fails or panics is reported to the error handler and does
// not prevent later rules from running. Once-rules retire immediately after
// their invocation, successful or not.
func (d *Dispatcher) Fire(event Event, ctx Context) {
	ctx.Event = event
	subject := ctx.Subject()

	d.mu.RLock()
	matched := make([]*rule, 0)
	patterns := make([]Pattern, 0)
	for _, r := range d.rules {
		if !r.live() {
			continue
		}
		if p, ok := r.matches(event, subject); ok {
			matched = append(matched, r)
			patterns = append(patterns, p)
		}
	}
	d.mu.RUnlock()

	for i, r := range matched {
		// A prior action in this firing may have cleared the group or
		// removed the rule.
		d.mu.RLock()
		skip := !r.live()
		d.mu.RUnlock()
		if skip {
			continue
		}

		ctx.Match = patterns[i]
		err := d.invoke(r, ctx)

		d.mu.Lock()
		r.fired++
		if r.once {
			r.retired = true
		}
		d.mu.Unlock()

		if err != nil {
			d.report(&ActionError{
				Group:  r.group.name,
				RuleID: r.id,
				Event:  event,
				Err:    err,
			})
		}
	}
}

// invoke runs a rule action with panic recovery. Command actions have no
// runner inside the dispatcher; the host observes them via CommandRunner.
func (d *Dispatcher) invoke(r *rule, ctx Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Value: rec}
		}
	}()

	if r.action.fn != nil {
		return r.action.fn(ctx)
	}
	if d.runner != nil {
		return d.runner(r.action.command, ctx)
	}
	return nil
}

// ClearGroup retires every rule in the named group and returns how many
// live rules were retired. Clearing an unknown group is a no-op.
func (d *Dispatcher) ClearGroup(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	g, ok := d.groups[name]
	if !ok {
		return 0
	}
	return d.clearGroupLocked(g)
}

// clearGroupLocked bumps the group generation and compacts the rule list.
// Caller must hold the write lock.
func (d *Dispatcher) clearGroupLocked(g *group) int {
	g.gen++

	retired := 0
	kept := d.rules[:0]
	for _, r := range d.rules {
		if r.group == g {
			if !r.retired {
				retired++
			}
			continue
		}
		kept = append(kept, r)
	}
	d.rules = kept
	return retired
}

// Groups returns the defined group names, sorted.
func (d *Dispatcher) Groups() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.groups))
	for name := range d.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rules returns a snapshot of all live rules in registration order.
func (d *Dispatcher) Rules() []RuleInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()

	infos := make([]RuleInfo, 0, len(d.rules))
	for _, r := range d.rules {
		if !r.live() {
			continue
		}
		events := make([]Event, 0, len(r.events))
		for ev := range r.events {
			events = append(events, ev)
		}
		sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })

		pats := make([]string, len(r.patterns))
		for i, p := range r.patterns {
			pats[i] = string(p)
		}

		infos = append(infos, RuleInfo{
			ID:      r.id,
			Group:   r.group.name,
			Events:  events,
			Pattern: joinPatterns(pats),
			Action:  r.action.String(),
			Once:    r.once,
			Fired:   r.fired,
		})
	}
	return infos
}
