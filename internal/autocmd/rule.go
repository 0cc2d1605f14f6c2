package autocmd

// Func is a callback action invoked with the firing event's context.
type Func func(Context) error

// Action is what a rule runs when it fires: a shell-style command string or
// a callback. Exactly one side is set.
type Action struct {
	command string
	fn      Func
}

// Command creates a command action. Execution of the command string is
// delegated to the host's command runner.
func Command(cmd string) Action {
	return Action{command: cmd}
}

// Callback creates a callback action.
func Callback(fn Func) Action {
	return Action{fn: fn}
}

// IsCommand returns true if the action is a command string.
func (a Action) IsCommand() bool {
	return a.command != ""
}

// IsZero returns true if neither side is set.
func (a Action) IsZero() bool {
	return a.command == "" && a.fn == nil
}

// Cmd returns the command string, empty for callback actions.
func (a Action) Cmd() string {
	return a.command
}

// String returns a display form of the action.
func (a Action) String() string {
	if a.IsCommand() {
		return a.command
	}
	if a.fn != nil {
		return "<callback>"
	}
	return "<none>"
}

// rule is a registered autocommand. A rule always belongs to exactly one
// group; the generation stamp makes it inert once its group is cleared.
type rule struct {
	id       string
	group    *group
	gen      uint64
	events   map[Event]struct{}
	patterns []Pattern
	action   Action
	once     bool
	retired  bool
	fired    int
}

// live reports whether the rule can still fire: not retired, and its
// group has not been cleared since registration.
func (r *rule) live() bool {
	return !r.retired && r.gen == r.group.gen
}

// matches reports whether the rule applies to the event and subject,
// returning the pattern that matched.
func (r *rule) matches(event Event, subject string) (Pattern, bool) {
	if _, ok := r.events[event]; !ok {
		return "", false
	}
	for _, p := range r.patterns {
		if p.Match(subject) {
			return p, true
		}
	}
	return "", false
}

// group is a named, clearable collection of rules. Clearing bumps the
// generation counter so every owned rule becomes inert without per-rule
// bookkeeping.
type group struct {
	name string
	gen  uint64
}

// RuleInfo is a read-only snapshot of a registered rule, for listings.
type RuleInfo struct {
	ID      string
	Group   string
	Events  []Event
	Pattern string
	Action  string
	Once    bool
	Fired   int
}
