package keymap

// Func is a callback action invoked when a binding triggers.
type Func func() error

// Action is what a binding invokes when triggered: either a literal editor
// command string or a callback. Exactly one side is set.
type Action struct {
	command string
	fn      Func
}

// Command creates a command action.
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

// IsCallback returns true if the action is a callback.
func (a Action) IsCallback() bool {
	return a.fn != nil
}

// IsZero returns true if the action has neither side set.
func (a Action) IsZero() bool {
	return a.command == "" && a.fn == nil
}

// Cmd returns the command string, empty for callback actions.
func (a Action) Cmd() string {
	return a.command
}

// Invoke runs a callback action. Command actions are executed by the host
// and return nil here.
func (a Action) Invoke() error {
	if a.fn == nil {
		return nil
	}
	return a.fn()
}

// String returns a display form of the action.
func (a Action) String() string {
	if a.IsCommand() {
		return a.command
	}
	if a.IsCallback() {
		return "<callback>"
	}
	return "<none>"
}

// GlobalBuffer is the buffer id denoting global (non buffer-local) scope.
const GlobalBuffer = 0

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Mode is the editor mode this binding applies to.
	Mode Mode

	// Keys is the trigger key sequence in vim-flavored notation.
	// Stored in canonical form once registered.
	Keys string

	// Action is invoked when the binding triggers.
	Action Action

	// Description documents the binding for listings.
	Description string

	// Silent suppresses host echo when the binding runs.
	Silent bool

	// NoRemap disables further remapping of the right-hand side.
	NoRemap bool

	// Buffer scopes the binding to a single buffer. GlobalBuffer (0)
	// means the binding applies everywhere.
	Buffer int
}

// NewBinding creates a binding for the given mode and key sequence.
func NewBinding(mode Mode, keys string, action Action) Binding {
	return Binding{Mode: mode, Keys: keys, Action: action}
}

// WithDescription sets the description.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithSilent marks the binding silent.
func (b Binding) WithSilent() Binding {
	b.Silent = true
	return b
}

// WithNoRemap disables remapping for the binding.
func (b Binding) WithNoRemap() Binding {
	b.NoRemap = true
	return b
}

// ForBuffer scopes the binding to the given buffer.
func (b Binding) ForBuffer(id int) Binding {
	b.Buffer = id
	return b
}

// IsBufferLocal returns true if the binding is scoped to a buffer.
func (b Binding) IsBufferLocal() bool {
	return b.Buffer != GlobalBuffer
}
