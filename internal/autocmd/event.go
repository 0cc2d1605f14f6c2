package autocmd

import "strings"

// Event is a dotted lifecycle event name, e.g. "buffer.saved". Arbitrary
// event names are accepted; the constants below cover the events the host
// runtime fires itself.
type Event string

// Host lifecycle events.
const (
	EventBufferRead     Event = "buffer.read"
	EventBufferSaved    Event = "buffer.saved"
	EventBufferDeleted  Event = "buffer.deleted"
	EventFileType       Event = "filetype.detected"
	EventWindowResized  Event = "window.resized"
	EventTextYanked     Event = "text.yanked"
	EventTerminalOpened Event = "terminal.opened"
	EventConfigReloaded Event = "config.reloaded"
)

// String returns the event name.
func (e Event) String() string {
	return string(e)
}

// IsFileTypeEvent returns true for events whose match subject is the
// filetype name rather than the filename.
func (e Event) IsFileTypeEvent() bool {
	return strings.HasPrefix(string(e), "filetype.")
}

// Context carries event details from the host to matching rule actions.
type Context struct {
	// Event is the event being fired.
	Event Event

	// Buffer is the id of the affected buffer, 0 if none.
	Buffer int

	// File is the filename the event concerns, if any.
	File string

	// FileType is the detected filetype, if any.
	FileType string

	// Match is the pattern that matched this rule, filled in during Fire.
	Match Pattern

	// Data carries host-specific extras through to callbacks.
	Data map[string]any
}

// Subject returns the string a rule pattern is matched against: the
// filetype for filetype-class events, the filename otherwise.
func (c Context) Subject() string {
	if c.Event.IsFileTypeEvent() {
		return c.FileType
	}
	return c.File
}
