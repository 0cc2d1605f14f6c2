package script

import "errors"

// ErrStateClosed is returned when a script operation runs against a state
// that has been shut down. Stale callbacks held by the dispatcher after a
// reload hit this instead of a closed interpreter.
var ErrStateClosed = errors.New("script state closed")
