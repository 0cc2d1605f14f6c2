package keymap

import "errors"

// Sentinel errors for the keymap registry. Binding with bad arguments is a
// configuration-time programmer error, so these fail fast.
var (
	// ErrInvalidMode is returned when a mode is not one of the supported values.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrEmptyKeys is returned when a binding has an empty key sequence.
	ErrEmptyKeys = errors.New("empty key sequence")

	// ErrNoAction is returned when a binding has neither a command nor a callback.
	ErrNoAction = errors.New("binding has no action")
)
