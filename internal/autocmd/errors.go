package autocmd

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dispatcher. Registration errors indicate
// configuration-time programmer error and fail fast; action errors during
// Fire are isolated per rule and only reported.
var (
	// ErrGroupNotFound is returned when adding a rule to an undefined group.
	ErrGroupNotFound = errors.New("autocmd group not found")

	// ErrEmptyGroupName is returned when defining a group with no name.
	ErrEmptyGroupName = errors.New("empty group name")

	// ErrNoEvents is returned when a rule names no events.
	ErrNoEvents = errors.New("rule has no events")

	// ErrNoAction is returned when a rule has neither a command nor a callback.
	ErrNoAction = errors.New("rule has no action")

	// ErrEmptyPattern is returned for an empty pattern specification.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrInvalidPattern is returned for malformed glob syntax.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrActionPanic marks action errors that were recovered from a panic.
	ErrActionPanic = errors.New("action panicked")
)

// ActionError wraps a failure from a rule action during Fire. It is
// reported to the host error channel and never propagates to the caller,
// so one misbehaving rule cannot disable the others.
type ActionError struct {
	// Group is the name of the group owning the failed rule.
	Group string

	// RuleID is the failed rule's id.
	RuleID string

	// Event is the event that was being fired.
	Event Event

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	return fmt.Sprintf("autocmd %s (group %s, rule %s): %v", e.Event, e.Group, e.RuleID, e.Err)
}

// Unwrap returns the underlying error.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// PanicError wraps a panic value recovered from a rule action.
type PanicError struct {
	// Value is the value passed to panic().
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Is allows errors.Is to match PanicError with ErrActionPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrActionPanic
}
