// Package autocmd dispatches editor lifecycle events to registered rules.
//
// A rule binds a set of events plus a glob pattern to an action, and always
// belongs to exactly one named group. Groups exist to make reconfiguration
// idempotent: defining a group with clear-on-redefine retires everything it
// owned, so re-running a configuration script never stacks duplicate
// handlers. Clearing is implemented with a per-group generation counter,
// which makes stale rule handles inert without deletion bookkeeping.
//
// Dispatch is synchronous and single-threaded by construction: the host's
// event loop calls Fire directly, rules run to completion in registration
// order, and a failing or panicking action is reported to the host error
// channel without disturbing the rules after it.
package autocmd
