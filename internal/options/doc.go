// Package options is a scoped key/value store for editor settings.
//
// Options live in a global scope with optional per-buffer overrides;
// reading through a buffer's view falls back to the global value, so
// filetype hooks can toggle local settings without disturbing the rest of
// the session.
package options
