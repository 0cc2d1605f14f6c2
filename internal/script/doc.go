// Package script embeds a sandboxed Lua interpreter for the scripted
// configuration layer.
//
// The script file complements the declarative config file: it can attach
// Go-invokable Lua callbacks to keybindings and autocommand rules, which
// the declarative format cannot express. The interpreter runs a restricted
// standard library with code-loading primitives removed.
package script
