// Package api exposes the host's keymap, autocmd, and options surfaces to
// configuration scripts as the global rc table.
//
//	rc.keymap.set("n", "<leader>w", "editor.save", { desc = "Save" })
//	rc.autocmd.group("mygroup")
//	rc.autocmd.on("buffer.saved", "*.go", function(ev) ... end, { group = "mygroup" })
//	rc.opt.set("tabstop", 2)
//	rc.bo.set(3, "wrap", false)
//
// Lua callback functions are pinned in state-global tables so they survive
// garbage collection for the lifetime of the interpreter.
package api
