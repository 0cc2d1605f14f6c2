// editrc is a declarative trigger-action configuration runtime: keymaps,
// autocommand rules, and options loaded from a config file and a Lua
// script.
package main

import (
	"os"

	"github.com/iamgerwin/dotfiles-sub006/cmd/editrc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
