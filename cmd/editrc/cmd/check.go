package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamgerwin/dotfiles-sub006/internal/keymap"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the configuration and report what it registers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		bindings := 0
		for _, mode := range keymap.Modes() {
			bindings += len(a.Keymaps().Bindings(mode))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "leader:   %s\n", a.Leader())
		fmt.Fprintf(out, "keymaps:  %d\n", bindings)
		fmt.Fprintf(out, "rules:    %d\n", len(a.Autocmds().Rules()))
		fmt.Fprintf(out, "options:  %d\n", len(a.Options().Names()))
		return nil
	},
}
