package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys [mode]",
	Short: "List keybindings for a mode (default: normal)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, ok := parseModeArg(args)
		if !ok {
			return fmt.Errorf("unknown mode %q", args[0])
		}

		a, err := loadApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEYS\tACTION\tSCOPE\tDESC")
		for _, b := range a.Keymaps().Bindings(mode) {
			scope := "global"
			if b.IsBufferLocal() {
				scope = fmt.Sprintf("buf %d", b.Buffer)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Keys, b.Action.String(), scope, b.Description)
		}
		return w.Flush()
	},
}
