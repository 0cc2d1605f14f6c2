package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var optsCmd = &cobra.Command{
	Use:   "opts",
	Short: "List global option values",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "OPTION\tVALUE")
		for _, name := range a.Options().Names() {
			v, _ := a.Options().Get(name)
			fmt.Fprintf(w, "%s\t%v\n", name, v)
		}
		return w.Flush()
	},
}
