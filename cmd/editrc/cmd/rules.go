package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List registered autocommand rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "GROUP\tEVENTS\tPATTERN\tACTION\tONCE")
		for _, r := range a.Autocmds().Rules() {
			events := make([]string, len(r.Events))
			for i, ev := range r.Events {
				events[i] = ev.String()
			}
			once := ""
			if r.Once {
				once = "once"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				r.Group, strings.Join(events, ","), r.Pattern, r.Action, once)
		}
		return w.Flush()
	},
}
