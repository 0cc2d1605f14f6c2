package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iamgerwin/dotfiles-sub006/internal/app"
	"github.com/iamgerwin/dotfiles-sub006/internal/autocmd"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Load the configuration and reload it on file changes",
	Long:  "Runs until interrupted, reloading when the config file or script\nchanges and printing each registration pass.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		opts := appOptions(true)
		opts.ErrorHandler = func(err error) {
			fmt.Fprintln(cmd.ErrOrStderr(), "editrc:", err)
		}
		opts.CommandRunner = func(command string, ctx autocmd.Context) error {
			fmt.Fprintf(out, "run %s (%s)\n", command, ctx.Event)
			return nil
		}

		a, err := app.New(opts)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintf(out, "watching %s\n", opts.ConfigPath)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}
