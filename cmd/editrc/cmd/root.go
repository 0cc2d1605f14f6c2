package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iamgerwin/dotfiles-sub006/internal/app"
	"github.com/iamgerwin/dotfiles-sub006/internal/keymap"
)

var (
	flagConfig string
	flagScript string
	flagLeader string
)

var rootCmd = &cobra.Command{
	Use:           "editrc",
	Short:         "editrc - declarative keymap, autocmd, and option runtime",
	Long:          "Loads editor configuration from a TOML/YAML file and a Lua script,\nand exposes the resulting keymaps, autocommand rules, and options.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/editrc/editrc.toml)")
	rootCmd.PersistentFlags().StringVar(&flagScript, "script", "", "lua script (default $XDG_CONFIG_HOME/editrc/init.lua)")
	rootCmd.PersistentFlags().StringVar(&flagLeader, "leader", "", "leader key override")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(optsCmd)
	rootCmd.AddCommand(watchCmd)
}

// configDir returns the editrc config directory.
func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "editrc")
}

// appOptions assembles runtime options from flags and defaults.
func appOptions(watch bool) app.Options {
	configPath := flagConfig
	if configPath == "" {
		configPath = filepath.Join(configDir(), "editrc.toml")
	}
	scriptPath := flagScript
	if scriptPath == "" {
		scriptPath = filepath.Join(configDir(), "init.lua")
	}
	return app.Options{
		ConfigPath: configPath,
		ScriptPath: scriptPath,
		Leader:     flagLeader,
		Watch:      watch,
	}
}

// loadApp builds the runtime from the current flags.
func loadApp(watch bool) (*app.App, error) {
	return app.New(appOptions(watch))
}

// parseModeArg resolves an optional mode argument, defaulting to normal.
func parseModeArg(args []string) (keymap.Mode, bool) {
	if len(args) == 0 {
		return keymap.ModeNormal, true
	}
	return keymap.ParseMode(args[0])
}
