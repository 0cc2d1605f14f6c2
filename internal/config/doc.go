// Package config loads declarative configuration files.
//
// A config file (TOML or YAML) declares global options, command
// keybindings, and command autocommand rules, the subset of configuration
// expressible without callbacks. Applying a config is idempotent: keymap
// slots are last-write-wins and autocmd groups are redefined with
// clear-on-redefine, so reload never stacks duplicate handlers.
package config
