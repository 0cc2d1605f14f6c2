package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable prefixes.
const (
	envLeader    = "EDITRC_LEADER"
	envOptPrefix = "EDITRC_OPT_"
)

// applyEnv layers environment overrides on top of a decoded config.
// EDITRC_LEADER overrides the leader; EDITRC_OPT_<name>=<value> overrides
// or adds a global option, with values parsed as bool, then int, then
// string. Option names are lowercased.
func applyEnv(cfg *Config) {
	if leader := os.Getenv(envLeader); leader != "" {
		cfg.Leader = leader
	}

	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, envOptPrefix) {
			continue
		}
		opt := strings.ToLower(strings.TrimPrefix(name, envOptPrefix))
		if opt == "" {
			continue
		}
		if cfg.Options == nil {
			cfg.Options = make(map[string]any)
		}
		cfg.Options[opt] = parseEnvValue(value)
	}
}

// parseEnvValue converts an environment string to the closest typed value.
func parseEnvValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
