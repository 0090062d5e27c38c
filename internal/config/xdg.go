package config

import (
	"os"
	"path/filepath"
)

const appName = "hintle"

// xdgBase returns the directory named by env, or home joined with
// fallback. Relative values are ignored as the XDG base directory rules
// require.
func xdgBase(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" && filepath.IsAbs(v) {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// XDGConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string { return xdgBase("XDG_CONFIG_HOME", ".config") }

// XDGDataHome returns $XDG_DATA_HOME or ~/.local/share.
func XDGDataHome() string { return xdgBase("XDG_DATA_HOME", ".local", "share") }

// DefaultDBPath is the session log: $XDG_DATA_HOME/hintle/hintle.db.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, appName+".db")
}

// DefaultConfigPath is $XDG_CONFIG_HOME/hintle/config.toml.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
