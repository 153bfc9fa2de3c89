package app

import (
	"path/filepath"
)

// Paths holds the resolved locations of the user-level configuration.
// All fields are pre-computed strings.
type Paths struct {
	ConfigDir  string // $XDG_CONFIG_HOME/minigrep or ~/.config/minigrep
	ConfigFile string // <ConfigDir>/config.toml
}

// NewPaths resolves configuration paths from the home directory and the
// XDG_CONFIG_HOME value (which may be empty).
func NewPaths(home, xdgConfigHome string) *Paths {
	base := xdgConfigHome
	if base == "" {
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "minigrep")
	return &Paths{
		ConfigDir:  dir,
		ConfigFile: filepath.Join(dir, "config.toml"),
	}
}
