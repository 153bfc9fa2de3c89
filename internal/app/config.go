package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/corey/minigrep/internal/ports"
)

// Environment variables read once while resolving configuration. The search
// core never looks at the environment itself.
const (
	EnvIgnoreCase = "IGNORE_CASE"
	EnvDebug      = "MINIGREP_DEBUG"
	EnvConfig     = "MINIGREP_CONFIG"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the fully resolved configuration of one invocation.
type Config struct {
	Query      string
	Paths      []string // one or two paths, or one directory when Recursive
	IgnoreCase bool
	Context    ports.ContextSpec
	Stats      bool
	Recursive  bool
	Include    []string
	Exclude    []string
	SkipHidden bool
	Color      string
	Debug      bool
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		SkipHidden: true,
		Color:      ColorAuto,
	}
}

// FileConfig mirrors the TOML config file. Pointer fields distinguish
// "unset" from the zero value.
type FileConfig struct {
	IgnoreCase *bool          `toml:"ignore_case"`
	Color      string         `toml:"color"`
	Stats      *bool          `toml:"stats"`
	Context    *ContextConfig `toml:"context"`
	Include    []string       `toml:"include"`
	Exclude    []string       `toml:"exclude"`
	SkipHidden *bool          `toml:"skip_hidden"`
}

// ContextConfig is the [context] table of the config file.
type ContextConfig struct {
	Mode  string `toml:"mode"`
	Count int    `toml:"count"`
}

// LoadFile parses a TOML config file. A missing file yields (nil, nil) when
// optional is true.
func LoadFile(path string, optional bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// ApplyFile layers a config file over c. A nil file is a no-op.
func (c *Config) ApplyFile(fc *FileConfig) error {
	if fc == nil {
		return nil
	}
	if fc.IgnoreCase != nil {
		c.IgnoreCase = *fc.IgnoreCase
	}
	if fc.Color != "" {
		if err := ValidateColor(fc.Color); err != nil {
			return err
		}
		c.Color = fc.Color
	}
	if fc.Stats != nil {
		c.Stats = *fc.Stats
	}
	if fc.Context != nil {
		mode, err := ports.ParseContextMode(fc.Context.Mode)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if fc.Context.Count < 0 {
			return fmt.Errorf("config: context count must be non-negative, got %d", fc.Context.Count)
		}
		c.Context = ports.ContextSpec{Mode: mode, Count: fc.Context.Count}
	}
	if len(fc.Include) > 0 {
		c.Include = fc.Include
	}
	if len(fc.Exclude) > 0 {
		c.Exclude = fc.Exclude
	}
	if fc.SkipHidden != nil {
		c.SkipHidden = *fc.SkipHidden
	}
	return nil
}

// ApplyEnv layers environment defaults over c. IGNORE_CASE counts as set
// whatever its value, including empty.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if _, ok := lookup(EnvIgnoreCase); ok {
		c.IgnoreCase = true
	}
	if v, ok := lookup(EnvDebug); ok && v == "1" {
		c.Debug = true
	}
}

// ConfigPath picks the config file to load: the explicit path if given,
// then $MINIGREP_CONFIG, then the per-user default. The boolean is true when
// the file may be missing.
func ConfigPath(explicit string, lookup func(string) (string, bool), paths *Paths) (string, bool) {
	if explicit != "" {
		return explicit, false
	}
	if v, ok := lookup(EnvConfig); ok && v != "" {
		return v, false
	}
	return paths.ConfigFile, true
}

// ValidateColor checks a --color value.
func ValidateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
}
