package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/minigrep/internal/ports"
)

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	c := Defaults()
	assert.False(t, c.IgnoreCase)
	assert.True(t, c.SkipHidden)
	assert.Equal(t, ColorAuto, c.Color)
	assert.False(t, c.Context.Active())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
ignore_case = true
color = "never"
stats = true
exclude = ["vendor", "*.min.js"]
skip_hidden = false

[context]
mode = "after"
count = 2
`)
	fc, err := LoadFile(path, false)
	require.NoError(t, err)
	require.NotNil(t, fc)

	c := Defaults()
	require.NoError(t, c.ApplyFile(fc))
	assert.True(t, c.IgnoreCase)
	assert.Equal(t, ColorNever, c.Color)
	assert.True(t, c.Stats)
	assert.Equal(t, []string{"vendor", "*.min.js"}, c.Exclude)
	assert.False(t, c.SkipHidden)
	assert.Equal(t, ports.ContextSpec{Mode: ports.ContextAfter, Count: 2}, c.Context)
}

func TestLoadFile_MissingOptional(t *testing.T) {
	fc, err := LoadFile(filepath.Join(t.TempDir(), "none.toml"), true)
	require.NoError(t, err)
	assert.Nil(t, fc)
}

func TestLoadFile_MissingRequired(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "none.toml"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_Malformed(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "ignore_case = = true"), false)
	assert.ErrorContains(t, err, "parse config")
}

func TestApplyFile_Nil(t *testing.T) {
	c := Defaults()
	require.NoError(t, c.ApplyFile(nil))
	assert.Equal(t, Defaults(), c)
}

func TestApplyFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fc   FileConfig
	}{
		{"bad color", FileConfig{Color: "rainbow"}},
		{"bad mode", FileConfig{Context: &ContextConfig{Mode: "sideways", Count: 1}}},
		{"negative count", FileConfig{Context: &ContextConfig{Mode: "before", Count: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			assert.Error(t, c.ApplyFile(&tt.fc))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	c := Defaults()
	c.ApplyEnv(envOf(nil))
	assert.False(t, c.IgnoreCase)
	assert.False(t, c.Debug)

	c.ApplyEnv(envOf(map[string]string{EnvIgnoreCase: "", EnvDebug: "1"}))
	assert.True(t, c.IgnoreCase, "IGNORE_CASE set to anything enables folding")
	assert.True(t, c.Debug)
}

func TestApplyEnv_DebugNeedsOne(t *testing.T) {
	c := Defaults()
	c.ApplyEnv(envOf(map[string]string{EnvDebug: "yes"}))
	assert.False(t, c.Debug)
}

func TestConfigPath(t *testing.T) {
	paths := NewPaths("/home/ann", "")

	got, optional := ConfigPath("/etc/mg.toml", envOf(map[string]string{EnvConfig: "/env.toml"}), paths)
	assert.Equal(t, "/etc/mg.toml", got)
	assert.False(t, optional)

	got, optional = ConfigPath("", envOf(map[string]string{EnvConfig: "/env.toml"}), paths)
	assert.Equal(t, "/env.toml", got)
	assert.False(t, optional)

	got, optional = ConfigPath("", envOf(nil), paths)
	assert.Equal(t, paths.ConfigFile, got)
	assert.True(t, optional)
}

func TestValidateColor(t *testing.T) {
	for _, m := range []string{ColorAuto, ColorAlways, ColorNever} {
		assert.NoError(t, ValidateColor(m))
	}
	assert.Error(t, ValidateColor("sometimes"))
}
