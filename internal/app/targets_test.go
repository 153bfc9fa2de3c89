package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkfile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
}

func TestResolveTargets_Files(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")
	mkfile(t, a)
	mkfile(t, b)

	cfg := Defaults()
	cfg.Paths = []string{a, b}
	tg, err := ResolveTargets(cfg, NewLogger(false, nil))
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, tg.Files)
	assert.False(t, tg.Walked)
}

func TestResolveTargets_MissingSecondFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	mkfile(t, a)

	cfg := Defaults()
	cfg.Paths = []string{a, filepath.Join(dir, "missing.txt")}
	_, err := ResolveTargets(cfg, NewLogger(false, nil))
	assert.ErrorContains(t, err, "file not found")
}

func TestResolveTargets_DirectoryWithoutRecursive(t *testing.T) {
	cfg := Defaults()
	cfg.Paths = []string{t.TempDir()}
	_, err := ResolveTargets(cfg, NewLogger(false, nil))
	assert.ErrorIs(t, err, ErrIsADirectory)
}

func TestResolveTargets_RecursiveOnFile(t *testing.T) {
	a := filepath.Join(t.TempDir(), "a.txt")
	mkfile(t, a)

	cfg := Defaults()
	cfg.Recursive = true
	cfg.Paths = []string{a}
	_, err := ResolveTargets(cfg, NewLogger(false, nil))
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestResolveTargets_RecursiveWalk(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, filepath.Join(dir, "a.txt"))
	mkfile(t, filepath.Join(dir, ".secret"))
	mkfile(t, filepath.Join(dir, "sub", "b.go"))

	var logs bytes.Buffer
	cfg := Defaults()
	cfg.Recursive = true
	cfg.Paths = []string{dir}
	tg, err := ResolveTargets(cfg, NewLogger(true, &logs))
	require.NoError(t, err)
	assert.True(t, tg.Walked)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "sub", "b.go")}, tg.Files)
	assert.Contains(t, logs.String(), "walked directory")
}

func TestResolveTargets_NoPaths(t *testing.T) {
	_, err := ResolveTargets(Defaults(), NewLogger(false, nil))
	assert.Error(t, err)
}

func TestNewLogger_Discard(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(false, &buf).Debug("hidden")
	assert.Empty(t, buf.String())

	NewLogger(true, &buf).Debug("shown", "k", 1)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=1")
}
