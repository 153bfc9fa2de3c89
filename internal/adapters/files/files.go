// Package files reads searchable text from disk and expands directories into
// file lists. Include/exclude filters use github.com/bmatcuk/doublestar/v4 globs.
package files

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrBinary is returned by ReadText for files that look binary.
	ErrBinary = errors.New("binary file")
	// ErrNotText is returned by ReadText for files that are not valid UTF-8.
	ErrNotText = errors.New("not valid UTF-8 text")
)

// sniffLen is how many leading bytes are checked for a NUL byte.
const sniffLen = 512

// ReadText reads the whole file into memory. The file handle is released
// before the content is returned.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if bytes.IndexByte(data[:min(len(data), sniffLen)], 0) >= 0 {
		return "", fmt.Errorf("%s: %w", path, ErrBinary)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrNotText)
	}
	return string(data), nil
}

// Walker collects the regular files under a directory.
type Walker struct {
	// Include keeps only files matching at least one glob. Empty keeps all.
	Include []string
	// Exclude drops files and prunes directories matching any glob.
	Exclude []string
	// SkipHidden drops entries whose name starts with a dot.
	SkipHidden bool
	// Logger receives debug events for skipped entries. May be nil.
	Logger *slog.Logger
}

// Validate checks that every glob is well formed.
func (w *Walker) Validate() error {
	for _, p := range append(append([]string{}, w.Include...), w.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return nil
}

// Walk returns the files under root in lexical order. Globs are matched against
// the slash-separated path relative to root and against the base name, so
// "*.go" selects Go files at any depth. Unreadable subdirectories are skipped;
// an unreadable root is an error.
func (w *Walker) Walk(root string) ([]string, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			w.debug("skip unreadable", path, walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if w.SkipHidden && strings.HasPrefix(d.Name(), ".") {
			w.debug("skip hidden", path, nil)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if matchAny(w.Exclude, rel, d.Name()) {
			w.debug("skip excluded", path, nil)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if len(w.Include) > 0 && !matchAny(w.Include, rel, d.Name()) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (w *Walker) debug(msg, path string, err error) {
	if w.Logger == nil {
		return
	}
	if err != nil {
		w.Logger.Debug(msg, "path", path, "err", err)
		return
	}
	w.Logger.Debug(msg, "path", path)
}

// matchAny reports whether rel or base matches one of the patterns.
// Patterns are validated up front, so match errors cannot occur.
func matchAny(patterns []string, rel, base string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}
