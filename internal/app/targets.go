package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/corey/minigrep/internal/adapters/files"
)

var (
	// ErrNotADirectory is returned when --recursive is given a file.
	ErrNotADirectory = errors.New("recursive search needs a directory")
	// ErrIsADirectory is returned when a directory is given without --recursive.
	ErrIsADirectory = errors.New("is a directory (use -r to search it)")
)

// Targets holds the files one invocation searches.
type Targets struct {
	Files []string
	// Walked is true when Files came from a directory walk. Per-file read
	// errors are then reported and skipped instead of aborting.
	Walked bool
}

// ResolveTargets checks that every path exists before any file is read and
// expands a directory when Recursive is set.
func ResolveTargets(cfg Config, logger *slog.Logger) (*Targets, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("no file to search")
	}
	infos := make([]os.FileInfo, len(cfg.Paths))
	for i, p := range cfg.Paths {
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("file not found: %s", p)
			}
			return nil, err
		}
		infos[i] = info
	}

	if cfg.Recursive {
		if len(cfg.Paths) != 1 {
			return nil, errors.New("recursive search takes exactly one directory")
		}
		if !infos[0].IsDir() {
			return nil, fmt.Errorf("%s: %w", cfg.Paths[0], ErrNotADirectory)
		}
		w := &files.Walker{
			Include:    cfg.Include,
			Exclude:    cfg.Exclude,
			SkipHidden: cfg.SkipHidden,
			Logger:     logger,
		}
		found, err := w.Walk(cfg.Paths[0])
		if err != nil {
			return nil, err
		}
		logger.Debug("walked directory", "root", cfg.Paths[0], "files", len(found))
		return &Targets{Files: found, Walked: true}, nil
	}

	for i, info := range infos {
		if info.IsDir() {
			return nil, fmt.Errorf("%s: %w", cfg.Paths[i], ErrIsADirectory)
		}
	}
	return &Targets{Files: append([]string(nil), cfg.Paths...)}, nil
}
