package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/corey/minigrep/internal/adapters/ahocorasick"
	"github.com/corey/minigrep/internal/adapters/files"
	"github.com/corey/minigrep/internal/app"
	"github.com/corey/minigrep/internal/domain/search"
	"github.com/corey/minigrep/internal/domain/stats"
	"github.com/corey/minigrep/internal/ports"
)

func runSearch(cmd *cobra.Command, opts *options, args []string, lookupEnv func(string) (string, bool)) error {
	cfg, cfgPath, err := resolveConfig(cmd, opts, args, lookupEnv)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Debug, cmd.ErrOrStderr())
	logger.Debug("config resolved",
		"config", cfgPath,
		"ignore_case", cfg.IgnoreCase,
		"context", cfg.Context.Mode.String(),
		"count", cfg.Context.Count,
		"recursive", cfg.Recursive)

	// Compile before touching any file so an invalid regex aborts cleanly.
	engine := search.NewEngine(ahocorasick.NewScanner)
	q, err := engine.Compile(cfg.Query, cfg.IgnoreCase)
	if err != nil {
		return err
	}
	logger.Debug("query compiled", "query", q.String(), "kind", q.Kind().String())

	targets, err := app.ResolveTargets(cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	useColor := resolveColor(cfg.Color, opts.noColor, out)
	st := stats.New(cfg.Query)
	start := time.Now()

	for _, path := range targets.Files {
		text, err := files.ReadText(path)
		if err != nil {
			if !targets.Walked {
				return err
			}
			if errors.Is(err, files.ErrBinary) || errors.Is(err, files.ErrNotText) {
				logger.Debug("skip non-text file", "path", path, "err", err)
				continue
			}
			fmt.Fprintf(errOut, "Error searching file %s: %v\n", path, err)
			continue
		}

		fileStart := time.Now()
		lines := search.SplitLines(text)
		st.AddFile(len(lines))
		results := q.SearchLines(lines, cfg.Context)
		n := st.AddResults(q, results)
		logger.Debug("searched file",
			"path", path,
			"lines", len(lines),
			"results", len(results),
			"matches", n,
			"elapsed", time.Since(fileStart))

		renderFile(out, path, results, q, useColor, targets.Walked)
	}

	if cfg.Stats {
		st.Finish(start)
		fmt.Fprint(out, st.Format())
	}
	return nil
}

// resolveConfig layers built-in defaults, the config file, the environment
// and finally explicitly set flags. It returns the config file path consulted.
func resolveConfig(cmd *cobra.Command, opts *options, args []string, lookupEnv func(string) (string, bool)) (app.Config, string, error) {
	cfg := app.Defaults()

	home, _ := os.UserHomeDir()
	xdg, _ := lookupEnv("XDG_CONFIG_HOME")
	path, optional := app.ConfigPath(opts.configPath, lookupEnv, app.NewPaths(home, xdg))
	fc, err := app.LoadFile(path, optional)
	if err != nil {
		return cfg, path, err
	}
	if err := cfg.ApplyFile(fc); err != nil {
		return cfg, path, err
	}
	cfg.ApplyEnv(lookupEnv)

	f := cmd.Flags()
	switch {
	case opts.ignoreCase:
		cfg.IgnoreCase = true
	case opts.caseSensitive:
		cfg.IgnoreCase = false
	}

	for _, c := range []struct {
		flag  string
		mode  ports.ContextMode
		count int
	}{
		{"before", ports.ContextBefore, opts.before},
		{"after", ports.ContextAfter, opts.after},
		{"context", ports.ContextAround, opts.context},
	} {
		if !f.Changed(c.flag) {
			continue
		}
		if c.count < 0 {
			return cfg, path, usageError(fmt.Errorf("--%s: count must be non-negative, got %d", c.flag, c.count))
		}
		cfg.Context = ports.ContextSpec{Mode: c.mode, Count: c.count}
	}

	if f.Changed("stats") {
		cfg.Stats = opts.stats
	}
	if f.Changed("include") {
		cfg.Include = opts.include
	}
	if f.Changed("exclude") {
		cfg.Exclude = opts.exclude
	}
	if f.Changed("color") {
		if err := app.ValidateColor(opts.color); err != nil {
			return cfg, path, usageError(err)
		}
		cfg.Color = opts.color
	}
	if opts.debug {
		cfg.Debug = true
	}
	cfg.Recursive = opts.recursive
	cfg.Query = args[0]
	cfg.Paths = args[1:]
	return cfg, path, nil
}
