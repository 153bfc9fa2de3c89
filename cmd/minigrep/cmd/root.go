package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

// options holds the raw flag values of one invocation.
type options struct {
	ignoreCase    bool
	caseSensitive bool
	before        int
	after         int
	context       int
	stats         bool
	recursive     bool
	include       []string
	exclude       []string
	color         string
	noColor       bool
	configPath    string
	debug         bool

	// ran is set once RunE starts; errors before that are usage errors.
	ran bool
}

func newRootCmd(lookupEnv func(string) (string, bool)) (*cobra.Command, *options) {
	opts := &options{}
	root := &cobra.Command{
		Use:   "minigrep [flags] PATTERN PATH [SECOND_PATH]",
		Short: "Search for patterns in files",
		Long: "Search one or two files, or a directory with -r, for literal text,\n" +
			"pipe-separated alternatives (\"sun|moon\"), or a regular expression.\n\n" +
			"A pattern containing any of * + ? . \\ [ ] ( ) { } ^ $ is a regex.\n" +
			"Set IGNORE_CASE to any value to ignore case by default.",
		Example: "  minigrep to poem.txt\n" +
			"  minigrep to poem.txt -i --stats\n" +
			"  minigrep to poem.txt --context 2\n" +
			"  minigrep to poem.txt sunrise.txt\n" +
			"  minigrep \"test|assert\" dir/ -r --include '*.go'\n" +
			"  minigrep \"\\bw\\w+\" poem.txt",
		Version:       Version,
		Args:          checkArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ran = true
			return runSearch(cmd, opts, args, lookupEnv)
		},
	}

	f := root.Flags()
	f.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Ignore case when searching (alias -ic)")
	f.BoolVarP(&opts.caseSensitive, "case-sensitive", "s", false, "Force case-sensitive search, overriding IGNORE_CASE (alias -cs)")
	f.IntVarP(&opts.before, "before", "B", 0, "Show N lines before each match (alias --b, N defaults to 1)")
	f.IntVarP(&opts.after, "after", "A", 0, "Show N lines after each match (alias --a, N defaults to 1)")
	f.IntVarP(&opts.context, "context", "C", 0, "Show N lines before and after each match (alias --c, N defaults to 1)")
	f.BoolVar(&opts.stats, "stats", false, "Display search statistics (alias --s)")
	f.BoolVarP(&opts.recursive, "recursive", "r", false, "Search all files under a directory (alias --r)")
	f.StringArrayVar(&opts.include, "include", nil, "Only search files matching this glob (repeatable, with -r)")
	f.StringArrayVar(&opts.exclude, "exclude", nil, "Skip files and directories matching this glob (repeatable, with -r)")
	f.StringVar(&opts.color, "color", "auto", "Highlight matches: auto, always, never")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable highlighting")
	f.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/minigrep/config.toml)")
	f.BoolVar(&opts.debug, "debug", false, "Debug logging on stderr (or MINIGREP_DEBUG=1)")

	root.MarkFlagsMutuallyExclusive("before", "after", "context")
	root.MarkFlagsMutuallyExclusive("ignore-case", "case-sensitive")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	return root, opts
}

func checkArgs(_ *cobra.Command, args []string) error {
	if len(args) < 2 {
		return usageError(fmt.Errorf("not enough arguments: need PATTERN and PATH, got %d", len(args)))
	}
	if len(args) > 3 {
		return usageError(fmt.Errorf("too many arguments: at most PATTERN PATH SECOND_PATH, got %d", len(args)))
	}
	return nil
}

// Execute runs the root command on the process arguments.
func Execute() error {
	return execute(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr)
}

func execute(args []string, lookupEnv func(string) (string, bool), stdout, stderr io.Writer) error {
	root, opts := newRootCmd(lookupEnv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(normalizeArgs(args))
	err := root.Execute()
	if err != nil && !opts.ran && ExitCode(err) == ExitRuntime {
		// Flag group violations and similar checks fail before RunE.
		return usageError(err)
	}
	return err
}
