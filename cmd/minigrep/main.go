// minigrep searches files for literal text, pipe-separated alternatives, or a
// regular expression, with optional context lines and statistics.
package main

import (
	"fmt"
	"os"

	"github.com/corey/minigrep/cmd/minigrep/cmd"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}
	code := cmd.ExitCode(err)
	if code == cmd.ExitUsage {
		fmt.Fprintf(os.Stderr, "Problem parsing arguments: %v\n", err)
		fmt.Fprintln(os.Stderr, "\nFor help, use --help or -h")
	} else {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		fmt.Fprintln(os.Stderr, "\nTo see available options, use --help or -h")
	}
	os.Exit(code)
}
