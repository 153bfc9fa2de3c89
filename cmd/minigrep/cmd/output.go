package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/corey/minigrep/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
)

// highlighter returns the merged spans to emphasise on a result line.
// *search.Query satisfies it.
type highlighter interface {
	Highlight(r ports.SearchResult) []ports.MatchSpan
}

// renderFile writes the results for one file.
//
//	Matches in poem.txt:
//	Line 2: How dreary to be somebody!
//
// Empty results print "<path>: No matches found." unless quietEmpty is set.
func renderFile(w io.Writer, path string, results []ports.SearchResult, h highlighter, useColor, quietEmpty bool) {
	if len(results) == 0 {
		if !quietEmpty {
			fmt.Fprintf(w, "%s: No matches found.\n", path)
		}
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matches in %s:\n", path)
	for _, r := range results {
		fmt.Fprintf(&sb, "Line %d: ", r.LineNumber+1)
		if useColor {
			writeHighlighted(&sb, r.Content, h.Highlight(r))
		} else {
			sb.WriteString(r.Content)
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// writeHighlighted alternates plain and bold cyan runs. spans must be sorted
// and non-overlapping.
func writeHighlighted(sb *strings.Builder, line string, spans []ports.MatchSpan) {
	last := 0
	for _, s := range spans {
		if s.Start < last || s.End > len(line) {
			continue
		}
		sb.WriteString(line[last:s.Start])
		sb.WriteString(colorBold + colorCyan)
		sb.WriteString(line[s.Start:s.End])
		sb.WriteString(colorReset)
		last = s.End
	}
	sb.WriteString(line[last:])
}
