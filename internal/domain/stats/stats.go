// Package stats aggregates per-invocation search statistics across files.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/corey/minigrep/internal/ports"
)

// Counter counts pattern occurrences on a result line. *search.Query satisfies it.
type Counter interface {
	CountOccurrences(r ports.SearchResult) int
}

// Stats accumulates totals while files are searched one after another.
// It is not safe for concurrent use; the search loop is sequential.
type Stats struct {
	Query         string
	FilesSearched int
	TotalLines    int
	TotalMatches  int
	Duration      time.Duration
}

// New returns empty statistics for query.
func New(query string) *Stats {
	return &Stats{Query: query}
}

// AddFile records one searched file with the given number of lines.
func (s *Stats) AddFile(lines int) {
	s.FilesSearched++
	s.TotalLines += lines
}

// AddResults adds every pattern occurrence found on the matched lines of one
// file. Context lines contribute nothing.
func (s *Stats) AddResults(c Counter, results []ports.SearchResult) int {
	n := 0
	for _, r := range results {
		n += c.CountOccurrences(r)
	}
	s.TotalMatches += n
	return n
}

// Finish stamps the elapsed wall-clock time since start.
func (s *Stats) Finish(start time.Time) {
	s.Duration = time.Since(start)
}

// Format renders the statistics block.
//
//	--- Search Statistics ---
//	Pattern searched: 'query'
//	Files searched: 2
//	...
func (s *Stats) Format() string {
	var sb strings.Builder
	sb.WriteString("\n--- Search Statistics ---\n")
	fmt.Fprintf(&sb, "Pattern searched: '%s'\n", s.Query)
	fmt.Fprintf(&sb, "Files searched: %d\n", s.FilesSearched)
	fmt.Fprintf(&sb, "Total lines searched: %d\n", s.TotalLines)
	fmt.Fprintf(&sb, "Matches found: %d\n", s.TotalMatches)
	fmt.Fprintf(&sb, "Search completed in: %s\n", formatDuration(s.Duration))
	sb.WriteString("------------------------\n")
	return sb.String()
}

// formatDuration rounds to two decimals in the most natural unit.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.2fµs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
