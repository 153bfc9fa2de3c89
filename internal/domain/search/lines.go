package search

import (
	"sort"
	"strings"
)

// SplitLines splits text into lines on '\n'.
//
// A single trailing newline does not produce an empty last line, a trailing
// '\r' is dropped from each line, and empty text has no lines at all.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// LineSet is a set of zero-based line indices. Insertion is idempotent, so
// overlapping context windows merge without a separate pass.
type LineSet map[int]struct{}

// Add inserts a line index.
func (s LineSet) Add(line int) { s[line] = struct{}{} }

// Has reports membership.
func (s LineSet) Has(line int) bool {
	_, ok := s[line]
	return ok
}

// Sorted returns the members in ascending order.
func (s LineSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}
