package search

import (
	"sort"

	"github.com/corey/minigrep/internal/ports"
)

// Assemble builds the ordered result list for the included lines.
//
// patternsFor is evaluated against each line's own content rather than
// inherited from the match that pulled it in: a line can be a match for one
// pattern and context for another match elsewhere at the same time.
func Assemble(lines []string, included LineSet, patternsFor func(line string) []string) []ports.SearchResult {
	if len(included) == 0 {
		return nil
	}
	results := make([]ports.SearchResult, 0, len(included))
	for _, n := range included.Sorted() {
		if n < 0 || n >= len(lines) {
			continue
		}
		results = append(results, ports.SearchResult{
			LineNumber: n,
			Content:    lines[n],
			Patterns:   patternsFor(lines[n]),
		})
	}
	return results
}

// MergeSpans sorts spans by start and coalesces the ones that overlap or
// touch, giving the minimal ascending cover used to alternate plain and
// highlighted runs. The input slice is left untouched.
func MergeSpans(spans []ports.MatchSpan) []ports.MatchSpan {
	if len(spans) == 0 {
		return nil
	}
	sorted := make([]ports.MatchSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := []ports.MatchSpan{sorted[0]}
	for _, s := range sorted[1:] {
		cur := &merged[len(merged)-1]
		if s.Start <= cur.End {
			cur.End = max(cur.End, s.End)
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
