package search

import (
	"strings"

	"github.com/corey/minigrep/internal/ports"
)

// literalMatcher matches a set of plain substrings.
//
// Lines and patterns go through the same fold (strings.ToLower) when ignoring
// case. Spans are found in the folded line and reused as offsets into the
// original, which holds as long as folding keeps the byte length; lines where
// it does not are still matched but left unhighlighted.
type literalMatcher struct {
	patterns   []string // as supplied, de-duplicated, query order
	folded     []string // patterns[i] after folding
	ignoreCase bool
	scanner    ports.PatternScanner
}

func newLiteralMatcher(patterns []string, ignoreCase bool, newScanner ports.ScannerFactory) *literalMatcher {
	m := &literalMatcher{ignoreCase: ignoreCase}
	seen := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		if seen[p] {
			continue
		}
		seen[p] = true
		m.patterns = append(m.patterns, p)
		m.folded = append(m.folded, m.fold(p))
	}
	m.scanner = newScanner(m.folded)
	return m
}

func (m *literalMatcher) fold(s string) string {
	if m.ignoreCase {
		return strings.ToLower(s)
	}
	return s
}

func (m *literalMatcher) matchLine(line string) bool {
	return m.scanner.Contains(m.fold(line))
}

// patternsFor re-checks which patterns occur in this exact line. A line can
// satisfy several alternatives at once.
func (m *literalMatcher) patternsFor(line string) []string {
	hits := m.scanner.Scan(m.fold(line))
	if len(hits) == 0 {
		return nil
	}
	found := make([]bool, len(m.patterns))
	for _, h := range hits {
		found[h.PatternIndex] = true
	}
	out := make([]string, 0, len(m.patterns))
	for i, p := range m.patterns {
		if found[i] {
			out = append(out, p)
		}
	}
	return out
}

// spans returns every occurrence of every pattern, overlapping self-matches
// included ("aa" in "aaa" gives two spans).
func (m *literalMatcher) spans(line string) []ports.MatchSpan {
	folded := m.fold(line)
	if len(folded) != len(line) {
		return nil
	}
	var out []ports.MatchSpan
	for _, h := range m.scanner.Scan(folded) {
		if h.End > h.Start {
			out = append(out, ports.MatchSpan{Start: h.Start, End: h.End})
		}
	}
	return out
}

// count tallies non-overlapping occurrences of each listed pattern. The empty
// pattern counts once per line.
func (m *literalMatcher) count(line string, patterns []string) int {
	folded := m.fold(line)
	n := 0
	for _, p := range patterns {
		fp := m.fold(p)
		if fp == "" {
			n++
			continue
		}
		n += strings.Count(folded, fp)
	}
	return n
}
