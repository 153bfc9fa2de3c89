// Package ahocorasick provides multi-pattern string matching using an Aho-Corasick automaton.
// It wraps the petar-dambovaliev/aho-corasick library for O(n + m + z) matching.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/minigrep/internal/ports"
)

// Scanner implements ports.PatternScanner over a compiled automaton.
//
// Empty patterns never enter the automaton. They match every line with a
// single zero-width hit at offset 0, which is enough for pattern attribution
// and contributes nothing to highlighting.
type Scanner struct {
	automaton aho.AhoCorasick
	built     bool
	patterns  []string
	index     []int // automaton pattern id -> index into patterns
	empty     []int // indices of empty patterns
}

var _ ports.PatternScanner = (*Scanner)(nil)

// NewScanner builds a scanner from the given patterns.
func NewScanner(patterns []string) ports.PatternScanner {
	s := &Scanner{patterns: make([]string, len(patterns))}
	copy(s.patterns, patterns)

	var keywords []string
	for i, p := range s.patterns {
		if p == "" {
			s.empty = append(s.empty, i)
			continue
		}
		keywords = append(keywords, p)
		s.index = append(s.index, i)
	}
	if len(keywords) > 0 {
		builder := aho.NewAhoCorasickBuilder(aho.Opts{
			DFA: true,
		})
		s.automaton = builder.Build(keywords)
		s.built = true
	}
	return s
}

// Scan finds all pattern occurrences in line, overlapping ones included.
func (s *Scanner) Scan(line string) []ports.TextMatch {
	var matches []ports.TextMatch
	for _, idx := range s.empty {
		matches = append(matches, ports.TextMatch{PatternIndex: idx})
	}
	if !s.built || line == "" {
		return matches
	}
	iter := s.automaton.IterOverlappingByte([]byte(line))
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		matches = append(matches, ports.TextMatch{
			PatternIndex: s.index[m.Pattern()],
			Start:        m.Start(),
			End:          m.End(),
		})
	}
	return matches
}

// Contains reports whether any pattern occurs in line.
func (s *Scanner) Contains(line string) bool {
	if len(s.empty) > 0 {
		return true
	}
	if !s.built || line == "" {
		return false
	}
	return s.automaton.IterOverlappingByte([]byte(line)).Next() != nil
}
