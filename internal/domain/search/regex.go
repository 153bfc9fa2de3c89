package search

import (
	"regexp"

	"github.com/corey/minigrep/internal/ports"
)

// regexMatcher matches a single compiled regular expression. The query string
// itself is the only pattern it ever attributes to a line.
type regexMatcher struct {
	pattern string
	re      *regexp.Regexp
}

func newRegexMatcher(pattern string, ignoreCase bool) (*regexMatcher, error) {
	expr := pattern
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &regexMatcher{pattern: pattern, re: re}, nil
}

func (m *regexMatcher) matchLine(line string) bool {
	return m.re.MatchString(line)
}

func (m *regexMatcher) patternsFor(line string) []string {
	if !m.re.MatchString(line) {
		return nil
	}
	return []string{m.pattern}
}

// spans takes successive non-overlapping leftmost-first matches. Empty
// matches carry nothing to highlight and are dropped.
func (m *regexMatcher) spans(line string) []ports.MatchSpan {
	var out []ports.MatchSpan
	for _, loc := range m.re.FindAllStringIndex(line, -1) {
		if loc[1] > loc[0] {
			out = append(out, ports.MatchSpan{Start: loc[0], End: loc[1]})
		}
	}
	return out
}

func (m *regexMatcher) count(line string, _ []string) int {
	return len(m.re.FindAllStringIndex(line, -1))
}
