// Package search is the line search core: it classifies a query, finds the
// matching lines of a text, widens them with context and attributes each
// included line to the patterns it satisfies.
//
// Everything here is pure and single-threaded. A Query is compiled once per
// invocation and then applied to each file in turn.
package search

import (
	"github.com/corey/minigrep/internal/ports"
)

// matcher is implemented by literalMatcher and regexMatcher.
type matcher interface {
	matchLine(line string) bool
	patternsFor(line string) []string
	spans(line string) []ports.MatchSpan
	count(line string, patterns []string) int
}

// Engine compiles queries. It holds the scanner factory used for literal
// queries so the core stays independent of the automaton implementation.
type Engine struct {
	newScanner ports.ScannerFactory
}

// NewEngine creates an engine that builds literal scanners with newScanner.
func NewEngine(newScanner ports.ScannerFactory) *Engine {
	return &Engine{newScanner: newScanner}
}

// Query is a compiled, reusable search query.
type Query struct {
	raw        string
	kind       Kind
	ignoreCase bool
	m          matcher
}

// Compile classifies query and prepares its matcher. A regex-classified query
// that does not compile returns a *PatternError.
func (e *Engine) Compile(query string, ignoreCase bool) (*Query, error) {
	c := Classify(query)
	q := &Query{raw: query, kind: c.Kind, ignoreCase: ignoreCase}

	switch c.Kind {
	case KindRegex:
		m, err := newRegexMatcher(c.Patterns[0], ignoreCase)
		if err != nil {
			return nil, err
		}
		q.m = m
	default:
		q.m = newLiteralMatcher(c.Patterns, ignoreCase, e.newScanner)
	}
	return q, nil
}

// Search compiles query and runs it over text in one call.
func (e *Engine) Search(query, text string, opts ports.SearchOptions) ([]ports.SearchResult, error) {
	q, err := e.Compile(query, opts.IgnoreCase)
	if err != nil {
		return nil, err
	}
	return q.Search(text, opts.Context), nil
}

// String returns the query as supplied.
func (q *Query) String() string { return q.raw }

// Kind reports how the query is matched.
func (q *Query) Kind() Kind { return q.kind }

// IgnoreCase reports whether the query was compiled case-insensitively.
func (q *Query) IgnoreCase() bool { return q.ignoreCase }

// Search returns the included lines of text, ascending and without duplicates.
// Empty text yields no results.
func (q *Query) Search(text string, ctx ports.ContextSpec) []ports.SearchResult {
	return q.SearchLines(SplitLines(text), ctx)
}

// SearchLines is Search over text that has already been split into lines.
func (q *Query) SearchLines(lines []string, ctx ports.ContextSpec) []ports.SearchResult {
	matched := q.MatchLines(lines)
	included := Expand(matched, ctx, len(lines))
	return Assemble(lines, included, q.m.patternsFor)
}

// MatchLines returns the indices of the lines that match directly, before
// any context is added.
func (q *Query) MatchLines(lines []string) LineSet {
	matched := make(LineSet)
	for i, line := range lines {
		if q.m.matchLine(line) {
			matched.Add(i)
		}
	}
	return matched
}

// PatternsFor lists the patterns that match line on its own.
func (q *Query) PatternsFor(line string) []string {
	return q.m.patternsFor(line)
}

// LineSpans returns the raw, unmerged match spans of line.
func (q *Query) LineSpans(line string) []ports.MatchSpan {
	return q.m.spans(line)
}

// Highlight returns the merged spans to highlight for a result. Context lines
// have none.
func (q *Query) Highlight(r ports.SearchResult) []ports.MatchSpan {
	if !r.IsMatch() {
		return nil
	}
	return MergeSpans(q.m.spans(r.Content))
}

// CountOccurrences counts individual pattern occurrences on a result line,
// every occurrence rather than one per line. Context lines count zero.
func (q *Query) CountOccurrences(r ports.SearchResult) int {
	if !r.IsMatch() {
		return 0
	}
	return q.m.count(r.Content, r.Patterns)
}
