package search

import "strings"

// regexIndicators are the characters that turn a query into a regular expression.
// A query containing none of them is searched as one or more literal substrings.
const regexIndicators = `*+?.\[](){}^$`

// Kind tells how a query is matched.
type Kind int

const (
	KindLiteral Kind = iota
	KindRegex
)

func (k Kind) String() string {
	if k == KindRegex {
		return "regex"
	}
	return "literal"
}

// Classification is the outcome of Classify.
//
// For KindRegex, Patterns holds the query verbatim as its only element.
// For KindLiteral, Patterns holds the pipe-separated alternatives, trimmed.
type Classification struct {
	Kind     Kind
	Patterns []string
}

// Classify decides whether query is a regex or a set of literal substrings.
//
// Pipes are only split for literal queries; inside a regex they are alternation.
// The empty query is a single empty literal, which matches every line.
func Classify(query string) Classification {
	if strings.ContainsAny(query, regexIndicators) {
		return Classification{Kind: KindRegex, Patterns: []string{query}}
	}
	if !strings.Contains(query, "|") {
		return Classification{Kind: KindLiteral, Patterns: []string{query}}
	}

	parts := strings.Split(query, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return Classification{Kind: KindLiteral, Patterns: parts}
}
