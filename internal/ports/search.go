// Package ports defines the contracts shared between the search core, its
// adapters and the command layer. Domain logic depends only on these types,
// never on concrete implementations.
package ports

import "fmt"

// ContextMode selects which neighbouring lines are pulled in around a match.
type ContextMode int

const (
	ContextNone ContextMode = iota
	ContextBefore
	ContextAfter
	ContextAround // before and after
)

// String returns the flag spelling of the mode.
func (m ContextMode) String() string {
	switch m {
	case ContextBefore:
		return "before"
	case ContextAfter:
		return "after"
	case ContextAround:
		return "context"
	default:
		return "none"
	}
}

// ParseContextMode is the inverse of String. The empty string means none.
func ParseContextMode(s string) (ContextMode, error) {
	switch s {
	case "", "none":
		return ContextNone, nil
	case "before":
		return ContextBefore, nil
	case "after":
		return ContextAfter, nil
	case "context", "around":
		return ContextAround, nil
	}
	return ContextNone, fmt.Errorf("unknown context mode %q", s)
}

// ContextSpec pairs a mode with its line count. A zero count behaves as
// ContextNone whatever the mode.
type ContextSpec struct {
	Mode  ContextMode
	Count int
}

// Active reports whether c adds any lines at all.
func (c ContextSpec) Active() bool {
	return c.Mode != ContextNone && c.Count > 0
}

// SearchOptions controls a single search call.
type SearchOptions struct {
	Context    ContextSpec
	IgnoreCase bool
}

// SearchResult is one included line: a match, a context line, or both.
//
// LineNumber is zero-based; displays add one. Patterns lists the query
// patterns that match this exact line and is empty for pure context lines.
type SearchResult struct {
	LineNumber int      `json:"line_number"`
	Content    string   `json:"content"`
	Patterns   []string `json:"patterns,omitempty"`
}

// IsMatch reports whether the line itself matched (as opposed to being context).
func (r SearchResult) IsMatch() bool { return len(r.Patterns) > 0 }

// MatchSpan marks one highlighted byte range [Start, End) within a line.
type MatchSpan struct {
	Start int
	End   int
}
