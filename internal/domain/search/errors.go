package search

import "fmt"

// PatternError reports a regex-classified query that failed to compile.
// It aborts the search; it is never turned into an empty result.
type PatternError struct {
	Pattern string // the query as supplied by the caller
	Err     error  // the compiler diagnostic
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying compiler error for errors.Is/As.
func (e *PatternError) Unwrap() error {
	return e.Err
}
