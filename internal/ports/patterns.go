package ports

// PatternScanner finds literal patterns in a line using multi-pattern matching
// (Aho-Corasick). A single pass over the line reports every occurrence of every
// pattern, overlapping occurrences included, so "aa" in "aaa" yields two matches.
//
// The scanner is built once per query and reused for every line of every file.
// Content is matched as-is: the caller folds case on both sides before scanning.
type PatternScanner interface {
	// Scan returns all occurrences of all patterns in line, ordered by end
	// offset after any zero-width empty-pattern hits. Returns nil if nothing
	// matches.
	Scan(line string) []TextMatch

	// Contains reports whether any pattern occurs in line. Cheaper than Scan
	// because it stops at the first hit.
	Contains(line string) bool
}

// ScannerFactory builds a PatternScanner for the given (already folded) patterns.
// Empty patterns are legal and match every line at offset 0 with zero width.
type ScannerFactory func(patterns []string) PatternScanner

// TextMatch is one pattern occurrence inside a scanned line.
type TextMatch struct {
	PatternIndex int // index into the patterns slice given to the factory
	Start        int // byte offset start (inclusive)
	End          int // byte offset end (exclusive)
}
