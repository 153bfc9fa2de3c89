package search

import "github.com/corey/minigrep/internal/ports"

// Expand returns the matched lines plus the context window around each,
// clamped to [0, totalLines). The input set is not modified.
//
// A zero count adds nothing under any mode. Windows from neighbouring matches
// overlap freely; the set keeps each line once.
func Expand(matched LineSet, ctx ports.ContextSpec, totalLines int) LineSet {
	included := make(LineSet, len(matched))
	for l := range matched {
		if l >= 0 && l < totalLines {
			included.Add(l)
		}
	}
	if !ctx.Active() {
		return included
	}

	before := ctx.Mode == ports.ContextBefore || ctx.Mode == ports.ContextAround
	after := ctx.Mode == ports.ContextAfter || ctx.Mode == ports.ContextAround

	for l := range matched {
		if l < 0 || l >= totalLines {
			continue
		}
		first, last := l, l
		if before {
			first = max(0, l-ctx.Count)
		}
		if after {
			last = min(totalLines-1, l+ctx.Count)
		}
		for i := first; i <= last; i++ {
			included.Add(i)
		}
	}
	return included
}
