package cmd

import (
	"strconv"
	"strings"
)

// aliases maps legacy spellings onto their cobra flags.
var aliases = map[string]string{
	"-ic": "-i",
	"-cs": "-s",
	"--s": "--stats",
	"--r": "--recursive",
	"--b": "--before",
	"--a": "--after",
	"--c": "--context",
}

// countFlags take an optional line count that defaults to 1.
var countFlags = map[string]bool{
	"--before":  true,
	"--after":   true,
	"--context": true,
	"-B":        true,
	"-A":        true,
	"-C":        true,
}

// normalizeArgs rewrites legacy aliases and makes the context count optional:
// a context flag not followed by a non-negative integer gets "=1". Arguments
// after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}

		name, value, hasValue := strings.Cut(a, "=")
		if to, ok := aliases[name]; ok {
			name = to
		}
		if !countFlags[name] {
			if hasValue {
				out = append(out, name+"="+value)
			} else {
				out = append(out, name)
			}
			continue
		}

		switch {
		case hasValue:
			out = append(out, name+"="+value)
		case i+1 < len(args) && isCount(args[i+1]):
			out = append(out, name, args[i+1])
			i++
		default:
			out = append(out, name+"=1")
		}
	}
	return out
}

func isCount(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0
}
