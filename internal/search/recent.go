package search

import (
	"slices"
	"strings"
)

const MaxRecent = 10

// Push puts term at the front of recent, dropping an earlier copy and
// anything past MaxRecent. Blank terms leave the list unchanged.
func Push(recent []string, term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return slices.Clone(recent)
	}

	out := make([]string, 0, MaxRecent)
	out = append(out, term)
	for _, r := range recent {
		if len(out) == MaxRecent {
			break
		}
		if r != term {
			out = append(out, r)
		}
	}
	return out
}
