package state

import (
	"sort"
	"strings"

	"github.com/atomicstack/tmux-popup-launcher/internal/index"
)

// MaxSuggestions bounds the candidate list.
const MaxSuggestions = 5

// Rank returns the names in idx that start with prefix, shortest first, at
// most MaxSuggestions of them. Matching is case-sensitive and an empty prefix
// matches every name. Names of equal length are ordered lexicographically.
func Rank(idx *index.Index, prefix string) []string {
	matches := make([]string, 0, MaxSuggestions)
	idx.Each(func(name string) {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	})
	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) < len(matches[j])
		}
		return matches[i] < matches[j]
	})
	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	return matches
}
