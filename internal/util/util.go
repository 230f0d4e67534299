package util

import (
	"sort"
	"strings"
)

// MakeTextList gives a nice human-readable list of the given items, with an
// oxford comma once there are more than two.
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}

	if len(items) == 1 {
		return items[0]
	}
	if len(items) == 2 {
		return items[0] + " and " + items[1]
	}

	listed := make([]string, len(items))
	copy(listed, items)
	listed[len(listed)-1] = "and " + listed[len(listed)-1]
	return strings.Join(listed, ", ")
}

// OrderedKeys returns the keys of m, ordered a particular way. The order is
// guaranteed to be the same on every run.
//
// As of this writing, the order is alphabetical, but this function does not
// guarantee this will always be the case.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))

	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// DedupOrdered returns a copy of items with every duplicate removed. The first
// appearance of each item is kept and relative order is preserved.
func DedupOrdered(items []string) []string {
	seen := NewStringSet()
	kept := make([]string, 0, len(items))

	for _, item := range items {
		if seen.Has(item) {
			continue
		}
		seen.Add(item)
		kept = append(kept, item)
	}

	return kept
}
