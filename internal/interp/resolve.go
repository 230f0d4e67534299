package interp

import (
	"github.com/dekarrin/minq/internal/grammar"
	"github.com/dekarrin/minq/internal/world"
)

// matchingObjects returns every game object that the given slot span could
// name, in catalog order. An object qualifies when its descriptor ends in the
// span's last word and its descriptor words are a superset of the span's
// words; adjectives may be given partially and in any order, but the noun is
// required. So "table", "wooden table", and "table wooden" all name a "solid
// wooden table", while "solid wooden" does not.
func (it *Interpreter) matchingObjects(span []string) []world.GameObject {
	noun := span[len(span)-1]

	var matched []world.GameObject
	for _, g := range it.world.ObjectsByNoun(noun) {
		if g.HasWords(span) {
			matched = append(matched, g)
		}
	}

	return matched
}

// filterKind narrows candidates to those of the given slot kind. The
// "object" kind accepts candidates of any kind.
func filterKind(candidates []world.GameObject, kind string) []world.GameObject {
	if kind == grammar.KindAnyObject {
		return candidates
	}

	var kept []world.GameObject
	for _, g := range candidates {
		if g.Kind() == kind {
			kept = append(kept, g)
		}
	}

	return kept
}
