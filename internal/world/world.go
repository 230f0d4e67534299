// Package world defines the fixed catalog of game objects that input is
// resolved against, along with the word lists and indexes derived from it.
package world

import (
	"fmt"
	"strings"

	"github.com/dekarrin/minq/internal/util"
)

// GameObject is a single object in the game world. It is named by an ordered
// multi-word descriptor whose last word is its noun and whose preceding words
// are its adjectives, and it carries a kind tag such as "item" or
// "container". GameObjects are immutable once created.
type GameObject struct {
	words   []string
	wordSet util.StringSet
	kind    string
}

// NewObject creates a GameObject from a space-separated descriptor and a kind
// tag. The descriptor must contain at least one word and the kind must not be
// blank.
func NewObject(descriptor string, kind string) (GameObject, error) {
	words := strings.Fields(descriptor)
	if len(words) < 1 {
		return GameObject{}, fmt.Errorf("descriptor is empty")
	}
	if strings.TrimSpace(kind) == "" {
		return GameObject{}, fmt.Errorf("object %q: kind is empty", descriptor)
	}

	return GameObject{
		words:   words,
		wordSet: util.NewStringSet(words...),
		kind:    kind,
	}, nil
}

// MustNewObject is like NewObject but panics on a malformed definition. It is
// intended for compiled-in world definitions.
func MustNewObject(descriptor string, kind string) GameObject {
	g, err := NewObject(descriptor, kind)
	if err != nil {
		panic(err.Error())
	}
	return g
}

// Descriptor returns the full descriptor of the object, its words joined by
// single spaces.
func (g GameObject) Descriptor() string {
	return strings.Join(g.words, " ")
}

// Noun returns the noun of the object, which is always the last word of its
// descriptor.
func (g GameObject) Noun() string {
	return g.words[len(g.words)-1]
}

// Adjectives returns every word of the descriptor except the noun, in
// descriptor order.
func (g GameObject) Adjectives() []string {
	adjs := make([]string, len(g.words)-1)
	copy(adjs, g.words[:len(g.words)-1])
	return adjs
}

// Kind returns the kind tag of the object.
func (g GameObject) Kind() string {
	return g.kind
}

// HasWords returns whether every one of the given words appears somewhere in
// the object's descriptor, in any order.
func (g GameObject) HasWords(words []string) bool {
	return g.wordSet.HasAll(words)
}

func (g GameObject) String() string {
	return fmt.Sprintf("GameObject(%q, %s)", g.Descriptor(), g.kind)
}

// Catalog is an immutable table of game objects together with everything
// derived from it. All derived lists are duplicate-free and sorted ascending.
type Catalog struct {
	objects    []GameObject
	byNoun     map[string][]GameObject
	adjectives []string
	nouns      []string
	kinds      []string
}

// NewCatalog creates a Catalog from the given objects and computes all of its
// derived lists. The objects are kept in the given order, which is preserved
// by ObjectsByNoun.
func NewCatalog(objects []GameObject) Catalog {
	c := Catalog{
		objects: make([]GameObject, len(objects)),
		byNoun:  make(map[string][]GameObject),
	}
	copy(c.objects, objects)

	adjSet := util.NewStringSet()
	nounSet := util.NewStringSet()
	kindSet := util.NewStringSet()

	for _, g := range c.objects {
		adjSet.AddAll(g.Adjectives())
		nounSet.Add(g.Noun())
		kindSet.Add(g.Kind())
		c.byNoun[g.Noun()] = append(c.byNoun[g.Noun()], g)
	}

	c.adjectives = adjSet.Elements()
	c.nouns = nounSet.Elements()
	c.kinds = kindSet.Elements()

	return c
}

// Objects returns every object of the catalog in catalog order.
func (c Catalog) Objects() []GameObject {
	objs := make([]GameObject, len(c.objects))
	copy(objs, c.objects)
	return objs
}

// ObjectsByNoun returns every object whose descriptor ends in the given noun,
// in catalog order. There may be zero, one, or several.
func (c Catalog) ObjectsByNoun(noun string) []GameObject {
	objs := c.byNoun[noun]
	out := make([]GameObject, len(objs))
	copy(out, objs)
	return out
}

// IsNoun returns whether the given word is the noun of at least one object.
func (c Catalog) IsNoun(word string) bool {
	return len(c.byNoun[word]) > 0
}

// Adjectives returns every non-noun descriptor word across all objects,
// duplicate-free and sorted.
func (c Catalog) Adjectives() []string {
	out := make([]string, len(c.adjectives))
	copy(out, c.adjectives)
	return out
}

// Nouns returns the noun of every object, duplicate-free and sorted.
func (c Catalog) Nouns() []string {
	out := make([]string, len(c.nouns))
	copy(out, c.nouns)
	return out
}

// Kinds returns every kind tag across all objects, duplicate-free and sorted.
func (c Catalog) Kinds() []string {
	out := make([]string, len(c.kinds))
	copy(out, c.kinds)
	return out
}

// Default returns the compiled-in game world.
func Default() Catalog {
	return NewCatalog([]GameObject{
		MustNewObject("small green frog", "item"),
		MustNewObject("very small tree frog", "item"),
		MustNewObject("wooden table", "supporter"),
		MustNewObject("cardboard box", "container"),
		MustNewObject("north", "direction"),
		MustNewObject("south", "direction"),
		MustNewObject("east", "direction"),
		MustNewObject("west", "direction"),
	})
}
