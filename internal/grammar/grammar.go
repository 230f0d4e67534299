// Package grammar defines the template grammar of the interpreter: the fixed
// table of command patterns that player input is matched against, along with
// the word lists and identifiers derived from it.
package grammar

import (
	"github.com/dekarrin/minq/internal/util"
)

// Catalog is an immutable table of grammar templates together with everything
// derived from them. All derived lists except Prepositions are duplicate-free
// and sorted ascending; the preposition list instead preserves the order of
// first appearance across the templates.
type Catalog struct {
	templates    []Template
	byVerb       map[string][]Template
	verbs        []string
	prepositions []string
	actions      []string
	slotKinds    []string
	errorCodes   []string
}

// NewCatalog creates a Catalog from the given templates and computes all of
// its derived lists. The templates are kept in the given order, which decides
// both matching priority and preposition order.
func NewCatalog(templates []Template) Catalog {
	c := Catalog{
		templates: make([]Template, len(templates)),
		byVerb:    make(map[string][]Template),
	}
	copy(c.templates, templates)

	verbSet := util.NewStringSet()
	actionSet := util.NewStringSet()
	kindSet := util.NewStringSet()
	errSet := util.NewStringSet()
	var preps []string

	for _, t := range c.templates {
		verb := t.Verb()
		verbSet.Add(verb)
		actionSet.Add(t.Action())
		c.byVerb[verb] = append(c.byVerb[verb], t)

		for _, tok := range t.Tokens()[1:] {
			if !tok.IsSlot() {
				preps = append(preps, tok.Word)
			}
		}

		for _, kind := range t.Slots() {
			kindSet.Add(kind)

			// an "object" slot accepts any game object, so there is no
			// wrong-kind error for it
			if kind != KindAnyObject {
				errSet.Add(t.Action() + "_non_" + kind)
			}
		}
	}

	c.verbs = verbSet.Elements()
	c.prepositions = util.DedupOrdered(preps)
	c.actions = actionSet.Elements()
	c.slotKinds = kindSet.Elements()
	c.errorCodes = errSet.Elements()

	return c
}

// KindAnyObject is the slot kind that accepts a game object of any kind.
const KindAnyObject = "object"

// Templates returns every template of the catalog in catalog order.
func (c Catalog) Templates() []Template {
	ts := make([]Template, len(c.templates))
	copy(ts, c.templates)
	return ts
}

// TemplatesForVerb returns every template whose verb is the given word, in
// catalog order. The returned slice is empty if the verb is not in the
// grammar.
func (c Catalog) TemplatesForVerb(verb string) []Template {
	ts := c.byVerb[verb]
	out := make([]Template, len(ts))
	copy(out, ts)
	return out
}

// Verbs returns the verbs of all templates, duplicate-free and sorted.
func (c Catalog) Verbs() []string {
	return copyStrings(c.verbs)
}

// IsVerb returns whether the given word is the verb of at least one template.
func (c Catalog) IsVerb(word string) bool {
	return len(c.byVerb[word]) > 0
}

// Prepositions returns every literal non-verb word of the templates,
// duplicate-free, in order of first appearance.
func (c Catalog) Prepositions() []string {
	return copyStrings(c.prepositions)
}

// Actions returns the action identifiers of all templates, duplicate-free and
// sorted.
func (c Catalog) Actions() []string {
	return copyStrings(c.actions)
}

// SlotKinds returns every slot kind named by the templates, duplicate-free
// and sorted.
func (c Catalog) SlotKinds() []string {
	return copyStrings(c.slotKinds)
}

// ErrorCodes returns the wrong-kind error identifiers derivable from the
// grammar, one per action and non-"object" slot kind pairing, duplicate-free
// and sorted.
func (c Catalog) ErrorCodes() []string {
	return copyStrings(c.errorCodes)
}

func copyStrings(sl []string) []string {
	out := make([]string, len(sl))
	copy(out, sl)
	return out
}

// Default returns the compiled-in grammar.
func Default() Catalog {
	return NewCatalog([]Template{
		MustParseTemplate("look"),
		MustParseTemplate("look at <object>"),
		MustParseTemplate("go <direction>"),
		MustParseTemplate("take <item>"),
		MustParseTemplate("drop <item>"),
		MustParseTemplate("put <item> in <container>"),
		MustParseTemplate("put <item> on <supporter>"),
	})
}
