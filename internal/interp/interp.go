// Package interp turns lines of player input into structured commands. It
// matches tokenized input against the templates of a grammar catalog,
// resolves the words bound to each template slot against the objects of a
// world catalog, and produces either a command.Command or an error carrying a
// precise diagnostic code.
//
// An Interpreter holds no mutable state after creation; GetCommand is a pure
// function of its input and the two catalogs, and is safe to call from
// multiple goroutines without locking.
package interp

import (
	"strings"

	"github.com/dekarrin/minq/internal/command"
	"github.com/dekarrin/minq/internal/grammar"
	"github.com/dekarrin/minq/internal/util"
	"github.com/dekarrin/minq/internal/world"
)

// Interpreter interprets player input against a fixed grammar and a fixed
// world. Create one with New.
type Interpreter struct {
	grammar grammar.Catalog
	world   world.Catalog
	vocab   util.StringSet
}

// New creates an Interpreter over the given catalogs. The vocabulary and
// every other derived list is computed once, up front.
func New(g grammar.Catalog, w world.Catalog) *Interpreter {
	vocab := util.NewStringSet()
	vocab.AddAll(w.Adjectives())
	vocab.AddAll(w.Nouns())
	vocab.AddAll(g.Verbs())
	vocab.AddAll(g.Prepositions())

	return &Interpreter{
		grammar: g,
		world:   w,
		vocab:   vocab,
	}
}

// Grammar returns the grammar catalog the interpreter was built over.
func (it *Interpreter) Grammar() grammar.Catalog {
	return it.grammar
}

// World returns the world catalog the interpreter was built over.
func (it *Interpreter) World() world.Catalog {
	return it.world
}

// Vocabulary returns every word the interpreter recognizes, the union of the
// world's adjectives and nouns with the grammar's verbs and prepositions,
// duplicate-free and sorted. Slot kind names are not words and are never
// included.
func (it *Interpreter) Vocabulary() []string {
	return it.vocab.Elements()
}

// Knows returns whether the given word is in the interpreter's vocabulary.
func (it *Interpreter) Knows(word string) bool {
	return it.vocab.Has(word)
}

// GetCommand interprets a single line of input. On success it returns the
// command with its action identifier and the full descriptors of its resolved
// objects in slot order. On failure it returns a zero Command and an error
// whose code (mqerrors.Code) identifies exactly what went wrong; the checks
// run in a fixed order and the first failure wins, so every malformed line
// yields one determinate error and never a partial command.
func (it *Interpreter) GetCommand(line string) (command.Command, error) {
	var cmd command.Command

	tokens := strings.Fields(line)
	if len(tokens) < 1 {
		return cmd, errEmptyCommand()
	}

	for _, tok := range tokens {
		if !it.vocab.Has(tok) {
			return cmd, errUnknownWord(tok)
		}
	}

	verb := tokens[0]
	if !it.grammar.IsVerb(verb) {
		return cmd, errUnknownVerb(verb)
	}

	var tmpl grammar.Template
	var spans [][]string
	matched := false
	for _, t := range it.grammar.TemplatesForVerb(verb) {
		if sp, ok := matchTemplate(tokens, t); ok {
			tmpl = t
			spans = sp
			matched = true
			break
		}
	}
	if !matched {
		return cmd, errUnknownPattern(verb)
	}

	for _, span := range spans {
		if !it.world.IsNoun(span[len(span)-1]) {
			return cmd, errUnknownNoun(span[len(span)-1])
		}
	}

	candidates := make([][]world.GameObject, len(spans))
	for i, span := range spans {
		candidates[i] = it.matchingObjects(span)
		if len(candidates[i]) < 1 {
			return cmd, errUnknownGameObject(span)
		}
	}

	// kind filtering happens before ambiguity counting, so two candidates of
	// different kinds never count as ambiguous
	kinds := tmpl.Slots()
	objects := make([]string, 0, len(spans))
	for i, span := range spans {
		ofKind := filterKind(candidates[i], kinds[i])
		switch len(ofKind) {
		case 0:
			return cmd, errWrongKind(tmpl.Action(), kinds[i], span)
		case 1:
			objects = append(objects, ofKind[0].Descriptor())
		default:
			return cmd, errAmbiguousObject(span)
		}
	}

	cmd.Action = tmpl.Action()
	cmd.Objects = objects
	return cmd, nil
}
