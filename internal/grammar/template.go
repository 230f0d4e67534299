package grammar

import (
	"fmt"
	"strings"
)

// Token is a single element of a Template. It is either a literal word that
// input must contain verbatim, or a named slot that consumes one or more input
// words naming a game object.
type Token struct {

	// Word is the literal word of the token. It is empty for slot tokens.
	Word string

	// Slot is the kind of game object the slot accepts, such as "item" or
	// "direction". It is empty for literal tokens. The kind "object" accepts
	// a game object of any kind.
	Slot string
}

// IsSlot returns whether the token is a slot token as opposed to a literal
// word.
func (tok Token) IsSlot() bool {
	return tok.Slot != ""
}

func (tok Token) String() string {
	if tok.IsSlot() {
		return "<" + tok.Slot + ">"
	}
	return tok.Word
}

// Template is one line of the grammar: an ordered sequence of literal words
// and object slots. The first token is always a literal word and is the verb
// of the template. Templates are immutable once created.
type Template struct {
	tokens []Token
}

// ParseTemplate parses a template from its pattern text. A pattern is a
// space-separated sequence of words, with slots written as a kind name in
// angle brackets, for example "put <item> in <container>".
//
// The pattern must begin with a literal word, must not contain two slots in a
// row (a literal word between slots is the only boundary signal when
// matching), and may contain at most two slots.
func ParseTemplate(pattern string) (Template, error) {
	fields := strings.Fields(pattern)
	if len(fields) < 1 {
		return Template{}, fmt.Errorf("template is empty")
	}

	t := Template{
		tokens: make([]Token, len(fields)),
	}

	slotCount := 0
	for i, f := range fields {
		if strings.HasPrefix(f, "<") && strings.HasSuffix(f, ">") {
			kind := f[1 : len(f)-1]
			if kind == "" {
				return Template{}, fmt.Errorf("token %d: slot has no kind name", i+1)
			}
			if i == 0 {
				return Template{}, fmt.Errorf("template must begin with a verb, not a slot")
			}
			if t.tokens[i-1].IsSlot() {
				return Template{}, fmt.Errorf("token %d: two slots in a row", i+1)
			}
			slotCount++
			if slotCount > 2 {
				return Template{}, fmt.Errorf("token %d: more than two slots", i+1)
			}
			t.tokens[i] = Token{Slot: kind}
		} else {
			t.tokens[i] = Token{Word: f}
		}
	}

	return t, nil
}

// MustParseTemplate is like ParseTemplate but panics on a malformed pattern.
// It is intended for compiled-in grammar definitions.
func MustParseTemplate(pattern string) Template {
	t, err := ParseTemplate(pattern)
	if err != nil {
		panic(fmt.Sprintf("template %q: %v", pattern, err))
	}
	return t
}

// Verb returns the verb of the template, which is always its first word.
func (t Template) Verb() string {
	return t.tokens[0].Word
}

// Action returns the action identifier of the template. This is the verb
// alone, or the verb joined by an underscore with the first literal word that
// follows it when the template contains one, so "put <item> in <container>"
// has the action "put_in".
func (t Template) Action() string {
	for _, tok := range t.tokens[1:] {
		if !tok.IsSlot() {
			return t.Verb() + "_" + tok.Word
		}
	}
	return t.Verb()
}

// Tokens returns the tokens of the template in order.
func (t Template) Tokens() []Token {
	toks := make([]Token, len(t.tokens))
	copy(toks, t.tokens)
	return toks
}

// Slots returns the kinds of the template's slots, in the order the slots
// appear.
func (t Template) Slots() []string {
	var kinds []string
	for _, tok := range t.tokens {
		if tok.IsSlot() {
			kinds = append(kinds, tok.Slot)
		}
	}
	return kinds
}

func (t Template) String() string {
	parts := make([]string, len(t.tokens))
	for i, tok := range t.tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}
