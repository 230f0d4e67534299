package interp

import (
	"strings"

	"github.com/dekarrin/minq/internal/mqerrors"
)

// File errors.go holds the constructors for every error the interpreter can
// produce. Each has a stable machine code parameterized by the offending
// word(s) plus a message for the game prompt.

func errEmptyCommand() error {
	return mqerrors.Parserf("empty_command", "I don't see a command there.")
}

func errUnknownWord(word string) error {
	return mqerrors.Parserf("unknown_word_"+word, "I don't know the word %q.", word)
}

func errUnknownVerb(word string) error {
	return mqerrors.Parserf("unknown_verb_"+word, "%q is not something I know how to do.", word)
}

func errUnknownPattern(verb string) error {
	return mqerrors.Parserf("unknown_pattern_"+verb, "I can't make sense of that use of %q.", verb)
}

func errUnknownNoun(word string) error {
	return mqerrors.Parserf("unknown_noun_"+word, "I don't know of any %q.", word)
}

func errUnknownGameObject(span []string) error {
	code := "unknown_game_object_" + strings.Join(span, "_")
	return mqerrors.Parserf(code, "You don't see any %q here.", strings.Join(span, " "))
}

func errAmbiguousObject(span []string) error {
	code := "ambiguous_object_" + strings.Join(span, "_")
	return mqerrors.Parserf(code, "Which %q do you mean?", strings.Join(span, " "))
}

func errWrongKind(action string, kind string, span []string) error {
	code := action + "_non_" + kind + "_" + strings.Join(span, "_")
	humanAct := strings.ReplaceAll(action, "_", " ")
	return mqerrors.Parserf(code, "You can't %s the %s.", humanAct, strings.Join(span, " "))
}
