package interp

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/minq/internal/grammar"
	"github.com/dekarrin/minq/internal/mqerrors"
	"github.com/dekarrin/minq/internal/world"
)

func defaultInterp() *Interpreter {
	return New(grammar.Default(), world.Default())
}

func Test_GetCommand(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectAction  string
		expectObjects []string
		expectErr     string
	}{
		{
			name:      "empty input",
			input:     "",
			expectErr: "empty_command",
		},
		{
			name:      "blank input",
			input:     "   ",
			expectErr: "empty_command",
		},
		{
			name:      "known words but first is not a verb",
			input:     "frog very small",
			expectErr: "unknown_verb_frog",
		},
		{
			name:      "word outside the vocabulary",
			input:     "take yellow ball",
			expectErr: "unknown_word_yellow",
		},
		{
			name:      "unknown word reported before unknown verb",
			input:     "ball take",
			expectErr: "unknown_word_ball",
		},
		{
			name:      "no template matches the verb's use",
			input:     "put small tree frog",
			expectErr: "unknown_pattern_put",
		},
		{
			name:      "span ends in a non-noun",
			input:     "put small tree in box",
			expectErr: "unknown_noun_tree",
		},
		{
			name:      "no object is a superset of the span words",
			input:     "take green tree frog",
			expectErr: "unknown_game_object_green_tree_frog",
		},
		{
			name:      "two objects of the required kind match",
			input:     "take small frog",
			expectErr: "ambiguous_object_small_frog",
		},
		{
			name:      "object of the wrong kind for the slot",
			input:     "put wooden table in cardboard box",
			expectErr: "put_in_non_item_wooden_table",
		},
		{
			name:      "direction given where item is required",
			input:     "take north",
			expectErr: "take_non_item_north",
		},
		{
			name:         "zero-argument command",
			input:        "look",
			expectAction: "look",
		},
		{
			name:      "single noun span of the wrong kind",
			input:     "take table",
			expectErr: "take_non_item_table",
		},
		{
			name:          "noun alone resolves to full descriptor",
			input:         "look at box",
			expectAction:  "look_at",
			expectObjects: []string{"cardboard box"},
		},
		{
			name:          "partial adjectives resolve to full descriptor",
			input:         "take tree frog",
			expectAction:  "take",
			expectObjects: []string{"very small tree frog"},
		},
		{
			name:          "adjectives in any order",
			input:         "take tree small frog",
			expectAction:  "take",
			expectObjects: []string{"very small tree frog"},
		},
		{
			name:          "direction slot",
			input:         "go north",
			expectAction:  "go",
			expectObjects: []string{"north"},
		},
		{
			name:          "object slot accepts any kind",
			input:         "look at north",
			expectAction:  "look_at",
			expectObjects: []string{"north"},
		},
		{
			name:          "two-slot command",
			input:         "put very small tree frog in cardboard box",
			expectAction:  "put_in",
			expectObjects: []string{"very small tree frog", "cardboard box"},
		},
		{
			name:          "second template for verb",
			input:         "put tree frog on wooden table",
			expectAction:  "put_on",
			expectObjects: []string{"very small tree frog", "wooden table"},
		},
		{
			name:      "ambiguity in first of two slots",
			input:     "put frog in cardboard box",
			expectErr: "ambiguous_object_frog",
		},
		{
			name:      "boundary word is taken at its first occurrence",
			input:     "put tree frog in box in box",
			expectErr: "unknown_game_object_box_in_box",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			it := defaultInterp()

			actual, err := it.GetCommand(tc.input)
			if tc.expectErr != "" {
				assert.Error(err)
				assert.Equal(tc.expectErr, mqerrors.Code(err))
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expectAction, actual.Action)
			if tc.expectObjects == nil {
				assert.Empty(actual.Objects)
			} else {
				assert.Equal(tc.expectObjects, actual.Objects)
			}
		})
	}
}

func Test_GetCommand_kindFilterBeforeAmbiguity(t *testing.T) {
	assert := assert.New(t)

	// two objects answer to "red ball" but only one is an item; since kind
	// filtering narrows candidates before they are counted, this is not
	// ambiguous
	g := grammar.NewCatalog([]grammar.Template{
		grammar.MustParseTemplate("take <item>"),
	})
	w := world.NewCatalog([]world.GameObject{
		world.MustNewObject("red ball", "item"),
		world.MustNewObject("red ball", "scenery"),
	})
	it := New(g, w)

	cmd, err := it.GetCommand("take red ball")

	assert.NoError(err)
	assert.Equal("take", cmd.Action)
	assert.Equal([]string{"red ball"}, cmd.Objects)
}

func Test_GetCommand_stageOrderAcrossSpans(t *testing.T) {
	assert := assert.New(t)

	it := defaultInterp()

	// span one fails existence, span two fails the earlier noun check; the
	// noun check runs for every span before any existence check, so span two
	// wins
	_, err := it.GetCommand("put green tree frog in small tree")

	assert.Equal("unknown_noun_tree", mqerrors.Code(err))
}

func Test_Vocabulary(t *testing.T) {
	assert := assert.New(t)

	it := defaultInterp()

	vocab := it.Vocabulary()

	assert.True(sort.StringsAreSorted(vocab))

	// adjectives, nouns, verbs, and prepositions are all words
	assert.True(it.Knows("very"))
	assert.True(it.Knows("frog"))
	assert.True(it.Knows("take"))
	assert.True(it.Knows("in"))

	// slot kind names are not words
	assert.False(it.Knows("object"))
	assert.False(it.Knows("container"))

	// no duplicates
	seen := map[string]bool{}
	for _, word := range vocab {
		assert.False(seen[word], "duplicate word %q", word)
		seen[word] = true
	}
}

func Test_GetCommand_isPure(t *testing.T) {
	assert := assert.New(t)

	it := defaultInterp()

	first, err1 := it.GetCommand("put tree frog in cardboard box")
	second, err2 := it.GetCommand("put tree frog in cardboard box")

	assert.NoError(err1)
	assert.NoError(err2)
	assert.Equal(first, second)
}
