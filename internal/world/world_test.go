package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewObject(t *testing.T) {
	testCases := []struct {
		name       string
		descriptor string
		kind       string
		expectNoun string
		expectAdjs []string
		expectErr  bool
	}{
		{
			name:       "single-word descriptor",
			descriptor: "north",
			kind:       "direction",
			expectNoun: "north",
			expectAdjs: []string{},
		},
		{
			name:       "multi-word descriptor",
			descriptor: "very small tree frog",
			kind:       "item",
			expectNoun: "frog",
			expectAdjs: []string{"very", "small", "tree"},
		},
		{
			name:       "empty descriptor",
			descriptor: "",
			kind:       "item",
			expectErr:  true,
		},
		{
			name:       "blank kind",
			descriptor: "wooden table",
			kind:       "  ",
			expectErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := NewObject(tc.descriptor, tc.kind)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expectNoun, actual.Noun())
			assert.Equal(tc.expectAdjs, actual.Adjectives())
			assert.Equal(tc.kind, actual.Kind())
		})
	}
}

func Test_GameObject_HasWords(t *testing.T) {
	assert := assert.New(t)

	g := MustNewObject("solid wooden table", "supporter")

	assert.True(g.HasWords([]string{"table"}))
	assert.True(g.HasWords([]string{"wooden", "table"}))
	assert.True(g.HasWords([]string{"table", "solid"}), "order does not matter")
	assert.True(g.HasWords(nil))
	assert.False(g.HasWords([]string{"wooden", "chair"}))
}

func Test_Catalog_derivations(t *testing.T) {
	assert := assert.New(t)

	c := Default()

	assert.Equal([]string{"cardboard", "green", "small", "tree", "very", "wooden"}, c.Adjectives())
	assert.Equal([]string{"box", "east", "frog", "north", "south", "table", "west"}, c.Nouns())
	assert.Equal([]string{"container", "direction", "item", "supporter"}, c.Kinds())
}

func Test_Catalog_ObjectsByNoun(t *testing.T) {
	assert := assert.New(t)

	c := Default()

	frogs := c.ObjectsByNoun("frog")
	assert.Len(frogs, 2)

	// catalog order is preserved
	assert.Equal("small green frog", frogs[0].Descriptor())
	assert.Equal("very small tree frog", frogs[1].Descriptor())

	assert.Empty(c.ObjectsByNoun("tree"), "adjectives are not nouns")
	assert.True(c.IsNoun("box"))
	assert.False(c.IsNoun("cardboard"))
}
