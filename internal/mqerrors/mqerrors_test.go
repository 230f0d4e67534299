package mqerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parserf(t *testing.T) {
	assert := assert.New(t)

	err := Parserf("unknown_word_xyzzy", "I don't know the word %q.", "xyzzy")

	assert.Equal("unknown_word_xyzzy", err.Error())
	assert.Equal("unknown_word_xyzzy", Code(err))
	assert.Equal("I don't know the word \"xyzzy\".", GameMessage(err))
}

func Test_Parserf_emptyFormatFallsBackToCode(t *testing.T) {
	assert := assert.New(t)

	err := Parserf("empty_command", "")

	assert.Equal("empty_command", GameMessage(err))
}

func Test_foreignError(t *testing.T) {
	assert := assert.New(t)

	err := errors.New("somefin else entirely")

	assert.Equal("", Code(err))
	assert.Equal("somefin else entirely", GameMessage(err))
}
