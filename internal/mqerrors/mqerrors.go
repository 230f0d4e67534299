// Package mqerrors defines the error type produced by interpreting player
// input, along with functions for creating and inspecting such errors.
package mqerrors

import "fmt"

// parserError is an error caused by attempting to interpret a line of player
// input. Either the input could not be understood or it refers to game objects
// in a way that cannot be resolved.
//
// parserError carries a stable machine-readable code, such as
// "unknown_word_xyzzy", as well as a human-readable message suitable for
// display at a game prompt.
type parserError struct {
	code  string
	human string
}

// Error returns the machine-readable code of the error.
func (e *parserError) Error() string {
	return e.code
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *parserError) GameMessage() string {
	return e.human
}

// Parserf returns a new parser error with the given machine-readable code and
// a player-facing message built from the given format string and arguments.
// If the format is empty, the code itself is used as the message.
func Parserf(code string, gameFormat string, a ...interface{}) error {
	human := code
	if gameFormat != "" {
		human = fmt.Sprintf(gameFormat, a...)
	}
	return &parserError{
		code:  code,
		human: human,
	}
}

// Code gets the machine-readable code of the given error. If it is not a
// parser error created by this package, the empty string is returned.
func Code(err error) string {
	if pErr, ok := err.(*parserError); ok {
		return pErr.code
	}
	return ""
}

// GameMessage gets the message to display at the game prompt for the given
// error. If it is not a parser error created by this package, err.Error() is
// returned.
func GameMessage(err error) string {
	if pErr, ok := err.(*parserError); ok {
		return pErr.GameMessage()
	}
	return err.Error()
}
