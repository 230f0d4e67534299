// Package command defines the command data type produced by interpreting
// player input, along with the Reader interface used to obtain input lines.
package command

import (
	"fmt"

	"github.com/dekarrin/minq/internal/util"
)

// Command is a successfully interpreted line of player input. A Command is
// only ever produced together with a nil error; a line that cannot be
// interpreted produces a zero-valued Command and a non-nil error carrying the
// reason, never both.
type Command struct {

	// Action is the identifier of the action being invoked. It is the verb of
	// the matched grammar template, such as "take", or the verb joined with
	// its following preposition, such as "put_in".
	Action string

	// Objects holds the full descriptors of the game objects the action is
	// applied to, in the order their slots appear in the matched template.
	// It holds between zero and two entries.
	Objects []string
}

func (cmd Command) String() string {
	if len(cmd.Objects) == 0 {
		return fmt.Sprintf("Command(%s)", cmd.Action)
	}
	return fmt.Sprintf("Command(%s: %s)", cmd.Action, util.MakeTextList(cmd.Objects))
}

// Reader is a type that can be used for getting command input.
type Reader interface {
	// ReadCommand reads a single line of user input. It will block until one
	// is ready. If there is an error or input is at end (EOF), the returned
	// string will be empty, otherwise it will always be non-empty.
	//
	// When error is io.EOF, string will always be empty. If EOF was
	// encountered on a call but some input was received, the input will be
	// returned and error will be nil, and the next call to ReadCommand will
	// return "", io.EOF.
	ReadCommand() (string, error)

	// Close performs any operations required to clean the resources created
	// by the Reader. It should be called at least once when the Reader is no
	// longer needed.
	Close() error
}
