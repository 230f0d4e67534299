// Package minq contains a CLI-driven engine for reading lines of player input
// and interpreting each one against a fixed template grammar and a fixed
// catalog of game objects, printing the resulting command or diagnostic.
package minq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/minq/internal/command"
	"github.com/dekarrin/minq/internal/grammar"
	"github.com/dekarrin/minq/internal/input"
	"github.com/dekarrin/minq/internal/interp"
	"github.com/dekarrin/minq/internal/mqd"
	"github.com/dekarrin/minq/internal/mqerrors"
	"github.com/dekarrin/minq/internal/world"
)

// Engine contains the things needed to run an interpreter session from an
// interactive shell attached to an input stream and an output stream.
type Engine struct {
	it          *interp.Interpreter
	in          command.Reader
	out         *bufio.Writer
	forceDirect bool
	running     bool
}

const consoleOutputWidth = 80

// New creates a new engine ready to operate on the given input and output
// streams. It will immediately open a buffered reader on the input stream and
// a buffered writer on the output stream.
//
// If nil is given for the input stream, input is read from stdin. If nil is
// given for the output stream, output goes to stdout. If dataFilePath is
// empty, the compiled-in grammar and world are used; otherwise both are
// loaded from the MQD file at that path.
func New(inputStream io.Reader, outputStream io.Writer, dataFilePath string, forceDirectInput bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	var it *interp.Interpreter
	if dataFilePath != "" {
		data, err := mqd.LoadDataFile(dataFilePath)
		if err != nil {
			return nil, fmt.Errorf("load data file: %w", err)
		}
		it = interp.New(data.Grammar, data.World)
	} else {
		it = interp.New(grammar.Default(), world.Default())
	}

	eng := &Engine{
		it:          it,
		out:         bufio.NewWriter(outputStream),
		running:     false,
		forceDirect: forceDirectInput,
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		var err error
		eng.in, err = input.NewInteractiveReader()
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running engine")
	}

	err := eng.in.Close()
	if err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}

	return nil
}

// RunUntilQuit begins reading lines from the input stream and interpreting
// them until "quit" or "exit" is received or input hits EOF. Each line is
// answered with either the structured command it parsed to or with the
// diagnostic for why it could not be.
func (eng *Engine) RunUntilQuit() error {
	introMsg := "MinQ command interpreter\n"
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "========================\n"
	introMsg += "Type a command, or \"quit\" to leave.\n"

	if err := eng.write(introMsg); err != nil {
		return err
	}

	eng.running = true
	// so we dont have to remember to do this on every returned error condition
	defer func() {
		eng.running = false
	}()

	for eng.running {
		line, err := eng.in.ReadCommand()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("get user command: %w", err)
		}

		// the interpreter itself has no quit action; ending the session is
		// the runner's job
		if lowered := strings.ToLower(strings.TrimSpace(line)); lowered == "quit" || lowered == "exit" {
			eng.running = false
			break
		}

		cmd, err := eng.it.GetCommand(line)
		if err != nil {
			consoleMessage := mqerrors.GameMessage(err)
			if code := mqerrors.Code(err); code != "" {
				consoleMessage += " [" + code + "]"
			}
			consoleMessage = rosed.Edit(consoleMessage).Wrap(consoleOutputWidth).String()
			if wErr := eng.write(consoleMessage + "\n"); wErr != nil {
				return wErr
			}
			continue
		}

		if err := eng.write(cmd.String() + "\n"); err != nil {
			return err
		}
	}

	return eng.write("Goodbye\n")
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
