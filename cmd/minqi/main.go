/*
Minqi starts an interactive MinQ interpreter session.

It builds the interpreter's vocabulary from the grammar templates and game
object catalog, then reads lines of input from stdin, answering each with
the structured command it parses to or with a diagnostic explaining why it
could not be interpreted. Type "quit" to leave the session.

Usage:

	minqi [flags]

The flags are:

	-version
		Give the current version of MinQ and then exit.

	-f/-data [FILE]
		Use the provided MQD data file for the grammar and world catalogs.
		Defaults to the compiled-in catalogs.

	-d/--direct
	    Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input even if launched in
		a tty with stdin and stdout.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dekarrin/minq"
	"github.com/dekarrin/minq/internal/version"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitSessionError indicates an unsuccessful program execution due to a
	// problem during the interpreter session.
	ExitSessionError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

var (
	returnCode  int   = ExitSuccess
	flagVersion *bool = flag.Bool("version", false, "Gives the version info")
	dataFile    string
	forceDirect bool
)

func init() {
	const (
		dataUsage        = "the MQD data file that contains the definition of the grammar and world"
		forceDirectUsage = "force reading directly from stdin instead of going through GNU readline where possible"
	)
	flag.StringVar(&dataFile, "data", "", dataUsage)
	flag.StringVar(&dataFile, "f", "", dataUsage+" (shorthand)")
	flag.BoolVar(&forceDirect, "direct", false, forceDirectUsage)
	flag.BoolVar(&forceDirect, "d", false, forceDirectUsage+" (shorthand)")
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	flag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	eng, initErr := minq.New(os.Stdin, os.Stdout, dataFile, forceDirect)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer eng.Close()

	err := eng.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitSessionError
		return
	}
}
