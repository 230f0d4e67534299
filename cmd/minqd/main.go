/*
Minqd starts a MinQ interpreter server and begins listening for new
connections.

Once started, the MinQ server will listen for HTTP requests and respond to
them using REST protocol. By default, it will listen on localhost:8080. This
can be changed with the --listen/-l flag (or config via environment var).
The flag argument must be either a full address with port, such as
"192.168.0.2:6001", or just the port preceeded by a colon, such as ":6001".

Usage:

	minqd [flags]
	minqd [flags] -l [[ADDRESS]:PORT]

The flags are:

	-v, --version
		Give the current version of the MinQ server and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment
		variable MINQ_LISTEN_ADDRESS, and if that is not given, will default
		to localhost:8080.

	-f, --data FILE
		Use the provided MQD data file for the grammar and world catalogs. If
		not given, will default to the value of environment variable
		MINQ_DATA, and if that is not given, the compiled-in catalogs are
		used.
*/
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dekarrin/minq/internal/grammar"
	"github.com/dekarrin/minq/internal/interp"
	"github.com/dekarrin/minq/internal/mqd"
	"github.com/dekarrin/minq/internal/version"
	"github.com/dekarrin/minq/internal/world"
	"github.com/dekarrin/minq/server"
)

const (
	EnvListen = "MINQ_LISTEN_ADDRESS"
	EnvData   = "MINQ_DATA"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of MinQ server and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagData    = pflag.StringP("data", "f", "", "Use the given MQD data file for the catalogs.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (MinQ v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	args := pflag.Args()

	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	// get address info
	port := 0
	addr := ""
	listenAddr := os.Getenv(EnvListen)
	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	if listenAddr != "" {
		bindParts := strings.SplitN(listenAddr, ":", 2)
		if len(bindParts) != 2 {
			fmt.Fprintf(os.Stderr, "Listen address is not in ADDRESS:PORT or :PORT format.\nDo -h for help.\n")
			os.Exit(1)
		}

		var err error

		addr = bindParts[0]
		port, err = strconv.Atoi(bindParts[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%q is not a valid port number.\nDo -h for help.\n", bindParts[1])
			os.Exit(1)
		}
	}

	// build catalogs
	dataFile := os.Getenv(EnvData)
	if pflag.Lookup("data").Changed {
		dataFile = *flagData
	}

	var it *interp.Interpreter
	if dataFile != "" {
		data, err := mqd.LoadDataFile(dataFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not load data file: %s\n", err.Error())
			os.Exit(2)
		}
		it = interp.New(data.Grammar, data.World)
	} else {
		it = interp.New(grammar.Default(), world.Default())
	}

	cs := server.New(it)
	cs.ServeForever(addr, port)
}
