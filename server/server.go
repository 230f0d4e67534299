// Package server provides an HTTP REST server that exposes the MinQ command
// interpreter over the wire. Clients POST raw input lines and receive either
// the structured command the line parsed to or the diagnostic code for why it
// could not be.
//
// The interpreter core is pure and reentrant, so a single CommandServer can
// serve any number of concurrent requests without locking.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dekarrin/minq/internal/interp"
)

// APIPathPrefix is the URI prefix all API routes are mounted under.
const APIPathPrefix = "/api/v1"

// server:
//  - GET  /info      - get version info and catalog sizes.
//  - POST /commands  - interpret a line of input and return the result.

// CommandServer is an HTTP REST server that interprets command lines. The
// zero-value of a CommandServer should not be used directly; call New() to
// get one ready for use.
type CommandServer struct {
	router chi.Router
	it     *interp.Interpreter
}

// New creates a new CommandServer that interprets lines using the given
// interpreter.
func New(it *interp.Interpreter) CommandServer {
	cs := CommandServer{
		it: it,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Route(APIPathPrefix, func(r chi.Router) {
		r.Get("/info", cs.handleInfoGET)
		r.Post("/commands", cs.handleCommandsPOST)
	})
	cs.router = r

	return cs
}

// ServeHTTP dispatches the request to the server's router. Having
// CommandServer implement http.Handler directly makes it usable with
// httptest and custom http.Server setups.
func (cs CommandServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	cs.router.ServeHTTP(w, req)
}

// ServeForever begins listening on the given address and port for HTTP REST
// client requests. If address is kept as "", it will default to "localhost".
// If port is less than 1, it will default to 8080.
func (cs CommandServer) ServeForever(address string, port int) {
	if address == "" {
		address = "localhost"
	}
	if port < 1 {
		port = 8080
	}

	listenAddress := fmt.Sprintf("%s:%d", address, port)
	log.Printf("INFO  Listening on %s", listenAddress)
	log.Fatalf("FATAL %v", http.ListenAndServe(listenAddress, cs))
}
