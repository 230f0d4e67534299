package server

import (
	"net/http"

	"github.com/dekarrin/minq/internal/mqerrors"
	"github.com/dekarrin/minq/internal/version"
)

// InfoResponse is the response body of GET /info.
type InfoResponse struct {
	Version       string `json:"version"`
	ServerVersion string `json:"server_version"`
	Templates     int    `json:"templates"`
	Objects       int    `json:"objects"`
	Words         int    `json:"words"`
}

// CommandRequest is the request body of POST /commands.
type CommandRequest struct {
	Line string `json:"line"`
}

// CommandResponse is the response body of POST /commands when the line parses
// to a command.
type CommandResponse struct {
	ID      string   `json:"id"`
	Action  string   `json:"action"`
	Objects []string `json:"objects"`
}

// CommandErrorResponse is the response body of POST /commands when the line
// cannot be interpreted.
type CommandErrorResponse struct {
	ID      string `json:"id"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// GET /info: version info and catalog sizes
func (cs CommandServer) handleInfoGET(w http.ResponseWriter, req *http.Request) {
	resp := InfoResponse{
		Version:       version.Current,
		ServerVersion: version.ServerCurrent,
		Templates:     len(cs.it.Grammar().Templates()),
		Objects:       len(cs.it.World().Objects()),
		Words:         len(cs.it.Vocabulary()),
	}

	jsonOK(w, req, resp, "info requested")
}

// POST /commands: interpret one line of input
func (cs CommandServer) handleCommandsPOST(w http.ResponseWriter, req *http.Request) {
	var cmdReq CommandRequest
	if err := parseJSON(req, &cmdReq); err != nil {
		jsonBadRequest(w, req, err.Error())
		return
	}

	cmd, err := cs.it.GetCommand(cmdReq.Line)
	if err != nil {
		code := mqerrors.Code(err)
		if code == "" {
			jsonInternalServerError(w, req, err.Error())
			return
		}

		resp := CommandErrorResponse{
			ID:      requestID(req),
			Error:   code,
			Message: mqerrors.GameMessage(err),
		}
		jsonErrResult(w, req, resp, "line %q -> %s", cmdReq.Line, code)
		return
	}

	objects := cmd.Objects
	if objects == nil {
		objects = []string{}
	}
	resp := CommandResponse{
		ID:      requestID(req),
		Action:  cmd.Action,
		Objects: objects,
	}
	jsonOK(w, req, resp, "line %q -> %s", cmdReq.Line, cmd.Action)
}
