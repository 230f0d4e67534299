package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey int

const ctxKeyRequestID ctxKey = iota

// requestIDMiddleware assigns every incoming request a uuid, echoed in the
// X-Request-ID response header and available to handlers via requestID.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(req.Context(), ctxKeyRequestID, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// requestID gets the uuid assigned to the request by requestIDMiddleware. It
// is empty if the middleware did not run.
func requestID(req *http.Request) string {
	id, _ := req.Context().Value(ctxKeyRequestID).(string)
	return id
}

// parseJSON parses the request body as JSON into the given value.
func parseJSON(req *http.Request, v interface{}) error {
	bodyData, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}
	defer func() {
		req.Body.Close()
	}()

	if err := json.Unmarshal(bodyData, v); err != nil {
		return fmt.Errorf("malformed data in request")
	}

	return nil
}

// jsonOK writes respObj as an HTTP-200 JSON response, and logs the more
// detailed internal message, which is never shown to the client.
func jsonOK(w http.ResponseWriter, req *http.Request, respObj interface{}, internalMsg string, msgArgs ...interface{}) {
	writeJSON(w, req, http.StatusOK, respObj, internalMsg, msgArgs...)
}

// jsonErrResult writes respObj as an HTTP-422 JSON response for a line that
// was received fine but could not be interpreted, and logs the internal
// message.
func jsonErrResult(w http.ResponseWriter, req *http.Request, respObj interface{}, internalMsg string, msgArgs ...interface{}) {
	writeJSON(w, req, http.StatusUnprocessableEntity, respObj, internalMsg, msgArgs...)
}

// jsonBadRequest writes an HTTP-400 JSON response containing the given
// user-facing message.
func jsonBadRequest(w http.ResponseWriter, req *http.Request, userMsg string) {
	writeJSON(w, req, http.StatusBadRequest, map[string]string{
		"id":      requestID(req),
		"message": userMsg,
	}, "bad request: %s", userMsg)
}

// jsonInternalServerError writes a generic HTTP-500 JSON response and logs
// the internal message. The internal message is never sent to the client.
func jsonInternalServerError(w http.ResponseWriter, req *http.Request, internalMsg string, msgArgs ...interface{}) {
	log.Printf("ERROR %s %s", requestID(req), fmt.Sprintf(internalMsg, msgArgs...))
	writeJSON(w, req, http.StatusInternalServerError, map[string]string{
		"id":      requestID(req),
		"message": "An internal server error occurred",
	}, "")
}

func writeJSON(w http.ResponseWriter, req *http.Request, status int, respObj interface{}, internalMsg string, msgArgs ...interface{}) {
	if internalMsg != "" {
		log.Printf("INFO  %s HTTP-%d %s", requestID(req), status, fmt.Sprintf(internalMsg, msgArgs...))
	}

	respBytes, err := json.Marshal(respObj)
	if err != nil {
		log.Printf("ERROR %s marshal response: %v", requestID(req), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(respBytes); err != nil {
		log.Printf("ERROR %s write response: %v", requestID(req), err)
	}
}
