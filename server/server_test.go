package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/minq/internal/grammar"
	"github.com/dekarrin/minq/internal/interp"
	"github.com/dekarrin/minq/internal/world"
)

func testServer() CommandServer {
	return New(interp.New(grammar.Default(), world.Default()))
}

func Test_Info_GET(t *testing.T) {
	assert := assert.New(t)

	cs := testServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, APIPathPrefix+"/info", nil)
	cs.ServeHTTP(w, req)

	assert.Equal(http.StatusOK, w.Code)
	assert.NotEmpty(w.Header().Get("X-Request-ID"))

	var resp InfoResponse
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(resp.Version)
	assert.Equal(7, resp.Templates)
	assert.Equal(8, resp.Objects)
	assert.Greater(resp.Words, 0)
}

func Test_Commands_POST(t *testing.T) {
	testCases := []struct {
		name          string
		body          string
		expectStatus  int
		expectAction  string
		expectObjects []string
		expectErrCode string
	}{
		{
			name:         "zero-argument command",
			body:         `{"line": "look"}`,
			expectStatus: http.StatusOK,
			expectAction: "look",
		},
		{
			name:          "two-slot command",
			body:          `{"line": "put tree frog in cardboard box"}`,
			expectStatus:  http.StatusOK,
			expectAction:  "put_in",
			expectObjects: []string{"very small tree frog", "cardboard box"},
		},
		{
			name:          "uninterpretable line",
			body:          `{"line": "take yellow ball"}`,
			expectStatus:  http.StatusUnprocessableEntity,
			expectErrCode: "unknown_word_yellow",
		},
		{
			name:          "empty line",
			body:          `{"line": ""}`,
			expectStatus:  http.StatusUnprocessableEntity,
			expectErrCode: "empty_command",
		},
		{
			name:         "malformed body",
			body:         `{"line": `,
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			cs := testServer()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, APIPathPrefix+"/commands", strings.NewReader(tc.body))
			cs.ServeHTTP(w, req)

			assert.Equal(tc.expectStatus, w.Code)

			switch tc.expectStatus {
			case http.StatusOK:
				var resp CommandResponse
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(resp.ID)
				assert.Equal(tc.expectAction, resp.Action)
				if tc.expectObjects == nil {
					assert.Empty(resp.Objects)
				} else {
					assert.Equal(tc.expectObjects, resp.Objects)
				}
			case http.StatusUnprocessableEntity:
				var resp CommandErrorResponse
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(resp.ID)
				assert.Equal(tc.expectErrCode, resp.Error)
				assert.NotEmpty(resp.Message)
			}
		})
	}
}

func Test_Commands_POST_methodNotAllowed(t *testing.T) {
	assert := assert.New(t)

	cs := testServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, APIPathPrefix+"/commands", nil)
	cs.ServeHTTP(w, req)

	assert.Equal(http.StatusMethodNotAllowed, w.Code)
}
