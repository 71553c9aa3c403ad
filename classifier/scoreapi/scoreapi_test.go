// SPDX-License-Identifier: GPL-3.0-or-later
package scoreapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davrk/go-pop3-forward/log"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	log.InitLogging("error")

	tests := []struct {
		name          string
		status        int
		response      string
		expectedScore float64
		expectedOk    bool
	}{
		{"ok", http.StatusOK, `{"success": true, "score": "5.2"}`, 5.2, true},
		{"zeroscore", http.StatusOK, `{"success": true, "score": "0"}`, 0, true},
		{"negativescore", http.StatusOK, `{"success": true, "score": "-1.5"}`, -1.5, true},
		{"successfalse", http.StatusOK, `{"success": false, "score": "9.9"}`, 0, false},
		{"unparseablescore", http.StatusOK, `{"success": true, "score": "high"}`, 0, false},
		{"malformedjson", http.StatusOK, `{]`, 0, false},
		{"servererror", http.StatusInternalServerError, ``, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.response))
			}))
			defer server.Close()

			verdict := NewScoreApi(server.URL).Check([]byte("raw mail"))
			assert.Equal(t, tc.expectedScore, verdict.Score)
			assert.Equal(t, tc.expectedOk, verdict.Ok)
		})
	}
}

func TestCheckRequestBody(t *testing.T) {
	log.InitLogging("error")

	var received checkRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &received))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"success": true, "score": "1.0"}`))
	}))
	defer server.Close()

	verdict := NewScoreApi(server.URL).Check([]byte("Subject: hi\r\n\r\nbody"))
	assert.True(t, verdict.Ok)
	assert.Equal(t, "Subject: hi\r\n\r\nbody", received.Email)
	assert.Equal(t, "short", received.Options)
}

func TestCheckUnreachable(t *testing.T) {
	log.InitLogging("error")

	// nothing listens here
	verdict := NewScoreApi("http://127.0.0.1:1/check").Check([]byte("raw mail"))
	assert.Equal(t, 0.0, verdict.Score)
	assert.False(t, verdict.Ok)
}
