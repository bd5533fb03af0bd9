package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/neujobscan/backend/agent"
	"github.com/neujobscan/backend/config"
	"github.com/neujobscan/backend/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testResumeText = `Jane Smith
jane.smith@example.com

Summary
Backend engineer building cloud services.

Experience
Senior Software Engineer at Acme Corp
2019 - Present
- Built Go microservices on Kubernetes

Skills
Go, Kubernetes, PostgreSQL
`

const testJobText = `Backend Engineer at CloudWorks

Requirements
- Strong Go and Kubernetes knowledge
- PostgreSQL in production

Responsibilities
- Build and operate Go services
`

// envelope decodes both the success and error response shapes
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

func testConfig() *config.Config {
	return &config.Config{
		ScanTimeoutSeconds:    30,
		ExplainTimeoutSeconds: 5,
		HistoryLimit:          50,
		JWTSecret:             "handler-test-secret",
		JWTExpiryHours:        24,
	}
}

func newTestAgent() (*agent.ScanAgent, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return agent.NewScanAgent(testConfig(), store, nil), store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}

func doAuthed(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
