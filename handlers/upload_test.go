package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neujobscan/backend/auth"
	"github.com/neujobscan/backend/models"
	"github.com/neujobscan/backend/storage"
)

func newUploadRouter(t *testing.T, maxBytes int64) (*gin.Engine, string) {
	t.Helper()

	cfg := testConfig()
	cfg.MaxUploadBytes = maxBytes

	jwtService := auth.NewJWTService(cfg)
	sessions := auth.NewMemorySessionStore()
	session, err := sessions.Create("jane@example.com", time.Hour)
	require.NoError(t, err)
	token, err := jwtService.GenerateToken(&models.User{
		ID:    "jane@example.com",
		Email: "jane@example.com",
	}, session.ID)
	require.NoError(t, err)

	h := NewUploadHandler(cfg, nil, storage.NewMemoryStore())
	router := gin.New()
	router.POST("/api/upload", auth.AuthMiddleware(jwtService, sessions), h.UploadResume)
	return router, token
}

func doUpload(t *testing.T, router *gin.Engine, token, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadResume_Success(t *testing.T) {
	router, token := newUploadRouter(t, 10<<20)
	const content = "Jane Smith\nBackend engineer with Go experience"

	w := doUpload(t, router, token, "resume.txt", content)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Upload successful", env.Message)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, content, resp.Text)
	assert.Equal(t, "resume.txt", resp.FileName)
	assert.Equal(t, int64(len(content)), resp.Size)
	assert.Empty(t, resp.StoreURL, "no bucket configured")
}

func TestUploadResume_RequiresAuth(t *testing.T) {
	router, _ := newUploadRouter(t, 10<<20)

	w := doUpload(t, router, "", "resume.txt", "Jane Smith")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUploadResume_UnsupportedExtension(t *testing.T) {
	router, token := newUploadRouter(t, 10<<20)

	w := doUpload(t, router, token, "resume.exe", "Jane Smith")
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Could not read file", env.Error)
	assert.Contains(t, env.Details, "unsupported file type")
}

func TestUploadResume_FileTooLarge(t *testing.T) {
	router, token := newUploadRouter(t, 32)

	w := doUpload(t, router, token, "resume.txt", strings.Repeat("x", 64))
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Details, "file too large")
}

func TestUploadResume_MissingFile(t *testing.T) {
	router, token := newUploadRouter(t, 10<<20)

	w := doAuthed(t, router, http.MethodPost, "/api/upload", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Resume file is required", env.Error)
}
