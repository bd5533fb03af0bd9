package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/neujobscan/backend/engine"
	"github.com/neujobscan/backend/storage"
)

func TestWriteEngineError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "validation maps to 400",
			err:        &engine.ValidationError{Field: "resumeText", Message: "required"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request",
		},
		{
			name:       "parsing maps to 422",
			err:        &engine.ParsingError{DocType: "resume", Message: "input is empty"},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "Document could not be parsed",
		},
		{
			name:       "timeout maps to 504",
			err:        &engine.TimeoutError{Stage: "match"},
			wantStatus: http.StatusGatewayTimeout,
			wantError:  "Scan timed out",
		},
		{
			name:       "stage failure maps to 500",
			err:        &engine.StageError{Stage: "match", Err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Scan failed",
		},
		{
			name:       "missing record maps to 404",
			err:        storage.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "Not found",
		},
		{
			name:       "anything else maps to 500",
			err:        errors.New("unclassified"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeEngineError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantError)
		})
	}
}
