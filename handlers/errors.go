package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neujobscan/backend/engine"
	"github.com/neujobscan/backend/models"
	"github.com/neujobscan/backend/storage"
)

// writeEngineError maps pipeline error types onto HTTP statuses with the
// standard error envelope
func writeEngineError(c *gin.Context, err error) {
	var validationErr *engine.ValidationError
	var parsingErr *engine.ParsingError
	var timeoutErr *engine.TimeoutError
	var stageErr *engine.StageError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Invalid request", validationErr.Error()))
	case errors.As(err, &parsingErr):
		c.JSON(http.StatusUnprocessableEntity, models.NewErrorResponse(
			http.StatusUnprocessableEntity, "Document could not be parsed", parsingErr.Error()))
	case errors.As(err, &timeoutErr):
		c.JSON(http.StatusGatewayTimeout, models.NewErrorResponse(
			http.StatusGatewayTimeout, "Scan timed out", timeoutErr.Error()))
	case errors.As(err, &stageErr):
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError, "Scan failed", stageErr.Error()))
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, models.NewErrorResponse(
			http.StatusNotFound, "Not found", ""))
	default:
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError, "Internal server error", err.Error()))
	}
}
