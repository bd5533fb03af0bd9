package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/neujobscan/backend/models"
)

// HealthCheck reports server liveness
// @Summary Health check
// @Description Report server liveness
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   "1.0.0",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
