package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neujobscan/backend/engine"
	"github.com/neujobscan/backend/models"
)

// MatchHandler handles direct match and rewrite requests over already-parsed
// documents
type MatchHandler struct{}

// NewMatchHandler creates a new match handler
func NewMatchHandler() *MatchHandler {
	return &MatchHandler{}
}

// CreateMatch scores a parsed resume against a parsed job
// @Summary Match resume to job
// @Description Score a parsed resume against a parsed job across all categories
// @Tags Match
// @Accept json
// @Produce json
// @Param request body models.MatchRequest true "Match request"
// @Success 200 {object} models.APIResponse{data=models.MatchResult} "Match result"
// @Failure 400 {object} models.ErrorResponse "Missing resume or job data"
// @Router /match [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Invalid request body", err.Error()))
		return
	}

	match, err := engine.CreateMatch(req.ResumeData, req.JobData)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, match, ""))
}

// GenerateRewrites produces rewrite suggestions for a resume/job pair
// @Summary Generate rewrite suggestions
// @Description Propose section-level resume rewrites with projected score improvements
// @Tags Match
// @Accept json
// @Produce json
// @Param request body models.RewriteRequest true "Rewrite request"
// @Success 200 {object} models.APIResponse{data=models.RewriteSuggestions} "Suggestions"
// @Failure 400 {object} models.ErrorResponse "Missing resume or job data"
// @Router /rewrite [post]
func (h *MatchHandler) GenerateRewrites(c *gin.Context) {
	var req models.RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Invalid request body", err.Error()))
		return
	}

	suggestions, err := engine.GenerateSuggestions(req.ResumeData, req.JobData, req.SkillGaps)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, suggestions, ""))
}
