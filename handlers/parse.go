package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neujobscan/backend/engine"
	"github.com/neujobscan/backend/models"
)

// ParseHandler handles standalone document parsing requests
type ParseHandler struct{}

// NewParseHandler creates a new parse handler
func NewParseHandler() *ParseHandler {
	return &ParseHandler{}
}

// ParseJob parses a raw job posting
// @Summary Parse a job posting
// @Description Extract structured data and analysis from raw job posting text
// @Tags Parse
// @Accept json
// @Produce json
// @Param request body models.ParseRequest true "Job text"
// @Success 200 {object} models.APIResponse{data=models.JobParseResponse} "Parsed job"
// @Failure 400 {object} models.ErrorResponse "Missing content"
// @Failure 422 {object} models.ErrorResponse "Content not recognizable as a job posting"
// @Router /job/parse [post]
func (h *ParseHandler) ParseJob(c *gin.Context) {
	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Invalid request body", err.Error()))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Missing required fields", "content required"))
		return
	}

	parsed, err := engine.ParseJob(req.Content)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	resp := models.JobParseResponse{ParsedData: parsed}

	// Parsing succeeded, so a failed analysis degrades to parse-only output
	analysis, err := engine.AnalyzeJob(parsed)
	if err != nil {
		log.Printf("[ParseHandler] Job analysis failed, returning parse only: %v", err)
	} else {
		resp.Analysis = analysis
	}

	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, resp, ""))
}

// ParseResume parses raw resume text
// @Summary Parse a resume
// @Description Extract structured data and analysis from raw resume text
// @Tags Parse
// @Accept json
// @Produce json
// @Param request body models.ParseRequest true "Resume text"
// @Success 200 {object} models.APIResponse{data=models.ResumeParseResponse} "Parsed resume"
// @Failure 400 {object} models.ErrorResponse "Missing content"
// @Failure 422 {object} models.ErrorResponse "Content not recognizable as a resume"
// @Router /resume/parse [post]
func (h *ParseHandler) ParseResume(c *gin.Context) {
	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Invalid request body", err.Error()))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Missing required fields", "content required"))
		return
	}

	parsed, err := engine.ParseResume(req.Content)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	resp := models.ResumeParseResponse{ParsedData: parsed}

	analysis, err := engine.AnalyzeResume(parsed, req.Content)
	if err != nil {
		log.Printf("[ParseHandler] Resume analysis failed, returning parse only: %v", err)
	} else {
		resp.Analysis = analysis
	}

	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, resp, ""))
}
