package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neujobscan/backend/agent"
	"github.com/neujobscan/backend/auth"
	"github.com/neujobscan/backend/config"
	"github.com/neujobscan/backend/models"
	"github.com/neujobscan/backend/report"
)

// ScanHandler handles scan pipeline requests
type ScanHandler struct {
	agent *agent.ScanAgent
	cfg   *config.Config
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanAgent *agent.ScanAgent, cfg *config.Config) *ScanHandler {
	return &ScanHandler{
		agent: scanAgent,
		cfg:   cfg,
	}
}

// PerformScan runs the full resume/job scan pipeline
// @Summary Scan a resume against a job
// @Description Parse, analyze, match and score a resume against a job posting, with skill gaps and rewrite suggestions
// @Tags Scan
// @Accept json
// @Produce json
// @Param request body models.ScanRequest true "Scan request"
// @Success 200 {object} models.APIResponse{data=models.ATSResponse} "Scan result"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid fields"
// @Failure 422 {object} models.ErrorResponse "Document could not be parsed"
// @Failure 504 {object} models.ErrorResponse "Scan timed out"
// @Router /scan [post]
func (h *ScanHandler) PerformScan(c *gin.Context) {
	var req models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Invalid request body", err.Error()))
		return
	}

	// Logged-in callers may omit userId; it defaults to their own identity
	if strings.TrimSpace(req.UserID) == "" {
		if claims := auth.GetAuthClaims(c); claims != nil {
			req.UserID = claims.UserID
		}
	}

	if missing := missingScanFields(&req); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Missing required fields",
			strings.Join(missing, ", ")+" required"))
		return
	}

	scan, err := h.agent.PerformScan(c.Request.Context(), agent.ScanInput{
		ResumeText: req.ResumeText,
		JobText:    req.JobText,
		FileName:   req.FileName,
		UserID:     req.UserID,
	})
	if err != nil {
		log.Printf("[ScanHandler] Scan failed for user=%s: %v", req.UserID, err)
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, scan, "Scan completed"))
}

// GetScanHistory returns the caller's past scans, newest first
// @Summary Get scan history
// @Description List a user's scans, most recent first
// @Tags Scan
// @Produce json
// @Param userId query string true "User ID"
// @Param limit query int false "Max scans to return"
// @Success 200 {object} models.APIResponse{data=[]models.ATSResponse} "Scan history"
// @Failure 400 {object} models.ErrorResponse "Missing userId"
// @Router /scan [get]
func (h *ScanHandler) GetScanHistory(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		if claims := auth.GetAuthClaims(c); claims != nil {
			userID = claims.UserID
		}
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Missing required fields", "userId required"))
		return
	}

	limit := h.cfg.HistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				http.StatusBadRequest, "Invalid limit", "limit must be a positive integer"))
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	scans, err := h.agent.GetScanHistory(c.Request.Context(), userID, limit)
	if err != nil {
		log.Printf("[ScanHandler] History lookup failed for user=%s: %v", userID, err)
		writeEngineError(c, err)
		return
	}
	if scans == nil {
		scans = []*models.ATSResponse{}
	}

	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, scans, ""))
}

// GetScan returns one scan by ID
// @Summary Get one scan
// @Description Fetch a single scan result by its ID
// @Tags Scan
// @Produce json
// @Param scanId path string true "Scan ID"
// @Success 200 {object} models.APIResponse{data=models.ATSResponse} "Scan"
// @Failure 404 {object} models.ErrorResponse "Scan not found"
// @Router /scan/{scanId} [get]
func (h *ScanHandler) GetScan(c *gin.Context) {
	scanID := c.Param("scanId")

	scan, err := h.agent.GetScan(c.Request.Context(), scanID)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, scan, ""))
}

// ExportScan downloads one scan as CSV or JSON
// @Summary Export a scan
// @Description Download one scan result as a CSV or JSON file
// @Tags Scan
// @Produce json
// @Produce text/csv
// @Param scanId path string true "Scan ID"
// @Param format query string false "Export format: csv or json" default(json)
// @Success 200 {file} file "Rendered scan"
// @Failure 400 {object} models.ErrorResponse "Unsupported format"
// @Failure 404 {object} models.ErrorResponse "Scan not found"
// @Router /scan/{scanId}/export [get]
func (h *ScanHandler) ExportScan(c *gin.Context) {
	scanID := c.Param("scanId")

	renderer, err := report.ForFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Unsupported export format", err.Error()))
		return
	}

	scan, err := h.agent.GetScan(c.Request.Context(), scanID)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	filename := fmt.Sprintf("%s.%s", scan.ScanID, renderer.FileExtension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", renderer.ContentType())
	c.Status(http.StatusOK)

	if err := renderer.Render(c.Writer, scan); err != nil {
		log.Printf("[ScanHandler] Export render failed for scan=%s: %v", scanID, err)
	}
}

// GetTools lists the scan tools available over MCP
// @Summary List available tools
// @Description List the scan tool definitions exposed to external agents
// @Tags Tools
// @Produce json
// @Success 200 {object} models.APIResponse "Tool definitions"
// @Router /tools [get]
func (h *ScanHandler) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, h.agent.GetToolDefinitions(), ""))
}

func missingScanFields(req *models.ScanRequest) []string {
	var missing []string
	if strings.TrimSpace(req.ResumeText) == "" {
		missing = append(missing, "resumeText")
	}
	if strings.TrimSpace(req.JobText) == "" {
		missing = append(missing, "jobText")
	}
	if strings.TrimSpace(req.UserID) == "" {
		missing = append(missing, "userId")
	}
	return missing
}
