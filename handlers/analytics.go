package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/neujobscan/backend/agent"
	"github.com/neujobscan/backend/models"
)

const activityFeedSize = 10

// AnalyticsHandler serves read-side projections over scan history
type AnalyticsHandler struct {
	agent *agent.ScanAgent
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(scanAgent *agent.ScanAgent) *AnalyticsHandler {
	return &AnalyticsHandler{agent: scanAgent}
}

// GetAnalytics returns aggregate statistics over a user's scans
// @Summary Get scan analytics
// @Description Aggregate statistics over a user's scans: totals, averages, score trend and recent activity
// @Tags Analytics
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} models.APIResponse{data=models.Analytics} "Analytics"
// @Failure 400 {object} models.ErrorResponse "Missing userId"
// @Router /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Missing required fields", "userId required"))
		return
	}

	scans, err := h.agent.GetScanHistory(c.Request.Context(), userID, 0)
	if err != nil {
		log.Printf("[AnalyticsHandler] History lookup failed for user=%s: %v", userID, err)
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, BuildAnalytics(scans), ""))
}

// BuildAnalytics projects a scan history into aggregate statistics. The
// projection is derived and rebuildable from the history at any time.
func BuildAnalytics(scans []*models.ATSResponse) *models.Analytics {
	analytics := &models.Analytics{
		TotalScans: len(scans),
		Trend:      []models.TrendPoint{},
		Activity:   []models.ActivityEvent{},
	}
	if len(scans) == 0 {
		return analytics
	}

	var sum float64
	byDate := map[string]*models.TrendPoint{}

	for _, scan := range scans {
		score := scan.Match.MatchPercentage
		sum += float64(score)
		if score > analytics.BestScore {
			analytics.BestScore = score
		}

		date := scan.Timestamp.Format("2006-01-02")
		point, ok := byDate[date]
		if !ok {
			point = &models.TrendPoint{Date: date}
			byDate[date] = point
		}
		point.Score += float64(score)
		point.Scans++

		if len(analytics.Activity) < activityFeedSize {
			analytics.Activity = append(analytics.Activity, models.ActivityEvent{
				ScanID:    scan.ScanID,
				JobTitle:  scan.Job.Title,
				Company:   scan.Job.Company,
				Score:     score,
				Timestamp: scan.Timestamp,
			})
		}
	}
	analytics.AverageScore = sum / float64(len(scans))

	for _, point := range byDate {
		point.Score /= float64(point.Scans)
		analytics.Trend = append(analytics.Trend, *point)
	}
	sort.Slice(analytics.Trend, func(i, j int) bool {
		return analytics.Trend[i].Date < analytics.Trend[j].Date
	})

	return analytics
}
