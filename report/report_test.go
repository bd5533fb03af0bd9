package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neujobscan/backend/models"
)

func sampleScan() *models.ATSResponse {
	return &models.ATSResponse{
		ScanID:    "scan_test_1",
		UserID:    "jane@example.com",
		Timestamp: time.Date(2026, 8, 10, 14, 30, 0, 0, time.UTC),
		Job: models.ParsedJobData{
			Title:   "Backend Engineer",
			Company: "CloudWorks",
		},
		Match: models.MatchResult{
			MatchPercentage: 78,
			OverallScore:    77.5,
			ATSScore:        90,
			KeywordScore:    70,
			SkillScore:      80,
			ExperienceScore: 75,
			EducationScore:  100,
		},
		SkillGaps: models.SkillGaps{
			MissingSkills: []models.MissingSkill{
				{Name: "kubernetes", Importance: "critical", Category: "technical"},
				{Name: "terraform", Importance: "nice-to-have", Category: "tool"},
			},
		},
		Rewrites: models.RewriteSuggestions{
			QuickWins: []models.RewriteSuggestion{
				{
					Section:       "summary",
					Effort:        "low",
					ATSScore:      models.ScoreDelta{Before: 60, After: 75, Improvement: 15},
					KeywordsAdded: []string{"kubernetes", "go"},
				},
			},
			PriorityRewrites: []models.RewriteSuggestion{
				{
					Section:  "experience: Engineer @ CloudWorks",
					Effort:   "medium",
					ATSScore: models.ScoreDelta{Before: 50, After: 62, Improvement: 12},
				},
			},
		},
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{format: "csv", wantExt: "csv"},
		{format: "json", wantExt: "json"},
		{format: "", wantExt: "json"},
		{format: "xml", wantErr: true},
		{format: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format_"+tt.format, func(t *testing.T) {
			r, err := ForFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, r.FileExtension())
		})
	}
}

func TestJSONRenderer(t *testing.T) {
	r := &JSONRenderer{}
	assert.Equal(t, "application/json", r.ContentType())

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleScan()))

	var decoded models.ATSResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "scan_test_1", decoded.ScanID)
	assert.Equal(t, 78, decoded.Match.MatchPercentage)

	assert.Contains(t, buf.String(), "\n  ", "output is indented")
}

func TestCSVRenderer(t *testing.T) {
	r := &CSVRenderer{}
	assert.Equal(t, "text/csv", r.ContentType())

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleScan()))

	cr := csv.NewReader(&buf)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rows), 8)
	assert.Equal(t, "scanId", rows[0][0])
	assert.Contains(t, rows[0], "matchPercentage")

	score := rows[1]
	assert.Equal(t, "scan_test_1", score[0])
	assert.Equal(t, "Backend Engineer", score[2])
	assert.Equal(t, "78", score[4])
	assert.Equal(t, "77.5", score[5])
	assert.Equal(t, "90.0", score[6])

	assert.Equal(t, []string{"missingSkill", "importance", "category"}, rows[2])
	assert.Equal(t, []string{"kubernetes", "critical", "technical"}, rows[3])
	assert.Equal(t, []string{"terraform", "nice-to-have", "tool"}, rows[4])

	assert.Equal(t, []string{"suggestionSection", "effort", "improvement", "keywordsAdded"}, rows[5])
	assert.Equal(t, []string{"summary", "low", "15.0", "kubernetes; go"}, rows[6])
	assert.Equal(t, "experience: Engineer @ CloudWorks", rows[7][0])
}

func TestCSVRenderer_NoGapsOrSuggestions(t *testing.T) {
	scan := sampleScan()
	scan.SkillGaps.MissingSkills = nil
	scan.Rewrites = models.RewriteSuggestions{}

	var buf bytes.Buffer
	require.NoError(t, (&CSVRenderer{}).Render(&buf, scan))

	cr := csv.NewReader(&buf)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"missingSkill", "importance", "category"}, rows[2])
	assert.Equal(t, []string{"suggestionSection", "effort", "improvement", "keywordsAdded"}, rows[3])
}
