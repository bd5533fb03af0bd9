package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/neujobscan/backend/models"
)

// CSVRenderer writes a flat summary of the scan: one header row, one score
// row, then the missing skills and suggestions as labeled sections
type CSVRenderer struct{}

func (r *CSVRenderer) ContentType() string {
	return "text/csv"
}

func (r *CSVRenderer) FileExtension() string {
	return "csv"
}

func (r *CSVRenderer) Render(w io.Writer, scan *models.ATSResponse) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"scanId", "timestamp", "jobTitle", "company", "matchPercentage",
			"overallScore", "atsScore", "keywordScore", "skillScore",
			"experienceScore", "educationScore"},
		{
			scan.ScanID,
			scan.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
			scan.Job.Title,
			scan.Job.Company,
			fmt.Sprintf("%d", scan.Match.MatchPercentage),
			formatScore(scan.Match.OverallScore),
			formatScore(scan.Match.ATSScore),
			formatScore(scan.Match.KeywordScore),
			formatScore(scan.Match.SkillScore),
			formatScore(scan.Match.ExperienceScore),
			formatScore(scan.Match.EducationScore),
		},
		{},
		{"missingSkill", "importance", "category"},
	}
	for _, m := range scan.SkillGaps.MissingSkills {
		rows = append(rows, []string{m.Name, m.Importance, m.Category})
	}

	rows = append(rows, []string{}, []string{"suggestionSection", "effort", "improvement", "keywordsAdded"})
	for _, s := range scan.Rewrites.QuickWins {
		rows = append(rows, suggestionRow(s))
	}
	for _, s := range scan.Rewrites.PriorityRewrites {
		rows = append(rows, suggestionRow(s))
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func suggestionRow(s models.RewriteSuggestion) []string {
	return []string{
		s.Section,
		s.Effort,
		formatScore(s.ATSScore.Improvement),
		strings.Join(s.KeywordsAdded, "; "),
	}
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
