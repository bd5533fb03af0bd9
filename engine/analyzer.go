package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/neujobscan/backend/models"
)

// Resume analysis weights. Fixed and documented; OverallScore is always this
// combination of the four component scores.
const (
	analysisATSWeight       = 0.30
	analysisKeywordWeight   = 0.20
	analysisStructureWeight = 0.25
	analysisContentWeight   = 0.25
)

var (
	metricRe    = regexp.MustCompile(`\d+(\.\d+)?\s*(%|percent|x\b|users|requests|ms\b|qps|hours|days)|\$\s?\d`)
	longLineRe  = regexp.MustCompile(`.{201,}`)
	actionVerbs = []string{
		"achieved", "built", "created", "delivered", "designed", "developed",
		"drove", "implemented", "improved", "increased", "launched", "led",
		"managed", "migrated", "optimized", "owned", "reduced", "scaled",
		"shipped", "streamlined",
	}
)

// AnalyzeResume computes a per-resume quality summary independent of any job.
// Pure function; rawText supplies the structural signals the parsed form
// no longer carries (line shape, headers, bullets).
func AnalyzeResume(parsed *models.ParsedResumeData, rawText string) (*models.ResumeAnalysis, error) {
	if parsed == nil {
		return nil, &ValidationError{Field: "resume", Message: "parsed resume is required"}
	}

	analysis := &models.ResumeAnalysis{
		WordCount: len(strings.Fields(rawText)),
	}

	analysis.ATSScore = structuralATSScore(parsed, rawText)
	analysis.KeywordScore = keywordDensityScore(rawText)
	analysis.StructureScore = structureScore(parsed)
	analysis.ContentScore = contentScore(parsed, rawText)

	analysis.OverallScore = clampScore(
		analysis.ATSScore*analysisATSWeight +
			analysis.KeywordScore*analysisKeywordWeight +
			analysis.StructureScore*analysisStructureWeight +
			analysis.ContentScore*analysisContentWeight)

	analysis.SeniorityLevel = detectSeniority(parsed)
	analysis.Strengths, analysis.Improvements = analysisNotes(parsed, analysis)

	return analysis, nil
}

// AnalyzeJob computes a per-job summary: difficulty, keyword signals,
// skill counts. Pure function of the parsed job.
func AnalyzeJob(parsed *models.ParsedJobData) (*models.JobAnalysis, error) {
	if parsed == nil {
		return nil, &ValidationError{Field: "job", Message: "parsed job is required"}
	}

	analysis := &models.JobAnalysis{
		ExperienceLevel: parsed.ExperienceLevel,
		TopKeywords:     parsed.Keywords,
	}
	for _, s := range parsed.Skills {
		if s.Required {
			analysis.RequiredSkills++
		} else {
			analysis.OptionalSkills++
		}
	}

	words := len(strings.Fields(parsed.Description)) + len(parsed.Requirements) + len(parsed.Responsibilities)
	if words > 0 {
		analysis.KeywordDensity = clampScore(float64(len(parsed.Keywords)) / float64(words) * 400)
	}

	analysis.Difficulty = jobDifficulty(analysis.RequiredSkills, parsed.ExperienceLevel)

	return analysis, nil
}

func jobDifficulty(requiredSkills int, level string) string {
	score := requiredSkills
	switch level {
	case models.ExperienceLevelSenior:
		score += 3
	case models.ExperienceLevelLead:
		score += 5
	}
	switch {
	case score <= 4:
		return models.JobDifficultyEasy
	case score <= 9:
		return models.JobDifficultyMedium
	default:
		return models.JobDifficultyHard
	}
}

// structuralATSScore estimates how well the raw document survives automated
// tracking systems: standard headers, contact info, bullets, sane line
// lengths, reasonable length.
func structuralATSScore(parsed *models.ParsedResumeData, rawText string) float64 {
	score := 100.0

	if parsed.PersonalInfo.Email == "" {
		score -= 15
	}
	if parsed.PersonalInfo.Phone == "" {
		score -= 5
	}
	if len(parsed.Experience) == 0 {
		score -= 20
	}
	if len(parsed.Skills) == 0 {
		score -= 15
	}
	if len(parsed.Education) == 0 {
		score -= 10
	}
	if !bulletRe.MatchString(rawText) {
		score -= 10
	}
	if longLineRe.MatchString(rawText) {
		score -= 5
	}
	words := len(strings.Fields(rawText))
	if words < 150 {
		score -= 10
	} else if words > 1200 {
		score -= 5
	}

	return clampScore(score)
}

// keywordDensityScore rewards resumes whose text carries recognized skill
// vocabulary, scaled so ~15 distinct terms reach full score.
func keywordDensityScore(rawText string) float64 {
	tokens := Tokenize(rawText)
	lower := strings.ToLower(rawText)

	found := 0
	for _, term := range skillVocabulary {
		if strings.ContainsAny(term, " /") {
			if strings.Contains(lower, term) {
				found++
			}
		} else if tokens[term] {
			found++
		}
	}

	return clampScore(float64(found) / 15.0 * 100)
}

func structureScore(parsed *models.ParsedResumeData) float64 {
	score := 0.0
	if parsed.Summary != "" {
		score += 15
	}
	if len(parsed.Experience) > 0 {
		score += 30
		dated := 0
		for _, e := range parsed.Experience {
			if e.StartDate != "" {
				dated++
			}
		}
		if dated == len(parsed.Experience) {
			score += 10
		}
	}
	if len(parsed.Education) > 0 {
		score += 15
	}
	if len(parsed.Skills) > 0 {
		score += 20
	}
	if len(parsed.Projects) > 0 || len(parsed.Certifications) > 0 {
		score += 10
	}
	return clampScore(score)
}

// contentScore rewards action verbs and quantified outcomes in experience text
func contentScore(parsed *models.ParsedResumeData, rawText string) float64 {
	lower := strings.ToLower(rawText)

	verbs := 0
	for _, v := range actionVerbs {
		if strings.Contains(lower, v) {
			verbs++
		}
	}
	metrics := len(metricRe.FindAllString(rawText, 10))

	score := float64(verbs)*8 + float64(metrics)*6
	if parsed.Summary != "" {
		score += 10
	}
	return clampScore(score)
}

func detectSeniority(parsed *models.ParsedResumeData) string {
	for _, e := range parsed.Experience {
		lower := strings.ToLower(e.Title)
		if strings.Contains(lower, "principal") || strings.Contains(lower, "staff") || strings.Contains(lower, "lead") || strings.Contains(lower, "head of") {
			return models.ExperienceLevelLead
		}
		if strings.Contains(lower, "senior") || strings.Contains(lower, "sr.") {
			return models.ExperienceLevelSenior
		}
	}
	switch {
	case len(parsed.Experience) >= 3:
		return models.ExperienceLevelMid
	case len(parsed.Experience) >= 1:
		return models.ExperienceLevelEntry
	default:
		return ""
	}
}

func analysisNotes(parsed *models.ParsedResumeData, a *models.ResumeAnalysis) (strengths, improvements []string) {
	if a.ContentScore >= 70 {
		strengths = append(strengths, "Experience entries use action verbs and quantified outcomes")
	} else {
		improvements = append(improvements, "Add measurable outcomes (numbers, percentages) to experience bullets")
	}
	if a.StructureScore >= 80 {
		strengths = append(strengths, "Resume covers all standard sections in a clear order")
	}
	if parsed.Summary == "" {
		improvements = append(improvements, "Add a short professional summary at the top")
	}
	if len(parsed.Skills) >= 8 {
		strengths = append(strengths, fmt.Sprintf("Broad skill coverage (%d skills listed)", len(parsed.Skills)))
	} else if len(parsed.Skills) > 0 && len(parsed.Skills) < 5 {
		improvements = append(improvements, "Expand the skills section; ATS filters match on listed skills")
	}
	if parsed.PersonalInfo.Email == "" {
		improvements = append(improvements, "Include an email address in the header")
	}
	return strengths, improvements
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
