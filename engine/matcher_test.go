package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neujobscan/backend/models"
)

// fullResume has every structural element present so scoreStructure gives 100
func fullResume() *models.ParsedResumeData {
	return &models.ParsedResumeData{
		PersonalInfo: models.PersonalInfo{
			Name:  "Jane Smith",
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
		Summary: "Backend engineer focused on distributed systems",
		Experience: []models.WorkExperience{
			{
				Title:     "Senior Software Engineer",
				Company:   "Acme Corp",
				StartDate: "2019",
				Current:   true,
				Highlights: []string{
					"Built Go microservices on Kubernetes",
					"Operated PostgreSQL clusters in production",
				},
			},
		},
		Skills: []models.Skill{
			{Name: "Go", Category: models.SkillCategoryTechnical},
			{Name: "Kubernetes", Category: models.SkillCategoryTool},
			{Name: "PostgreSQL", Category: models.SkillCategoryTechnical},
		},
		Education: []models.Education{
			{Degree: "Bachelor", Field: "Computer Science", Institution: "State University", Year: 2016},
		},
	}
}

func TestCreateMatch_NilInputs(t *testing.T) {
	job := &models.ParsedJobData{}

	_, err := CreateMatch(nil, job)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "resume", verr.Field)

	_, err = CreateMatch(fullResume(), nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "job", verr.Field)
}

func TestCreateMatch_EmptyJobFallsBackToStructure(t *testing.T) {
	// A job with no keywords, skills, requirements or education reqs leaves
	// only the structure category applicable; inapplicable categories report
	// the neutral score.
	result, err := CreateMatch(&models.ParsedResumeData{}, &models.ParsedJobData{})
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.KeywordScore)
	assert.Equal(t, 100.0, result.SkillScore)
	assert.Equal(t, 100.0, result.ExperienceScore)
	assert.Equal(t, 100.0, result.EducationScore)

	// Empty resume: -15 email, -5 phone, -10 summary, -25 experience,
	// -20 skills, -10 education
	assert.Equal(t, 15.0, result.ATSScore)
	assert.Equal(t, 15.0, result.OverallScore)
	assert.Equal(t, 15, result.MatchPercentage)
}

func TestCreateMatch_WeightRenormalization(t *testing.T) {
	// Only keywords (0.30) and structure (0.10) apply. All keywords hit, so
	// overall = (100*0.30 + ats*0.10) / 0.40.
	resume := &models.ParsedResumeData{
		Skills: []models.Skill{{Name: "go"}, {Name: "python"}},
	}
	job := &models.ParsedJobData{Keywords: []string{"go", "python"}}

	result, err := CreateMatch(resume, job)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.KeywordScore)
	// Resume has skills but nothing else: 100 - 15 - 5 - 10 - 25 - 10 = 35
	assert.Equal(t, 35.0, result.ATSScore)

	expected := (100*0.30 + 35*0.10) / 0.40
	assert.InDelta(t, expected, result.OverallScore, 1e-9)
	assert.Equal(t, int(math.Round(expected)), result.MatchPercentage)
}

func TestCreateMatch_RequiredSkillsWeighDouble(t *testing.T) {
	resume := &models.ParsedResumeData{
		Skills: []models.Skill{{Name: "go"}},
	}
	job := &models.ParsedJobData{
		Skills: []models.JobSkill{
			{Name: "go", Required: true},
			{Name: "rust", Required: false},
		},
	}

	result, err := CreateMatch(resume, job)
	require.NoError(t, err)

	// matched weight 2 of total 3
	assert.InDelta(t, 200.0/3.0, result.SkillScore, 1e-9)
}

func TestCreateMatch_EducationMinimumDegree(t *testing.T) {
	job := &models.ParsedJobData{
		EducationReqs: []string{"Bachelor degree in Computer Science required"},
	}

	// Meets minimum with matching field: 70 + 30
	result, err := CreateMatch(fullResume(), job)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.EducationScore)

	// Below minimum with unrelated field: 40 + 10
	resume := fullResume()
	resume.Education = []models.Education{{Degree: "Associate", Field: "Marketing"}}
	result, err = CreateMatch(resume, job)
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.EducationScore)

	// No education at all scores zero, not neutral
	resume.Education = nil
	result, err = CreateMatch(resume, job)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.EducationScore)
}

func TestCreateMatch_ExperienceRecencyDecay(t *testing.T) {
	job := &models.ParsedJobData{
		Responsibilities: []string{"Build microservices with Kubernetes and PostgreSQL in production"},
	}

	// The same overlapping role scores higher when it is most recent
	relevant := models.WorkExperience{
		Title:      "Engineer",
		Highlights: []string{"Built microservices with Kubernetes and PostgreSQL in production"},
	}
	unrelated := models.WorkExperience{
		Title:      "Cashier",
		Highlights: []string{"Handled register operations politely"},
	}

	recent := &models.ParsedResumeData{Experience: []models.WorkExperience{relevant, unrelated}}
	stale := &models.ParsedResumeData{Experience: []models.WorkExperience{unrelated, relevant}}

	recentResult, err := CreateMatch(recent, job)
	require.NoError(t, err)
	staleResult, err := CreateMatch(stale, job)
	require.NoError(t, err)

	assert.Greater(t, recentResult.ExperienceScore, staleResult.ExperienceScore)
}

func TestCreateMatch_NoExperienceScoresZero(t *testing.T) {
	job := &models.ParsedJobData{Requirements: []string{"Build distributed systems"}}
	result, err := CreateMatch(&models.ParsedResumeData{}, job)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.ExperienceScore)
}

func TestCreateMatch_MissingKeywordsDeduplicated(t *testing.T) {
	resume := &models.ParsedResumeData{Skills: []models.Skill{{Name: "python"}}}
	job := &models.ParsedJobData{Keywords: []string{"python", "golang", "go", "docker"}}

	result, err := CreateMatch(resume, job)
	require.NoError(t, err)

	// golang and go collapse to one missing entry; python is matched
	require.Len(t, result.MissingKeywords, 2)
	assert.Equal(t, "docker", result.MissingKeywords[0])
	assert.NotContains(t, result.MissingKeywords, "python")
}

func TestCreateMatch_Deterministic(t *testing.T) {
	resume, err := ParseResume(sampleResume)
	require.NoError(t, err)
	job, err := ParseJob(sampleJob)
	require.NoError(t, err)

	first, err := CreateMatch(resume, job)
	require.NoError(t, err)
	second, err := CreateMatch(resume, job)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCreateMatch_ScoresStayInRange(t *testing.T) {
	resume, err := ParseResume(sampleResume)
	require.NoError(t, err)
	job, err := ParseJob(sampleJob)
	require.NoError(t, err)

	result, err := CreateMatch(resume, job)
	require.NoError(t, err)

	for name, score := range map[string]float64{
		"overall":    result.OverallScore,
		"ats":        result.ATSScore,
		"keyword":    result.KeywordScore,
		"experience": result.ExperienceScore,
		"education":  result.EducationScore,
		"skill":      result.SkillScore,
	} {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 100.0, name)
	}
	assert.Equal(t, int(math.Round(result.OverallScore)), result.MatchPercentage)
}

func TestCreateMatch_NotesReflectScores(t *testing.T) {
	// A resume with none of the job's skills produces skill gaps and
	// recommendations
	resume := &models.ParsedResumeData{
		Skills: []models.Skill{{Name: "photoshop"}},
	}
	job := &models.ParsedJobData{
		Skills: []models.JobSkill{
			{Name: "go", Required: true},
			{Name: "kubernetes", Required: true},
		},
		Keywords: []string{"go", "kubernetes", "docker"},
	}

	result, err := CreateMatch(resume, job)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Gaps)
	assert.NotEmpty(t, result.Recommendations)
	assert.Contains(t, result.Gaps, "Several required skills are missing from the resume")
}
