package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neujobscan/backend/models"
)

const sampleResume = `Jane Smith
jane.smith@example.com
(555) 123-4567
linkedin.com/in/janesmith

Summary
Senior software engineer with eight years building cloud services.

Experience

Senior Software Engineer at Acme Corp
2019 - Present
- Built Go microservices on Kubernetes serving 2M requests per day
- Reduced deployment time by 40% with Terraform pipelines

Software Engineer at Initech
2016 - 2019
- Developed React and TypeScript front ends

Education

Bachelor of Science in Computer Science
State University, 2016

Skills
Go, Kubernetes, Docker, Terraform, React, TypeScript, PostgreSQL, Communication
`

const sampleJob = `Senior Backend Engineer at CloudWorks
Location: Remote
Employment Type: Full-time

About the role
CloudWorks builds infrastructure tooling for container platforms.

Requirements
- 5+ years of backend development
- Strong Go and Kubernetes knowledge
- Solid PostgreSQL and Redis background
- Bachelor degree in Computer Science or a related field

Nice to have
- AWS familiarity
- Terraform

Responsibilities
- Design and build Go microservices
- Operate Kubernetes clusters in production
`

func TestParseResume_EmptyInput(t *testing.T) {
	_, err := ParseResume("   ")
	require.Error(t, err)

	var perr *ParsingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "resume", perr.DocType)
	assert.Equal(t, "input is empty", perr.Message)
}

func TestParseResume_TooShort(t *testing.T) {
	_, err := ParseResume("too short")
	require.Error(t, err)

	var perr *ParsingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "input too short to be a resume", perr.Message)
	assert.Equal(t, "too short", perr.RawText, "raw text survives parse failure")
}

func TestParseResume_PersonalInfo(t *testing.T) {
	parsed, err := ParseResume(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", parsed.PersonalInfo.Name)
	assert.Equal(t, "jane.smith@example.com", parsed.PersonalInfo.Email)
	assert.NotEmpty(t, parsed.PersonalInfo.Phone)
	assert.Equal(t, "linkedin.com/in/janesmith", parsed.PersonalInfo.LinkedIn)
}

func TestParseResume_Sections(t *testing.T) {
	parsed, err := ParseResume(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "Senior software engineer with eight years building cloud services.", parsed.Summary)

	require.Len(t, parsed.Experience, 2)
	first := parsed.Experience[0]
	assert.Equal(t, "Senior Software Engineer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "2019", first.StartDate)
	assert.True(t, first.Current)
	assert.Len(t, first.Highlights, 2)

	second := parsed.Experience[1]
	assert.Equal(t, "Software Engineer", second.Title)
	assert.Equal(t, "Initech", second.Company)
	assert.Equal(t, "2019", second.EndDate)
	assert.False(t, second.Current)

	require.Len(t, parsed.Education, 1)
	assert.Equal(t, "Bachelor", parsed.Education[0].Degree)
	assert.Equal(t, "Computer Science", parsed.Education[0].Field)
	assert.Equal(t, "State University", parsed.Education[0].Institution)
	assert.Equal(t, 2016, parsed.Education[0].Year)

	assert.Len(t, parsed.Skills, 8)
}

func TestParseResume_SkillCategories(t *testing.T) {
	parsed, err := ParseResume(sampleResume)
	require.NoError(t, err)

	byName := make(map[string]models.Skill)
	for _, s := range parsed.Skills {
		byName[s.Name] = s
	}

	assert.Equal(t, models.SkillCategoryTechnical, byName["Go"].Category)
	assert.Equal(t, models.SkillCategoryTool, byName["Kubernetes"].Category)
	assert.Equal(t, models.SkillCategoryTool, byName["Docker"].Category)
	assert.Equal(t, models.SkillCategorySoft, byName["Communication"].Category)
}

func TestParseResume_DeduplicatesSynonymSkills(t *testing.T) {
	text := `John Doe
john@example.com

Skills
Go, Golang, JavaScript, JS
`
	parsed, err := ParseResume(text)
	require.NoError(t, err)

	// Golang collapses into Go, JS into JavaScript
	require.Len(t, parsed.Skills, 2)
	assert.Equal(t, "Go", parsed.Skills[0].Name)
	assert.Equal(t, "JavaScript", parsed.Skills[1].Name)
}

func TestParseJob_EmptyInput(t *testing.T) {
	_, err := ParseJob("")
	var perr *ParsingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "job", perr.DocType)
}

func TestParseJob_TitleAndMetadata(t *testing.T) {
	parsed, err := ParseJob(sampleJob)
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", parsed.Title)
	assert.Equal(t, "CloudWorks", parsed.Company)
	assert.Equal(t, "Remote", parsed.Location)
	assert.Equal(t, models.EmploymentTypeFullTime, parsed.EmploymentType)
	assert.Equal(t, models.ExperienceLevelSenior, parsed.ExperienceLevel)
}

func TestParseJob_Sections(t *testing.T) {
	parsed, err := ParseJob(sampleJob)
	require.NoError(t, err)

	assert.Len(t, parsed.Requirements, 4)
	assert.Len(t, parsed.Responsibilities, 2)
	assert.NotEmpty(t, parsed.Keywords)

	// The degree requirement is lifted out of the requirements list
	require.Len(t, parsed.EducationReqs, 1)
	assert.Contains(t, parsed.EducationReqs[0], "Bachelor")
}

func TestParseJob_SkillRequirementFlags(t *testing.T) {
	parsed, err := ParseJob(sampleJob)
	require.NoError(t, err)

	required := make(map[string]bool)
	for _, s := range parsed.Skills {
		required[s.Name] = s.Required
	}

	for _, name := range []string{"go", "kubernetes", "postgresql", "redis"} {
		flag, found := required[name]
		require.True(t, found, "expected %s among extracted skills", name)
		assert.True(t, flag, "%s appears in requirements, must be required", name)
	}
	for _, name := range []string{"aws", "terraform", "microservices"} {
		flag, found := required[name]
		require.True(t, found, "expected %s among extracted skills", name)
		assert.False(t, flag, "%s is outside the requirements section", name)
	}
}

func TestParseJob_SkillTokenBoundaries(t *testing.T) {
	// "go" must not be detected from "good" or "Google"
	parsed, err := ParseJob(`Office Manager at Google
We want a good communicator with excellent organizational habits.
`)
	require.NoError(t, err)

	for _, s := range parsed.Skills {
		assert.NotEqual(t, "go", s.Name)
	}
}

func TestParseJob_SalaryRange(t *testing.T) {
	parsed, err := ParseJob(`Backend Engineer
Compensation: $120,000 - $150,000 per year
Some description text here.
`)
	require.NoError(t, err)
	assert.Contains(t, parsed.SalaryRange, "$120,000")
}
