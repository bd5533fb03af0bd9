package models

// ResumeAnalysis is a read-only quality summary of one resume, independent of
// any specific job. All score fields are in [0,100].
// @Description Per-resume quality analysis
type ResumeAnalysis struct {
	OverallScore   float64 `json:"overallScore"`
	ATSScore       float64 `json:"atsScore"`
	KeywordScore   float64 `json:"keywordScore"`
	StructureScore float64 `json:"structureScore"`
	ContentScore   float64 `json:"contentScore"`

	WordCount      int      `json:"wordCount"`
	SeniorityLevel string   `json:"seniorityLevel,omitempty"` // entry, mid, senior, lead
	Strengths      []string `json:"strengths,omitempty"`
	Improvements   []string `json:"improvements,omitempty"`
}

// JobAnalysis is a read-only summary of one job description. All score fields
// are in [0,100].
// @Description Per-job analysis with difficulty signal
type JobAnalysis struct {
	Difficulty      string   `json:"difficulty"` // easy, medium, hard
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	RequiredSkills  int      `json:"requiredSkillCount"`
	OptionalSkills  int      `json:"optionalSkillCount"`
	KeywordDensity  float64  `json:"keywordDensity"`
	TopKeywords     []string `json:"topKeywords,omitempty"`
}

// Job difficulty constants
const (
	JobDifficultyEasy   = "easy"
	JobDifficultyMedium = "medium"
	JobDifficultyHard   = "hard"
)

// MatchResult is the central aggregate of one resume vs one job comparison.
// OverallScore is always the documented weighted combination of the five
// category scores; it is never set independently. Immutable after creation.
// @Description Resume-to-job match result with weighted sub-scores
type MatchResult struct {
	ResumeID string `json:"resumeId,omitempty"`
	JobID    string `json:"jobId,omitempty"`

	OverallScore    float64 `json:"overallScore"`
	ATSScore        float64 `json:"atsScore"`
	KeywordScore    float64 `json:"keywordScore"`
	ExperienceScore float64 `json:"experienceScore"`
	EducationScore  float64 `json:"educationScore"`
	SkillScore      float64 `json:"skillScore"`

	// OverallScore re-expressed as an integer percent
	MatchPercentage int `json:"matchPercentage"`

	Strengths       []string `json:"strengths,omitempty"`
	Gaps            []string `json:"gaps,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	MissingKeywords []string `json:"missingKeywords,omitempty"`
}
