package models

import "time"

// KeywordMatch is one job keyword found in the resume, exactly or via synonym
type KeywordMatch struct {
	Keyword  string `json:"keyword"`
	Matched  string `json:"matched,omitempty"` // the resume token that matched, when different
	Semantic bool   `json:"semantic"`          // true when matched via synonym/containment
}

// KeywordMatches embeds the keyword-match detail of a scan. Category scores
// are in [0,100].
type KeywordMatches struct {
	ExactMatches    []KeywordMatch `json:"exactMatches,omitempty"`
	SemanticMatches []KeywordMatch `json:"semanticMatches,omitempty"`
	Missing         []string       `json:"missing,omitempty"`

	// Per skill-category sub-scores
	TechnicalScore float64 `json:"technicalScore"`
	SoftScore      float64 `json:"softScore"`
	LanguageScore  float64 `json:"languageScore"`
	ToolScore      float64 `json:"toolScore"`
}

// MissingSkill is a job skill not evidenced in the resume
type MissingSkill struct {
	Name       string   `json:"name"`
	Importance string   `json:"importance"` // critical, important, nice-to-have
	Category   string   `json:"category,omitempty"`
	Resources  []string `json:"learningResources,omitempty"`
}

// SkillStrength is a resume skill matched against the job with high confidence
type SkillStrength struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Skill importance constants
const (
	ImportanceCritical   = "critical"
	ImportanceImportant  = "important"
	ImportanceNiceToHave = "nice-to-have"
)

// SkillGaps is the skill-gap detail of a scan. A skill never appears both in
// MissingSkills and Strengths.
type SkillGaps struct {
	MissingSkills    []MissingSkill  `json:"missingSkills,omitempty"`
	Strengths        []SkillStrength `json:"strengths,omitempty"`
	ImprovementAreas []string        `json:"improvementAreas,omitempty"`
	CareerAdvice     CareerAdvice    `json:"careerAdvice"`
	MarketAlignment  float64         `json:"marketAlignment"` // [0,100]
}

// CareerAdvice groups learning-path guidance by time horizon
type CareerAdvice struct {
	ShortTerm []string `json:"shortTerm,omitempty"` // weeks
	MidTerm   []string `json:"midTerm,omitempty"`   // months
	LongTerm  []string `json:"longTerm,omitempty"`  // a year or more
}

// ScoreDelta is the projected before/after ATS score of one rewrite.
// Improvement is always After-Before and never negative.
type ScoreDelta struct {
	Before      float64 `json:"before"`
	After       float64 `json:"after"`
	Improvement float64 `json:"improvement"`
}

// RewriteSuggestion proposes a section-level rewrite keyed to a skill gap
type RewriteSuggestion struct {
	Section       string     `json:"section"`
	Original      string     `json:"original,omitempty"`
	Suggested     string     `json:"suggested"`
	Effort        string     `json:"effort"` // low, medium, high
	ATSScore      ScoreDelta `json:"atsScore"`
	KeywordsAdded []string   `json:"keywordsAdded,omitempty"`
	VerbsAdded    []string   `json:"verbsAdded,omitempty"`
	MetricsAdded  []string   `json:"metricsAdded,omitempty"`
}

// Rewrite effort constants
const (
	EffortLow    = "low"
	EffortMedium = "medium"
	EffortHigh   = "high"
)

// RewriteSuggestions partitions suggestions into quick wins and priority
// rewrites. The two sets are disjoint, each ranked by improvement descending.
type RewriteSuggestions struct {
	QuickWins        []RewriteSuggestion `json:"quickWins,omitempty"`
	PriorityRewrites []RewriteSuggestion `json:"priorityRewrites,omitempty"`
}

// ATSResponse is the aggregate produced by one scan. Every embedded score is
// in [0,100]; ScanID is unique per invocation; Timestamp is assigned at
// aggregation time and never altered.
// @Description Complete scan result for one resume/job pair
type ATSResponse struct {
	ScanID    string    `json:"scanId" firestore:"scanId"`
	UserID    string    `json:"userId" firestore:"userId"`
	FileName  string    `json:"fileName,omitempty" firestore:"fileName,omitempty"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`

	Resume ParsedResumeData `json:"resume" firestore:"resume"`
	Job    ParsedJobData    `json:"job" firestore:"job"`

	ResumeAnalysis ResumeAnalysis `json:"resumeAnalysis" firestore:"resumeAnalysis"`
	JobAnalysis    JobAnalysis    `json:"jobAnalysis" firestore:"jobAnalysis"`

	Match          MatchResult        `json:"match" firestore:"match"`
	KeywordMatches KeywordMatches     `json:"keywordMatches" firestore:"keywordMatches"`
	SkillGaps      SkillGaps          `json:"skillGaps" firestore:"skillGaps"`
	Rewrites       RewriteSuggestions `json:"rewrites" firestore:"rewrites"`

	// Natural-language explanation of the result. LLM-generated when the
	// Gemini collaborator is available, deterministic otherwise.
	Explanation string `json:"explanation,omitempty" firestore:"explanation,omitempty"`
}

// ActivityEvent is one entry in a user's scan activity feed
type ActivityEvent struct {
	ScanID    string    `json:"scanId"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	Company   string    `json:"company,omitempty"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// TrendPoint is one bucket in a score-over-time series
type TrendPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Score float64 `json:"score"`
	Scans int     `json:"scans"`
}

// Analytics is a read-side projection over a user's scan history. Derived,
// never authoritative; rebuildable from the history at any time.
// @Description Aggregate statistics over a user's scans
type Analytics struct {
	TotalScans   int             `json:"totalScans"`
	AverageScore float64         `json:"averageScore"`
	BestScore    int             `json:"bestScore"`
	Trend        []TrendPoint    `json:"trend,omitempty"`
	Activity     []ActivityEvent `json:"activity,omitempty"`
}
