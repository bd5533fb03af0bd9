package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/neujobscan/backend/models"
)

// Match weights. Fixed and documented; they sum to 1.0. When a category has
// no applicable data it scores 100 (neutral) and its weight is redistributed
// proportionally among the remaining categories.
const (
	matchKeywordWeight    = 0.30
	matchSkillWeight      = 0.25
	matchExperienceWeight = 0.25
	matchEducationWeight  = 0.10
	matchATSWeight        = 0.10
)

// recencyDecay multiplies the contribution of each successively older role
const recencyDecay = 0.8

// requiredSkillWeight is the weight of a required job skill relative to an
// optional one when computing the skill score
const requiredSkillWeight = 2.0

// neutralScore is assigned to categories with no applicable data
const neutralScore = 100.0

// categoryScore pairs a sub-score with its weight and applicability
type categoryScore struct {
	score      float64
	weight     float64
	applicable bool
}

// CreateMatch compares one parsed resume against one parsed job and produces
// the weighted MatchResult. Pure and deterministic: identical inputs always
// yield identical output. Fails only on missing inputs.
func CreateMatch(resume *models.ParsedResumeData, job *models.ParsedJobData) (*models.MatchResult, error) {
	if resume == nil {
		return nil, &ValidationError{Field: "resume", Message: "resume data is required"}
	}
	if job == nil {
		return nil, &ValidationError{Field: "job", Message: "job data is required"}
	}

	corpus := resumeCorpus(resume)
	corpusTokens := Tokenize(corpus)
	corpusLower := strings.ToLower(corpus)

	keyword := scoreKeywords(job, corpusTokens, corpusLower)
	skill := scoreSkills(job, corpusTokens, corpusLower)
	experience := scoreExperience(resume, job)
	education := scoreEducation(resume, job)
	ats := scoreStructure(resume)

	categories := []categoryScore{
		{keyword.score, matchKeywordWeight, keyword.applicable},
		{skill.score, matchSkillWeight, skill.applicable},
		{experience.score, matchExperienceWeight, experience.applicable},
		{education.score, matchEducationWeight, education.applicable},
		{ats.score, matchATSWeight, ats.applicable},
	}

	overall := combineWeighted(categories)

	result := &models.MatchResult{
		OverallScore:    overall,
		ATSScore:        resolved(ats),
		KeywordScore:    resolved(keyword),
		ExperienceScore: resolved(experience),
		EducationScore:  resolved(education),
		SkillScore:      resolved(skill),
		MatchPercentage: int(math.Round(overall)),
	}

	result.MissingKeywords = missingKeywords(job, corpusTokens, corpusLower)
	result.Strengths, result.Gaps, result.Recommendations = matchNotes(result, job)

	return result, nil
}

// combineWeighted computes the fixed-weight sum over applicable categories,
// renormalizing weights so they still sum to 1. Summation order is fixed so
// identical inputs always produce the identical float.
func combineWeighted(categories []categoryScore) float64 {
	var weighted, totalWeight float64
	for _, c := range categories {
		if !c.applicable {
			continue
		}
		weighted += c.score * c.weight
		totalWeight += c.weight
	}
	if totalWeight == 0 {
		// Nothing to compare on either side
		return neutralScore
	}
	return clampScore(weighted / totalWeight)
}

// resolved returns the category score, or the neutral score when the
// category had no applicable data.
func resolved(c categoryScore) float64 {
	if !c.applicable {
		return neutralScore
	}
	return clampScore(c.score)
}

// resumeCorpus flattens every text-bearing resume field into one searchable
// string
func resumeCorpus(resume *models.ParsedResumeData) string {
	var sb strings.Builder
	sb.WriteString(resume.Summary)
	sb.WriteString("\n")
	for _, e := range resume.Experience {
		sb.WriteString(e.Title)
		sb.WriteString(" ")
		sb.WriteString(e.Company)
		sb.WriteString(" ")
		sb.WriteString(e.Description)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(e.Highlights, " "))
		sb.WriteString(" ")
		sb.WriteString(strings.Join(e.Skills, " "))
		sb.WriteString("\n")
	}
	for _, s := range resume.Skills {
		sb.WriteString(s.Name)
		sb.WriteString("\n")
	}
	for _, e := range resume.Education {
		sb.WriteString(e.Degree)
		sb.WriteString(" ")
		sb.WriteString(e.Field)
		sb.WriteString(" ")
		sb.WriteString(e.Institution)
		sb.WriteString("\n")
	}
	for _, p := range resume.Projects {
		sb.WriteString(p.Name)
		sb.WriteString(" ")
		sb.WriteString(p.Description)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(p.Technologies, " "))
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Join(resume.Certifications, " "))
	return sb.String()
}

// scoreKeywords: fraction of job keywords found (exactly or semantically) in
// the resume corpus, scaled to [0,100]. Not applicable when the job lists no
// keywords.
func scoreKeywords(job *models.ParsedJobData, corpusTokens map[string]bool, corpusLower string) categoryScore {
	if len(job.Keywords) == 0 {
		return categoryScore{applicable: false}
	}
	found := 0
	for _, kw := range job.Keywords {
		if _, _, ok := TermMatch(kw, corpusTokens, corpusLower); ok {
			found++
		}
	}
	return categoryScore{
		score:      float64(found) / float64(len(job.Keywords)) * 100,
		applicable: true,
	}
}

// scoreSkills: ratio of job skills evidenced in the resume, with required
// skills weighted requiredSkillWeight times an optional one.
func scoreSkills(job *models.ParsedJobData, corpusTokens map[string]bool, corpusLower string) categoryScore {
	if len(job.Skills) == 0 {
		return categoryScore{applicable: false}
	}
	var matched, total float64
	for _, s := range job.Skills {
		w := 1.0
		if s.Required {
			w = requiredSkillWeight
		}
		total += w
		if _, _, ok := TermMatch(s.Name, corpusTokens, corpusLower); ok {
			matched += w
		}
	}
	return categoryScore{score: matched / total * 100, applicable: true}
}

// scoreExperience: token overlap between each role's text and the job's
// responsibilities/requirements, weighted by recency (most recent role first,
// each older role decayed by recencyDecay).
func scoreExperience(resume *models.ParsedResumeData, job *models.ParsedJobData) categoryScore {
	jobTerms := append(append([]string{}, job.Responsibilities...), job.Requirements...)
	if len(jobTerms) == 0 {
		return categoryScore{applicable: false}
	}
	jobTokens := Tokenize(strings.Join(jobTerms, "\n"))
	if len(jobTokens) == 0 {
		return categoryScore{applicable: false}
	}
	if len(resume.Experience) == 0 {
		return categoryScore{score: 0, applicable: true}
	}

	var weighted, totalWeight float64
	weight := 1.0
	for _, role := range resume.Experience {
		roleTokens := Tokenize(role.Title + " " + role.Description + " " + strings.Join(role.Highlights, " ") + " " + strings.Join(role.Skills, " "))
		overlap := 0
		for t := range roleTokens {
			if jobTokens[t] {
				overlap++
			}
		}
		// An overlap of 12 distinct terms saturates a role's contribution
		roleScore := clampScore(float64(overlap) / 12.0 * 100)
		weighted += roleScore * weight
		totalWeight += weight
		weight *= recencyDecay
	}

	return categoryScore{score: weighted / totalWeight, applicable: true}
}

// degreeRank orders degrees for minimum-requirement comparison
var degreeRank = map[string]int{
	"Associate": 1,
	"Bachelor":  2,
	"Master":    3,
	"PhD":       4,
}

// scoreEducation: degree and field match against the job's stated education
// requirements, with partial credit for related fields. Not applicable when
// the job states none.
func scoreEducation(resume *models.ParsedResumeData, job *models.ParsedJobData) categoryScore {
	if len(job.EducationReqs) == 0 {
		return categoryScore{applicable: false}
	}
	if len(resume.Education) == 0 {
		return categoryScore{score: 0, applicable: true}
	}

	// Requirements usually name the minimum acceptable degree; take the
	// lowest rank mentioned.
	reqText := strings.ToLower(strings.Join(job.EducationReqs, " "))
	requiredRank := 0
	for degree, rank := range degreeRank {
		if !strings.Contains(reqText, strings.ToLower(degree)) {
			continue
		}
		if requiredRank == 0 || rank < requiredRank {
			requiredRank = rank
		}
	}
	if requiredRank == 0 {
		requiredRank = degreeRank["Bachelor"]
	}

	best := 0.0
	reqTokens := Tokenize(reqText)
	for _, edu := range resume.Education {
		score := 0.0
		if degreeRank[edu.Degree] >= requiredRank {
			score = 70
		} else if degreeRank[edu.Degree] > 0 {
			score = 40 // a degree, just below the stated minimum
		}

		// Field match: full credit on overlap, partial for any shared token
		fieldTokens := Tokenize(edu.Field)
		overlap := 0
		for t := range fieldTokens {
			if reqTokens[t] {
				overlap++
			}
		}
		if overlap > 0 {
			score += 30
		} else if edu.Field != "" {
			score += 10 // related but different field
		}

		if score > best {
			best = score
		}
	}

	return categoryScore{score: clampScore(best), applicable: true}
}

// scoreStructure is the job-independent ATS compliance heuristic over the
// parsed resume structure
func scoreStructure(resume *models.ParsedResumeData) categoryScore {
	score := 100.0
	if resume.PersonalInfo.Email == "" {
		score -= 15
	}
	if resume.PersonalInfo.Phone == "" {
		score -= 5
	}
	if resume.Summary == "" {
		score -= 10
	}
	if len(resume.Experience) == 0 {
		score -= 25
	} else {
		for _, e := range resume.Experience {
			if e.StartDate == "" {
				score -= 5
				break
			}
		}
	}
	if len(resume.Skills) == 0 {
		score -= 20
	}
	if len(resume.Education) == 0 {
		score -= 10
	}
	return categoryScore{score: clampScore(score), applicable: true}
}

func missingKeywords(job *models.ParsedJobData, corpusTokens map[string]bool, corpusLower string) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, kw := range job.Keywords {
		if _, _, ok := TermMatch(kw, corpusTokens, corpusLower); ok {
			continue
		}
		key := Canonicalize(kw)
		if seen[key] {
			continue
		}
		seen[key] = true
		missing = append(missing, kw)
	}
	sort.Strings(missing)
	if len(missing) > 20 {
		missing = missing[:20]
	}
	return missing
}

func matchNotes(result *models.MatchResult, job *models.ParsedJobData) (strengths, gaps, recommendations []string) {
	if result.SkillScore >= 75 {
		strengths = append(strengths, "Most of the job's skills are evidenced in the resume")
	} else if result.SkillScore < 50 {
		gaps = append(gaps, "Several required skills are missing from the resume")
		recommendations = append(recommendations, "Add the job's required skills you actually have to the skills section")
	}
	if result.KeywordScore >= 70 {
		strengths = append(strengths, "Resume vocabulary lines up with the job posting")
	} else {
		gaps = append(gaps, fmt.Sprintf("%d job keywords are not present in the resume", len(result.MissingKeywords)))
		recommendations = append(recommendations, "Mirror the posting's terminology where it matches your experience")
	}
	if result.ExperienceScore >= 70 {
		strengths = append(strengths, "Recent roles overlap strongly with the job's responsibilities")
	} else if result.ExperienceScore < 40 {
		gaps = append(gaps, "Work history shows little overlap with the job's responsibilities")
		recommendations = append(recommendations, "Reframe recent experience bullets around the responsibilities this job lists")
	}
	if result.ATSScore < 70 {
		recommendations = append(recommendations, "Fix structural issues (contact info, section headers, dates) to pass ATS filters")
	}
	if result.EducationScore < 50 && len(job.EducationReqs) > 0 {
		gaps = append(gaps, "Education does not meet the stated requirement")
	}
	return strengths, gaps, recommendations
}
