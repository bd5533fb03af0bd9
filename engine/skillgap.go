package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/neujobscan/backend/models"
)

// importantFrequency is the minimum number of mentions in the job text for an
// optional missing skill to be classified important rather than nice-to-have
const importantFrequency = 2

// learningResources maps a skill category to generic learning guidance
var learningResources = map[string][]string{
	models.SkillCategoryTechnical: {
		"Build a small project that uses it end to end",
		"Complete an interactive course and publish the exercises",
	},
	models.SkillCategoryTool: {
		"Work through the official getting-started guide",
		"Adopt it in an existing side project",
	},
	models.SkillCategorySoft: {
		"Volunteer for a task that exercises it and collect feedback",
	},
	models.SkillCategoryLanguage: {
		"Take a certified proficiency assessment",
	},
}

// ComputeSkillGaps derives missing skills, strengths and learning guidance
// from a parsed resume/job pair. A skill is never listed both missing and a
// strength. Pure function.
func ComputeSkillGaps(resume *models.ParsedResumeData, job *models.ParsedJobData) (*models.SkillGaps, error) {
	if resume == nil {
		return nil, &ValidationError{Field: "resume", Message: "resume data is required"}
	}
	if job == nil {
		return nil, &ValidationError{Field: "job", Message: "job data is required"}
	}

	corpus := resumeCorpus(resume)
	corpusTokens := Tokenize(corpus)
	corpusLower := strings.ToLower(corpus)

	jobTextLower := strings.ToLower(job.Description + "\n" +
		strings.Join(job.Requirements, "\n") + "\n" +
		strings.Join(job.Responsibilities, "\n"))

	gaps := &models.SkillGaps{}
	matchedCanonical := make(map[string]bool)
	missingCanonical := make(map[string]bool)
	matched := 0

	for _, skill := range job.Skills {
		key := Canonicalize(skill.Name)
		if _, _, ok := TermMatch(skill.Name, corpusTokens, corpusLower); ok {
			matched++
			matchedCanonical[key] = true
			continue
		}
		if missingCanonical[key] {
			continue
		}
		missingCanonical[key] = true
		category := categorizeSkill(skill.Name)
		gaps.MissingSkills = append(gaps.MissingSkills, models.MissingSkill{
			Name:       skill.Name,
			Importance: classifyImportance(skill, jobTextLower),
			Category:   category,
			Resources:  learningResources[category],
		})
	}

	// Strengths: resume skills the job actually asks for, highest confidence
	// first (exact matches are high confidence by construction). Skills in
	// the missing set are excluded so the two lists stay disjoint.
	for _, skill := range resume.Skills {
		key := Canonicalize(skill.Name)
		if missingCanonical[key] || !matchedCanonical[key] {
			continue
		}
		matchedCanonical[key] = false // emit once
		gaps.Strengths = append(gaps.Strengths, models.SkillStrength{
			Name:  skill.Name,
			Level: skill.Level,
		})
	}
	// Job skills matched through free text rather than the skills section
	for _, skill := range job.Skills {
		key := Canonicalize(skill.Name)
		if !matchedCanonical[key] {
			continue
		}
		matchedCanonical[key] = false
		gaps.Strengths = append(gaps.Strengths, models.SkillStrength{Name: skill.Name})
	}

	sortMissing(gaps.MissingSkills)

	if len(job.Skills) > 0 {
		gaps.MarketAlignment = clampScore(float64(matched) / float64(len(job.Skills)) * 100)
	} else {
		gaps.MarketAlignment = neutralScore
	}

	gaps.ImprovementAreas = improvementAreas(gaps.MissingSkills)
	gaps.CareerAdvice = buildCareerAdvice(gaps.MissingSkills)

	return gaps, nil
}

// classifyImportance: required job skills are critical; optional skills are
// important when mentioned at least importantFrequency times, nice-to-have
// otherwise.
func classifyImportance(skill models.JobSkill, jobTextLower string) string {
	if skill.Required {
		return models.ImportanceCritical
	}
	if strings.Count(jobTextLower, strings.ToLower(skill.Name)) >= importantFrequency {
		return models.ImportanceImportant
	}
	return models.ImportanceNiceToHave
}

var importanceOrder = map[string]int{
	models.ImportanceCritical:   0,
	models.ImportanceImportant:  1,
	models.ImportanceNiceToHave: 2,
}

func sortMissing(missing []models.MissingSkill) {
	sort.SliceStable(missing, func(i, j int) bool {
		if importanceOrder[missing[i].Importance] != importanceOrder[missing[j].Importance] {
			return importanceOrder[missing[i].Importance] < importanceOrder[missing[j].Importance]
		}
		return missing[i].Name < missing[j].Name
	})
}

func improvementAreas(missing []models.MissingSkill) []string {
	var areas []string
	byCategory := make(map[string][]string)
	for _, m := range missing {
		byCategory[m.Category] = append(byCategory[m.Category], m.Name)
	}
	for _, cat := range []string{models.SkillCategoryTechnical, models.SkillCategoryTool, models.SkillCategorySoft, models.SkillCategoryLanguage} {
		if names := byCategory[cat]; len(names) > 0 {
			areas = append(areas, fmt.Sprintf("%s: %s", cat, strings.Join(names, ", ")))
		}
	}
	return areas
}

// buildCareerAdvice orders learning guidance by urgency: critical gaps go to
// the short-term horizon, important to mid-term, nice-to-have to long-term.
func buildCareerAdvice(missing []models.MissingSkill) models.CareerAdvice {
	advice := models.CareerAdvice{}
	for _, m := range missing {
		switch m.Importance {
		case models.ImportanceCritical:
			advice.ShortTerm = append(advice.ShortTerm, fmt.Sprintf("Close the %s gap first; the role requires it", m.Name))
		case models.ImportanceImportant:
			advice.MidTerm = append(advice.MidTerm, fmt.Sprintf("Build working knowledge of %s", m.Name))
		default:
			advice.LongTerm = append(advice.LongTerm, fmt.Sprintf("Pick up %s when time allows", m.Name))
		}
	}
	if len(missing) == 0 {
		advice.ShortTerm = append(advice.ShortTerm, "Skills already cover the posting; focus on presentation and outcomes")
	}
	return advice
}
