package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/neujobscan/backend/models"
)

// BuildKeywordMatches classifies every job keyword and skill against the
// resume text: exact token hits, semantic hits (synonym or multiword
// containment), and misses, plus per-category sub-scores over the job's
// skills
func BuildKeywordMatches(resume *models.ParsedResumeData, job *models.ParsedJobData, resumeText string) models.KeywordMatches {
	corpus := resumeText + "\n" + strings.Join(resume.SkillNames(), "\n")
	tokens := Tokenize(corpus)
	lower := strings.ToLower(corpus)

	var out models.KeywordMatches
	seen := map[string]bool{}

	classify := func(term string) {
		key := Canonicalize(term)
		if seen[key] {
			return
		}
		seen[key] = true
		matched, semantic, ok := TermMatch(term, tokens, lower)
		switch {
		case !ok:
			out.Missing = append(out.Missing, term)
		case semantic:
			out.SemanticMatches = append(out.SemanticMatches, models.KeywordMatch{Keyword: term, Matched: matched, Semantic: true})
		default:
			out.ExactMatches = append(out.ExactMatches, models.KeywordMatch{Keyword: term, Semantic: false})
		}
	}

	for _, s := range job.Skills {
		classify(s.Name)
	}
	for _, k := range job.Keywords {
		classify(k)
	}
	sort.Strings(out.Missing)

	out.TechnicalScore = categoryHitRate(job, resume, tokens, lower, models.SkillCategoryTechnical)
	out.SoftScore = categoryHitRate(job, resume, tokens, lower, models.SkillCategorySoft)
	out.LanguageScore = categoryHitRate(job, resume, tokens, lower, models.SkillCategoryLanguage)
	out.ToolScore = categoryHitRate(job, resume, tokens, lower, models.SkillCategoryTool)
	return out
}

// categoryHitRate is the matched fraction of the job's skills in one
// category. A category the job never asks for scores 100.
func categoryHitRate(job *models.ParsedJobData, resume *models.ParsedResumeData, tokens map[string]bool, lower string, category string) float64 {
	total, hit := 0, 0
	for _, s := range job.Skills {
		if categorizeSkill(s.Name) != category {
			continue
		}
		total++
		if _, _, ok := TermMatch(s.Name, tokens, lower); ok {
			hit++
		}
	}
	if total == 0 {
		return 100
	}
	return clampScore(float64(hit) / float64(total) * 100)
}

// Explain renders a deterministic natural-language summary of a scan. Used
// when no language model is configured or the model call fails.
func Explain(job *models.ParsedJobData, match *models.MatchResult, gaps *models.SkillGaps) string {
	var b strings.Builder

	title := job.Title
	if title == "" {
		title = "this role"
	}
	fmt.Fprintf(&b, "Your resume scores %d%% against %s.", match.MatchPercentage, title)

	switch {
	case match.MatchPercentage >= 80:
		b.WriteString(" This is a strong match; apply with confidence.")
	case match.MatchPercentage >= 60:
		b.WriteString(" This is a solid match with room to sharpen a few areas.")
	default:
		b.WriteString(" The match is weak today, but the gaps below are addressable.")
	}

	if len(gaps.Strengths) > 0 {
		names := make([]string, 0, 3)
		for _, s := range gaps.Strengths {
			names = append(names, s.Name)
			if len(names) == 3 {
				break
			}
		}
		fmt.Fprintf(&b, " Your strongest signals are %s.", strings.Join(names, ", "))
	}

	var critical []string
	for _, m := range gaps.MissingSkills {
		if m.Importance == models.ImportanceCritical {
			critical = append(critical, m.Name)
		}
		if len(critical) == 3 {
			break
		}
	}
	if len(critical) > 0 {
		fmt.Fprintf(&b, " The biggest gaps are %s; address these first.", strings.Join(critical, ", "))
	}

	if len(match.Recommendations) > 0 {
		fmt.Fprintf(&b, " Next step: %s", lowerFirst(match.Recommendations[0]))
	}

	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
