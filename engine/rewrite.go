package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/neujobscan/backend/models"
)

// improvementPerKeyword is the projected ATS gain for each missing keyword a
// rewrite works in, capped by maxImprovement per suggestion
const (
	improvementPerKeyword = 4.0
	maxImprovement        = 25.0
)

// GenerateSuggestions proposes section-level rewrites keyed to skill gaps.
// Every emitted suggestion has after >= before; quick wins and priority
// rewrites are disjoint, each ranked by improvement descending. Pure function.
func GenerateSuggestions(resume *models.ParsedResumeData, job *models.ParsedJobData, gaps *models.SkillGaps) (*models.RewriteSuggestions, error) {
	if resume == nil {
		return nil, &ValidationError{Field: "resume", Message: "resume data is required"}
	}
	if job == nil {
		return nil, &ValidationError{Field: "job", Message: "job data is required"}
	}
	if gaps == nil {
		computed, err := ComputeSkillGaps(resume, job)
		if err != nil {
			return nil, err
		}
		gaps = computed
	}

	jobTokens := Tokenize(job.Description + "\n" + strings.Join(job.Requirements, "\n") + "\n" + strings.Join(job.Responsibilities, "\n"))

	var all []models.RewriteSuggestion

	if s := suggestSummary(resume, job, gaps, jobTokens); s != nil {
		all = append(all, *s)
	}
	if s := suggestSkillsSection(resume, gaps); s != nil {
		all = append(all, *s)
	}
	all = append(all, suggestExperience(resume, job, jobTokens)...)

	return partitionSuggestions(all), nil
}

// suggestSummary rewrites or adds the professional summary so it leads with
// the job title and the matched plus addressable skills
func suggestSummary(resume *models.ParsedResumeData, job *models.ParsedJobData, gaps *models.SkillGaps, jobTokens map[string]bool) *models.RewriteSuggestion {
	before := sectionRelevance(resume.Summary, jobTokens)

	var keywords []string
	for _, s := range gaps.Strengths {
		keywords = append(keywords, s.Name)
		if len(keywords) == 4 {
			break
		}
	}
	if len(keywords) == 0 && resume.Summary != "" && before >= 70 {
		return nil // already aligned, nothing to add
	}

	suggested := buildSummaryText(resume, job, keywords)
	added := newKeywords(suggested, resume.Summary)
	after := clampScore(before + float64(len(added))*improvementPerKeyword)
	if resume.Summary == "" {
		after = clampScore(before + 15)
	}
	if after <= before {
		return nil
	}

	return &models.RewriteSuggestion{
		Section:       "summary",
		Original:      resume.Summary,
		Suggested:     suggested,
		Effort:        models.EffortLow,
		ATSScore:      delta(before, after),
		KeywordsAdded: added,
	}
}

// suggestSkillsSection proposes adding missing critical/important skills the
// candidate may plausibly have partial evidence for, as an explicit section
// edit
func suggestSkillsSection(resume *models.ParsedResumeData, gaps *models.SkillGaps) *models.RewriteSuggestion {
	var addable []string
	for _, m := range gaps.MissingSkills {
		if m.Importance != models.ImportanceNiceToHave {
			addable = append(addable, m.Name)
		}
		if len(addable) == 5 {
			break
		}
	}
	if len(addable) == 0 {
		return nil
	}

	current := strings.Join(resume.SkillNames(), ", ")
	before := clampScore(60 - float64(len(addable))*improvementPerKeyword)
	after := clampScore(before + float64(len(addable))*improvementPerKeyword)
	if after <= before {
		return nil
	}

	return &models.RewriteSuggestion{
		Section:  "skills",
		Original: current,
		Suggested: fmt.Sprintf("%s, and, where you can honestly claim them: %s",
			current, strings.Join(addable, ", ")),
		Effort:        models.EffortLow,
		ATSScore:      delta(before, after),
		KeywordsAdded: addable,
	}
}

// rewriteVerbs are preferred leading verbs for experience bullets
var rewriteVerbs = []string{"Delivered", "Led", "Built", "Reduced", "Scaled"}

// suggestExperience rewrites low-relevance roles around the job's
// responsibilities vocabulary
func suggestExperience(resume *models.ParsedResumeData, job *models.ParsedJobData, jobTokens map[string]bool) []models.RewriteSuggestion {
	var suggestions []models.RewriteSuggestion

	for i, role := range resume.Experience {
		if i >= 3 {
			break // older roles rarely repay rewriting
		}
		text := role.Description + " " + strings.Join(role.Highlights, " ")
		before := sectionRelevance(text, jobTokens)
		if before >= 75 {
			continue
		}

		missing := missingRoleTerms(text, job, 3)
		if len(missing) == 0 {
			continue
		}

		verb := rewriteVerbs[i%len(rewriteVerbs)]
		suggested := fmt.Sprintf("%s outcomes in %s as %s, emphasizing %s with a measurable result per bullet",
			verb, role.Company, role.Title, strings.Join(missing, ", "))
		after := clampScore(before + minFloat(float64(len(missing))*improvementPerKeyword+6, maxImprovement))
		if after <= before {
			continue
		}

		suggestions = append(suggestions, models.RewriteSuggestion{
			Section:       fmt.Sprintf("experience: %s", roleLabel(role)),
			Original:      strings.TrimSpace(text),
			Suggested:     suggested,
			Effort:        models.EffortMedium,
			ATSScore:      delta(before, after),
			KeywordsAdded: missing,
			VerbsAdded:    []string{verb},
			MetricsAdded:  []string{"one quantified outcome per bullet"},
		})
	}

	return suggestions
}

// partitionSuggestions splits into quick wins (low effort, nonzero
// improvement) and priority rewrites (everything else), both sorted by
// improvement descending. The sets never overlap.
func partitionSuggestions(all []models.RewriteSuggestion) *models.RewriteSuggestions {
	out := &models.RewriteSuggestions{}
	for _, s := range all {
		if s.Effort == models.EffortLow && s.ATSScore.Improvement > 0 {
			out.QuickWins = append(out.QuickWins, s)
		} else {
			out.PriorityRewrites = append(out.PriorityRewrites, s)
		}
	}
	byImprovement := func(list []models.RewriteSuggestion) func(i, j int) bool {
		return func(i, j int) bool {
			return list[i].ATSScore.Improvement > list[j].ATSScore.Improvement
		}
	}
	sort.SliceStable(out.QuickWins, byImprovement(out.QuickWins))
	sort.SliceStable(out.PriorityRewrites, byImprovement(out.PriorityRewrites))
	return out
}

// sectionRelevance scores a section's token overlap with the job vocabulary
func sectionRelevance(text string, jobTokens map[string]bool) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0
	}
	overlap := 0
	for t := range tokens {
		if jobTokens[t] {
			overlap++
		}
	}
	// Ten overlapping terms saturate a section
	return clampScore(float64(overlap) / 10.0 * 100)
}

func missingRoleTerms(roleText string, job *models.ParsedJobData, limit int) []string {
	roleTokens := Tokenize(roleText)
	roleLower := strings.ToLower(roleText)
	var missing []string
	for _, s := range job.Skills {
		if !s.Required {
			continue
		}
		if _, _, ok := TermMatch(s.Name, roleTokens, roleLower); !ok {
			missing = append(missing, s.Name)
		}
		if len(missing) == limit {
			break
		}
	}
	return missing
}

func buildSummaryText(resume *models.ParsedResumeData, job *models.ParsedJobData, keywords []string) string {
	role := job.Title
	if role == "" {
		role = "the role"
	}
	name := "Candidate"
	if resume.PersonalInfo.Name != "" {
		name = resume.PersonalInfo.Name
	}
	lead := fmt.Sprintf("%s: %s with hands-on experience", name, role)
	if len(keywords) > 0 {
		return fmt.Sprintf("%s in %s, focused on shipping measurable results.", lead, strings.Join(keywords, ", "))
	}
	return lead + ", focused on shipping measurable results."
}

func newKeywords(suggested, original string) []string {
	origTokens := Tokenize(original)
	var added []string
	for t := range Tokenize(suggested) {
		if !origTokens[t] {
			added = append(added, t)
		}
	}
	sort.Strings(added)
	if len(added) > 6 {
		added = added[:6]
	}
	return added
}

func roleLabel(role models.WorkExperience) string {
	switch {
	case role.Title != "" && role.Company != "":
		return role.Title + " @ " + role.Company
	case role.Title != "":
		return role.Title
	case role.Company != "":
		return role.Company
	default:
		return "untitled role"
	}
}

func delta(before, after float64) models.ScoreDelta {
	return models.ScoreDelta{Before: before, After: after, Improvement: after - before}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
