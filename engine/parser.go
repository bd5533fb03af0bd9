package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/neujobscan/backend/models"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	linkedinRe = regexp.MustCompile(`(?:www\.)?linkedin\.com/[^\s,;]+`)
	urlRe      = regexp.MustCompile(`https?://[^\s,;]+`)
	yearRe     = regexp.MustCompile(`(19|20)\d{2}`)
	dateSpanRe = regexp.MustCompile(`((19|20)\d{2})\s*[-–—to]+\s*((19|20)\d{2}|[Pp]resent|[Cc]urrent|[Nn]ow)`)
	salaryRe   = regexp.MustCompile(`[$€£]\s?\d[\d,.]*\s?[kK]?(\s*[-–]\s*[$€£]?\s?\d[\d,.]*\s?[kK]?)?`)
	bulletRe   = regexp.MustCompile(`^[\s]*[-•*▪◦·]\s*`)
)

// resumeSectionHeaders maps normalized header text to a section key
var resumeSectionHeaders = map[string]string{
	"summary": "summary", "professional summary": "summary", "objective": "summary",
	"profile": "summary", "about": "summary", "about me": "summary",
	"experience": "experience", "work experience": "experience",
	"work history": "experience", "employment": "experience",
	"employment history": "experience", "professional experience": "experience",
	"education": "education", "academic background": "education",
	"skills": "skills", "technical skills": "skills", "core skills": "skills",
	"core competencies": "skills", "technologies": "skills",
	"certifications": "certifications", "certificates": "certifications",
	"licenses": "certifications",
	"languages": "languages",
	"projects": "projects", "personal projects": "projects",
	"portfolio": "projects",
}

// softSkillTerms classify skills that are interpersonal rather than technical
var softSkillTerms = map[string]bool{
	"communication": true, "leadership": true, "teamwork": true,
	"collaboration": true, "problem solving": true, "problem-solving": true,
	"mentoring": true, "time management": true, "adaptability": true,
	"critical thinking": true, "negotiation": true, "presentation": true,
	"stakeholder management": true, "public speaking": true,
}

// toolTerms classify skills that are tools/platforms rather than languages
var toolTerms = map[string]bool{
	"docker": true, "kubernetes": true, "git": true, "jira": true,
	"jenkins": true, "terraform": true, "ansible": true, "grafana": true,
	"prometheus": true, "figma": true, "excel": true, "tableau": true,
	"aws": true, "gcp": true, "azure": true, "linux": true,
	"github": true, "gitlab": true, "confluence": true, "postman": true,
}

// spokenLanguages classify natural-language skills
var spokenLanguages = map[string]bool{
	"english": true, "spanish": true, "french": true, "german": true,
	"mandarin": true, "chinese": true, "japanese": true, "korean": true,
	"portuguese": true, "italian": true, "russian": true, "arabic": true,
	"hindi": true, "indonesian": true, "dutch": true,
}

// ParseResume converts free-form resume text into a structured record.
// Missing sections are omitted rather than treated as failures; only empty or
// unrecognizable input produces a ParsingError.
func ParseResume(rawText string) (*models.ParsedResumeData, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return nil, &ParsingError{DocType: "resume", Message: "input is empty", RawText: rawText}
	}
	if len(strings.Fields(text)) < 3 {
		return nil, &ParsingError{DocType: "resume", Message: "input too short to be a resume", RawText: rawText}
	}

	parsed := &models.ParsedResumeData{}
	sections := splitSections(text, resumeSectionHeaders)

	parsed.PersonalInfo = extractPersonalInfo(text, sections["_preamble"])
	parsed.Summary = strings.TrimSpace(sections["summary"])

	if exp := sections["experience"]; exp != "" {
		parsed.Experience = parseExperience(exp)
	}
	if edu := sections["education"]; edu != "" {
		parsed.Education = parseEducation(edu)
	}
	if skills := sections["skills"]; skills != "" {
		parsed.Skills = parseSkills(skills)
	}
	if certs := sections["certifications"]; certs != "" {
		parsed.Certifications = splitList(certs)
	}
	if langs := sections["languages"]; langs != "" {
		parsed.Languages = splitList(langs)
	}
	if projects := sections["projects"]; projects != "" {
		parsed.Projects = parseProjects(projects)
	}

	return parsed, nil
}

// jobSectionHeaders maps normalized header text to a job section key
var jobSectionHeaders = map[string]string{
	"requirements": "requirements", "qualifications": "requirements",
	"required qualifications": "requirements", "what you need": "requirements",
	"what we're looking for": "requirements", "must have": "requirements",
	"responsibilities": "responsibilities", "what you'll do": "responsibilities",
	"what you will do": "responsibilities", "duties": "responsibilities",
	"your role": "responsibilities", "the role": "responsibilities",
	"benefits": "benefits", "what we offer": "benefits", "perks": "benefits",
	"about the role": "description", "description": "description",
	"about us": "description", "about the company": "description",
	"education": "education", "education requirements": "education",
	"nice to have": "nice_to_have", "preferred qualifications": "nice_to_have",
	"bonus points": "nice_to_have",
}

// ParseJob converts free-form job description text into a structured record
func ParseJob(rawText string) (*models.ParsedJobData, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return nil, &ParsingError{DocType: "job", Message: "input is empty", RawText: rawText}
	}
	if len(strings.Fields(text)) < 3 {
		return nil, &ParsingError{DocType: "job", Message: "input too short to be a job description", RawText: rawText}
	}

	parsed := &models.ParsedJobData{}
	sections := splitSections(text, jobSectionHeaders)

	parsed.Title, parsed.Company = extractTitleCompany(sections["_preamble"], text)
	parsed.Location = extractLabeled(text, "location")
	if et := extractLabeled(text, "employment type"); et != "" {
		parsed.EmploymentType = models.NormalizeEmploymentType(strings.ToLower(et))
	} else {
		parsed.EmploymentType = detectEmploymentType(text)
	}
	parsed.ExperienceLevel = detectExperienceLevel(text)
	if sal := salaryRe.FindString(text); sal != "" {
		parsed.SalaryRange = strings.TrimSpace(sal)
	}

	if desc := sections["description"]; desc != "" {
		parsed.Description = strings.TrimSpace(desc)
	} else {
		parsed.Description = strings.TrimSpace(sections["_preamble"])
	}
	parsed.Requirements = splitList(sections["requirements"])
	parsed.Responsibilities = splitList(sections["responsibilities"])
	parsed.Benefits = splitList(sections["benefits"])

	eduReqs := splitList(sections["education"])
	for _, req := range parsed.Requirements {
		if containsDegree(req) {
			eduReqs = append(eduReqs, req)
		}
	}
	parsed.EducationReqs = eduReqs

	parsed.Skills = extractJobSkills(text, sections)
	parsed.Keywords = TopKeywords(text, 20)

	return parsed, nil
}

// splitSections partitions text by recognized section headers. Text before
// the first header lands in "_preamble". Same-key sections are concatenated.
func splitSections(text string, headers map[string]string) map[string]string {
	sections := make(map[string]string)
	current := "_preamble"
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			sections[current] += buf.String()
			buf.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		normalized := strings.ToLower(strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line), ":")))
		if key, ok := headers[normalized]; ok {
			flush()
			current = key
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	flush()

	return sections
}

func extractPersonalInfo(fullText, preamble string) models.PersonalInfo {
	info := models.PersonalInfo{
		Email: emailRe.FindString(fullText),
	}
	if m := phoneRe.FindString(fullText); m != "" {
		info.Phone = strings.TrimSpace(m)
	}
	if m := linkedinRe.FindString(fullText); m != "" {
		info.LinkedIn = m
	}
	for _, u := range urlRe.FindAllString(fullText, 3) {
		if !strings.Contains(u, "linkedin.com") {
			info.Website = u
			break
		}
	}

	// Name is usually the first line without contact noise
	for _, line := range strings.Split(preamble, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") || strings.ContainsAny(line, "0123456789") {
			continue
		}
		if len(strings.Fields(line)) <= 5 {
			info.Name = line
			break
		}
	}

	return info
}

func parseExperience(section string) []models.WorkExperience {
	var entries []models.WorkExperience

	for _, block := range splitBlocks(section) {
		lines := strings.Split(block, "\n")
		entry := models.WorkExperience{}
		var desc []string

		titled := false
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			isTitle := !titled
			if isTitle {
				entry.Title, entry.Company = splitTitleCompany(line)
				titled = true
			}
			if span := dateSpanRe.FindStringSubmatch(line); span != nil && entry.StartDate == "" {
				entry.StartDate = span[1]
				end := strings.ToLower(span[3])
				if end == "present" || end == "current" || end == "now" {
					entry.Current = true
				} else {
					entry.EndDate = span[3]
				}
				continue
			}
			if isTitle {
				continue
			}
			if bulletRe.MatchString(line) {
				entry.Highlights = append(entry.Highlights, bulletRe.ReplaceAllString(line, ""))
			} else {
				desc = append(desc, line)
			}
		}

		entry.Description = strings.Join(desc, " ")
		if entry.Title != "" || entry.Description != "" || len(entry.Highlights) > 0 {
			entries = append(entries, entry)
		}
	}

	return entries
}

func splitTitleCompany(line string) (title, company string) {
	line = dateSpanRe.ReplaceAllString(line, "")
	line = strings.Trim(line, " ,|(-)")

	for _, sep := range []string{" at ", " @ ", " | ", " - ", ", "} {
		if idx := strings.Index(line, sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	return strings.TrimSpace(line), ""
}

var degreeKeywords = []string{
	"phd", "ph.d", "doctorate", "master", "m.s", "msc", "mba",
	"bachelor", "b.s", "bsc", "b.a", "undergraduate", "associate", "diploma",
}

func containsDegree(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func parseEducation(section string) []models.Education {
	var entries []models.Education

	for _, block := range splitBlocks(section) {
		entry := models.Education{}
		lower := strings.ToLower(block)

		for _, kw := range degreeKeywords {
			if strings.Contains(lower, kw) {
				entry.Degree = normalizeDegree(kw)
				break
			}
		}
		if idx := strings.Index(lower, " in "); idx >= 0 {
			rest := block[idx+4:]
			if end := strings.IndexAny(rest, ",\n("); end > 0 {
				rest = rest[:end]
			}
			entry.Field = strings.TrimSpace(rest)
		}
		if y := yearRe.FindString(block); y != "" {
			entry.Year, _ = strconv.Atoi(y)
		}

		// Institution: first line that is not the degree line
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || containsDegree(line) {
				continue
			}
			entry.Institution = yearRe.ReplaceAllString(line, "")
			entry.Institution = strings.Trim(entry.Institution, " ,-–")
			break
		}

		if entry.Degree != "" || entry.Institution != "" {
			entries = append(entries, entry)
		}
	}

	return entries
}

func normalizeDegree(kw string) string {
	switch kw {
	case "phd", "ph.d", "doctorate":
		return "PhD"
	case "master", "m.s", "msc", "mba":
		return "Master"
	case "bachelor", "b.s", "bsc", "b.a", "undergraduate":
		return "Bachelor"
	default:
		return "Associate"
	}
}

func parseSkills(section string) []models.Skill {
	var skills []models.Skill
	seen := make(map[string]bool)

	for _, name := range splitList(section) {
		// Skill lists sometimes carry a "Category: a, b, c" prefix
		if idx := strings.Index(name, ":"); idx > 0 && idx < 30 {
			name = name[idx+1:]
		}
		name = strings.TrimSpace(name)
		if name == "" || len(name) > 40 {
			continue
		}
		key := Canonicalize(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, models.Skill{
			Name:     name,
			Category: categorizeSkill(name),
			Level:    models.SkillLevelIntermediate,
		})
	}

	return skills
}

func categorizeSkill(name string) string {
	lower := strings.ToLower(name)
	switch {
	case spokenLanguages[lower]:
		return models.SkillCategoryLanguage
	case softSkillTerms[lower]:
		return models.SkillCategorySoft
	case toolTerms[Canonicalize(lower)]:
		return models.SkillCategoryTool
	default:
		return models.SkillCategoryTechnical
	}
}

func parseProjects(section string) []models.Project {
	var projects []models.Project
	for _, block := range splitBlocks(section) {
		lines := strings.SplitN(strings.TrimSpace(block), "\n", 2)
		if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
			continue
		}
		p := models.Project{Name: strings.TrimSpace(bulletRe.ReplaceAllString(lines[0], ""))}
		if len(lines) > 1 {
			p.Description = strings.TrimSpace(lines[1])
		}
		if u := urlRe.FindString(block); u != "" {
			p.URL = u
		}
		projects = append(projects, p)
	}
	return projects
}

// splitBlocks splits a section into blank-line-separated blocks
func splitBlocks(section string) []string {
	var blocks []string
	for _, block := range strings.Split(section, "\n\n") {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// splitList splits a section into entries by newlines, bullets, commas and
// semicolons, trimming bullet markers.
func splitList(section string) []string {
	if strings.TrimSpace(section) == "" {
		return nil
	}
	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = bulletRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Comma-separated lists on one line (common for skills)
		if strings.Count(line, ",") >= 2 || strings.Contains(line, ";") {
			for _, part := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ';' || r == '|' }) {
				if part = strings.TrimSpace(part); part != "" {
					items = append(items, part)
				}
			}
		} else {
			items = append(items, line)
		}
	}
	return items
}

func extractTitleCompany(preamble, fullText string) (title, company string) {
	if t := extractLabeled(fullText, "job title"); t != "" {
		title = t
	}
	if c := extractLabeled(fullText, "company"); c != "" {
		company = c
	}

	lines := strings.Split(preamble, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if title == "" {
			if idx := strings.Index(strings.ToLower(line), " at "); idx > 0 {
				title = strings.TrimSpace(line[:idx])
				if company == "" {
					company = strings.TrimSpace(line[idx+4:])
				}
			} else {
				title = line
			}
			continue
		}
		if company == "" && len(strings.Fields(line)) <= 6 && !strings.Contains(line, ":") {
			company = line
		}
		break
	}

	return title, company
}

// extractLabeled finds "Label: value" lines, case-insensitive
func extractLabeled(text, label string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, label+":") {
			return strings.TrimSpace(trimmed[len(label)+1:])
		}
	}
	return ""
}

func detectEmploymentType(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "full-time") || strings.Contains(lower, "full time"):
		return models.EmploymentTypeFullTime
	case strings.Contains(lower, "part-time") || strings.Contains(lower, "part time"):
		return models.EmploymentTypePartTime
	case strings.Contains(lower, "internship") || strings.Contains(lower, "intern "):
		return models.EmploymentTypeInternship
	case strings.Contains(lower, "contract"):
		return models.EmploymentTypeContract
	default:
		return ""
	}
}

func detectExperienceLevel(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "principal") || strings.Contains(lower, "staff ") || strings.Contains(lower, "lead "):
		return models.ExperienceLevelLead
	case strings.Contains(lower, "senior") || strings.Contains(lower, "sr."):
		return models.ExperienceLevelSenior
	case strings.Contains(lower, "junior") || strings.Contains(lower, "entry level") || strings.Contains(lower, "entry-level") || strings.Contains(lower, "graduate"):
		return models.ExperienceLevelEntry
	default:
		return models.ExperienceLevelMid
	}
}

// extractJobSkills scans the job text for known skill vocabulary. A skill is
// required when it appears in the requirements section or near required/must
// language, optional otherwise.
func extractJobSkills(fullText string, sections map[string]string) []models.JobSkill {
	fullTokens := Tokenize(fullText)
	reqTokens := Tokenize(sections["requirements"])
	niceTokens := Tokenize(sections["nice_to_have"])
	fullLower := strings.ToLower(fullText)
	reqLower := strings.ToLower(sections["requirements"])
	niceLower := strings.ToLower(sections["nice_to_have"])

	// Single-word terms match on token boundaries so "go" never matches "good"
	present := func(term string, tokens map[string]bool, lower string) bool {
		if strings.ContainsAny(term, " /") {
			return strings.Contains(lower, term)
		}
		return tokens[term]
	}

	var skills []models.JobSkill
	seen := make(map[string]bool)

	for _, term := range skillVocabulary {
		if !present(term, fullTokens, fullLower) {
			continue
		}
		key := Canonicalize(term)
		if seen[key] {
			continue
		}
		seen[key] = true
		required := present(term, reqTokens, reqLower) && !present(term, niceTokens, niceLower)
		skills = append(skills, models.JobSkill{Name: term, Required: required})
	}

	return skills
}

// skillVocabulary is the fixed set of skill terms recognized in job postings.
// Lowercase; synonym variants collapse via Canonicalize.
var skillVocabulary = []string{
	"go", "golang", "python", "java", "javascript", "typescript", "c#", "c++",
	"ruby", "php", "rust", "kotlin", "swift", "scala", "sql", "html", "css",
	"react", "angular", "vue", "node.js", "django", "flask", "spring",
	"rails", ".net", "graphql", "rest",
	"aws", "gcp", "azure", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "git", "linux", "ci/cd",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "kafka",
	"machine learning", "data analysis", "tensorflow", "pytorch",
	"agile", "scrum", "microservices", "grpc",
	"communication", "leadership", "teamwork", "problem solving",
	"project management", "mentoring",
}
