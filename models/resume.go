package models

// ParsedResumeData is the structured form of a resume produced by the parser
// stage. It is immutable once produced and owned by the scan that created it.
// @Description Structured resume extracted from raw text
type ParsedResumeData struct {
	// Personal Information
	PersonalInfo PersonalInfo `json:"personalInfo"`

	// Professional Summary
	Summary string `json:"summary,omitempty"`

	// Ordered sections (most recent first for experience)
	Experience []WorkExperience `json:"experience,omitempty"`
	Education  []Education      `json:"education,omitempty"`
	Skills     []Skill          `json:"skills,omitempty"`

	// Optional sections
	Certifications []string  `json:"certifications,omitempty"`
	Languages      []string  `json:"languages,omitempty"`
	Projects       []Project `json:"projects,omitempty"`
}

// PersonalInfo holds contact details extracted from the resume header
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// WorkExperience represents one role in the work history
type WorkExperience struct {
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Current     bool     `json:"current,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// Education represents one educational background entry
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// Project represents a personal or professional project
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Skill is a single resume skill with category and proficiency
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"` // technical, soft, language, tool
	Level    string `json:"level"`    // beginner, intermediate, advanced, expert
}

// Skill category constants
const (
	SkillCategoryTechnical = "technical"
	SkillCategorySoft      = "soft"
	SkillCategoryLanguage  = "language"
	SkillCategoryTool      = "tool"
)

// Skill level constants
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
	SkillLevelExpert       = "expert"
)

// NormalizeSkillCategory normalizes various category strings to standard values
func NormalizeSkillCategory(raw string) string {
	switch raw {
	case "technical", "Technical", "tech", "hard", "hard_skill":
		return SkillCategoryTechnical
	case "soft", "Soft", "soft_skill", "interpersonal":
		return SkillCategorySoft
	case "language", "Language", "spoken", "natural_language":
		return SkillCategoryLanguage
	case "tool", "Tool", "tooling", "software", "platform":
		return SkillCategoryTool
	default:
		return SkillCategoryTechnical
	}
}

// NormalizeSkillLevel normalizes various level strings to standard values
func NormalizeSkillLevel(raw string) string {
	switch raw {
	case "beginner", "Beginner", "basic", "novice":
		return SkillLevelBeginner
	case "intermediate", "Intermediate", "mid", "proficient":
		return SkillLevelIntermediate
	case "advanced", "Advanced", "strong":
		return SkillLevelAdvanced
	case "expert", "Expert", "master":
		return SkillLevelExpert
	default:
		return SkillLevelIntermediate
	}
}

// SkillNames returns the resume skill names in declaration order
func (r *ParsedResumeData) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}
