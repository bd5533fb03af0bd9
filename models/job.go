package models

import "encoding/json"

// FlexibleStringSlice can unmarshal from either a string or []string
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// If both fail, return empty slice
	*f = []string{}
	return nil
}

// ParsedJobData is the structured form of a job description produced by the
// parser stage. Same lifecycle as ParsedResumeData.
// @Description Structured job description extracted from raw text
type ParsedJobData struct {
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`

	// Optional metadata
	Location        string `json:"location,omitempty"`
	EmploymentType  string `json:"employmentType,omitempty"`  // full_time, part_time, contract, internship
	ExperienceLevel string `json:"experienceLevel,omitempty"` // entry, mid, senior, lead
	SalaryRange     string `json:"salaryRange,omitempty"`

	Description      string              `json:"description,omitempty"`
	Requirements     []string            `json:"requirements,omitempty"`
	Responsibilities []string            `json:"responsibilities,omitempty"`
	EducationReqs    []string            `json:"educationRequirements,omitempty"`
	Benefits         FlexibleStringSlice `json:"benefits,omitempty"`

	Skills   []JobSkill `json:"skills,omitempty"`
	Keywords []string   `json:"keywords,omitempty"`
}

// JobSkill is a skill mentioned by the job posting, tagged required or optional
type JobSkill struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// EmploymentType constants
const (
	EmploymentTypeFullTime   = "full_time"
	EmploymentTypePartTime   = "part_time"
	EmploymentTypeContract   = "contract"
	EmploymentTypeInternship = "internship"
	EmploymentTypeFreelance  = "freelance"
)

// ExperienceLevel constants
const (
	ExperienceLevelEntry  = "entry"
	ExperienceLevelMid    = "mid"
	ExperienceLevelSenior = "senior"
	ExperienceLevelLead   = "lead"
)

// NormalizeEmploymentType normalizes various employment type strings to standard values
func NormalizeEmploymentType(raw string) string {
	switch raw {
	case "full-time", "Full-Time", "Full Time", "fulltime", "FULL_TIME":
		return EmploymentTypeFullTime
	case "part-time", "Part-Time", "Part Time", "parttime", "PART_TIME":
		return EmploymentTypePartTime
	case "contract", "Contract", "CONTRACT", "contractor":
		return EmploymentTypeContract
	case "internship", "Internship", "INTERNSHIP", "intern":
		return EmploymentTypeInternship
	case "freelance", "Freelance", "FREELANCE":
		return EmploymentTypeFreelance
	default:
		return raw
	}
}

// RequiredSkills returns only the skills tagged required
func (j *ParsedJobData) RequiredSkills() []JobSkill {
	required := make([]JobSkill, 0, len(j.Skills))
	for _, s := range j.Skills {
		if s.Required {
			required = append(required, s)
		}
	}
	return required
}
