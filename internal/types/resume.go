// Package types provides type definitions for structured data shared across
// the resume-optimizer system.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ExperienceEntry is a single position on the resume.
type ExperienceEntry struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets"`
}

// EducationEntry is a single education record.
type EducationEntry struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
	GPA    string `json:"gpa,omitempty"`
}

// SkillGroup is a named category of skills, items comma-joined.
type SkillGroup struct {
	Category string `json:"category"`
	Items    string `json:"items"`
}

// ProjectEntry is a single project record.
type ProjectEntry struct {
	Name        string `json:"name"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description"`
}

// SkippedKeyword pairs a keyword the model declined to inject with its reason.
type SkippedKeyword struct {
	Keyword string `json:"keyword"`
	Reason  string `json:"reason"`
}

// EnhancedResume is the structured record returned by the AI enhancement
// boundary. It is validated once at that boundary; downstream consumers may
// rely on all slices being non-nil after ApplyDefaults.
type EnhancedResume struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary" validate:"required"`

	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     []SkillGroup      `json:"skills"`
	Projects   []ProjectEntry    `json:"projects"`

	KeywordsAdded   []string         `json:"keywords_added"`
	KeywordsSkipped []SkippedKeyword `json:"keywords_skipped"`
}

// ApplyDefaults replaces nil slices with empty ones so consumers never have
// to nil-check optional fields the model omitted.
func (r *EnhancedResume) ApplyDefaults() {
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Skills == nil {
		r.Skills = []SkillGroup{}
	}
	if r.Projects == nil {
		r.Projects = []ProjectEntry{}
	}
	if r.KeywordsAdded == nil {
		r.KeywordsAdded = []string{}
	}
	if r.KeywordsSkipped == nil {
		r.KeywordsSkipped = []SkippedKeyword{}
	}
}

// Validate validates the record using the validator.
func (r *EnhancedResume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Flatten reduces the structured record to plain text so the enhanced resume
// can be re-scored with the same normalizer as the original text.
func (r *EnhancedResume) Flatten() string {
	var sb strings.Builder

	writeLine := func(s string) {
		if strings.TrimSpace(s) != "" {
			sb.WriteString(s)
			sb.WriteString("\n")
		}
	}

	writeLine(r.Name)
	contact := joinNonEmpty(" | ", r.Email, r.Phone, r.LinkedIn, r.GitHub, r.Website)
	writeLine(contact)
	writeLine(r.Summary)

	for _, exp := range r.Experience {
		writeLine(joinNonEmpty(" - ", exp.Title, exp.Company, exp.Dates))
		for _, bullet := range exp.Bullets {
			writeLine(bullet)
		}
	}

	for _, edu := range r.Education {
		writeLine(joinNonEmpty(" - ", edu.School, edu.Degree, edu.Year, edu.GPA))
	}

	for _, group := range r.Skills {
		writeLine(joinNonEmpty(": ", group.Category, group.Items))
	}

	for _, project := range r.Projects {
		writeLine(joinNonEmpty(" - ", project.Name, project.Description, project.Link))
	}

	return strings.TrimRight(sb.String(), "\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
