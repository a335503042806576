package rendering

import (
	"path/filepath"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// docxPlaceholders lists the substitution points expected in a DOCX template.
const (
	placeholderName      = "{{NAME}}"
	placeholderContact   = "{{CONTACT}}"
	placeholderSummary   = "{{SUMMARY}}"
	placeholderSkills    = "{{SKILLS}}"
	placeholderEducation = "{{EDUCATION}}"
)

// RenderDOCX fills a template .docx with the record's fields and writes the
// result to outputDir. The template carries the visual styling; this layer
// only substitutes content.
func RenderDOCX(record *types.EnhancedResume, templatePath, outputDir string) (string, error) {
	doc, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return "", &RenderError{Format: "docx", Message: "failed to open template", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	editable := doc.Editable()
	replacements := map[string]string{
		placeholderName:      record.Name,
		placeholderContact:   docxContactLine(record),
		placeholderSummary:   record.Summary,
		placeholderSkills:    docxSkillsLine(record),
		placeholderEducation: docxEducationLine(record),
	}
	for placeholder, value := range replacements {
		if err := editable.Replace(placeholder, value, -1); err != nil {
			return "", &RenderError{Format: "docx", Message: "failed to substitute " + placeholder, Cause: err}
		}
	}

	outPath := filepath.Join(outputDir, "resume.docx")
	if err := editable.WriteToFile(outPath); err != nil {
		return "", &RenderError{Format: "docx", Message: "failed to write output", Cause: err}
	}
	return outPath, nil
}

func docxContactLine(record *types.EnhancedResume) string {
	parts := make([]string, 0, 5)
	for _, part := range []string{record.Email, record.Phone, record.LinkedIn, record.GitHub, record.Website} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " | ")
}

func docxSkillsLine(record *types.EnhancedResume) string {
	parts := make([]string, 0, len(record.Skills))
	for _, group := range record.Skills {
		parts = append(parts, group.Category+": "+group.Items)
	}
	return strings.Join(parts, "; ")
}

func docxEducationLine(record *types.EnhancedResume) string {
	parts := make([]string, 0, len(record.Education))
	for _, edu := range record.Education {
		entry := edu.School + ", " + edu.Degree
		if edu.Year != "" {
			entry += " (" + edu.Year + ")"
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "; ")
}
