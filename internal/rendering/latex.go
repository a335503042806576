// Package rendering turns an enhanced resume record into downloadable
// documents. Renderers consume the record only; score data never reaches
// this layer.
package rendering

import (
	"embed"
	"strings"
	"text/template"

	"github.com/jonathan/resume-optimizer/internal/types"
)

//go:embed templates/*.tex
var templateFiles embed.FS

// latexData is the view passed to the LaTeX template.
type latexData struct {
	Name        string
	ContactLine string
	Summary     string
	Experience  []types.ExperienceEntry
	Education   []types.EducationEntry
	Skills      []types.SkillGroup
	Projects    []types.ProjectEntry
}

// RenderLaTeX renders the embedded resume template with the given record.
func RenderLaTeX(record *types.EnhancedResume) (string, error) {
	tmpl, err := template.New("resume.tex").
		Funcs(template.FuncMap{"esc": EscapeLaTeX}).
		ParseFS(templateFiles, "templates/resume.tex")
	if err != nil {
		return "", &RenderError{Format: "latex", Message: "failed to parse template", Cause: err}
	}

	data := latexData{
		Name:        record.Name,
		ContactLine: contactLine(record),
		Summary:     record.Summary,
		Experience:  record.Experience,
		Education:   record.Education,
		Skills:      record.Skills,
		Projects:    record.Projects,
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", &RenderError{Format: "latex", Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

// contactLine joins the non-empty contact fields, pre-escaped, so the
// template can interpolate it without escaping the separator markup.
func contactLine(record *types.EnhancedResume) string {
	parts := make([]string, 0, 5)
	for _, part := range []string{record.Email, record.Phone, record.LinkedIn, record.GitHub, record.Website} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, EscapeLaTeX(part))
		}
	}
	return strings.Join(parts, ` $\cdot$ `)
}
