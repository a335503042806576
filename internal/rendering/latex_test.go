package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func testRecord() *types.EnhancedResume {
	return &types.EnhancedResume{
		Name:    "Jane & Doe",
		Email:   "jane@example.com",
		Phone:   "+1 555 0100",
		Summary: "Engineer with 100% commitment.",
		Experience: []types.ExperienceEntry{
			{
				Title:   "Senior Engineer",
				Company: "Acme Corp",
				Dates:   "2020 - Present",
				Bullets: []string{"Cut costs by 30%", "Owned the #1 service"},
			},
		},
		Education: []types.EducationEntry{
			{School: "State University", Degree: "B.S. Computer Science", Year: "2016", GPA: "3.8"},
		},
		Skills: []types.SkillGroup{
			{Category: "Languages", Items: "Go, Python"},
		},
		Projects: []types.ProjectEntry{
			{Name: "cache_kit", Link: "https://github.com/jane/cache_kit", Description: "Sharded cache"},
		},
	}
}

func TestRenderLaTeX(t *testing.T) {
	tex, err := RenderLaTeX(testRecord())
	require.NoError(t, err)

	assert.Contains(t, tex, `\documentclass`)
	assert.Contains(t, tex, `Jane \& Doe`)
	assert.Contains(t, tex, "jane@example.com")
	assert.Contains(t, tex, `100\% commitment`)
	assert.Contains(t, tex, "Senior Engineer")
	assert.Contains(t, tex, `Cut costs by 30\%`)
	assert.Contains(t, tex, `Owned the \#1 service`)
	assert.Contains(t, tex, "State University")
	assert.Contains(t, tex, "GPA: 3.8")
	assert.Contains(t, tex, "Languages")
	assert.Contains(t, tex, `cache\_kit`)
	assert.Contains(t, tex, `\end{document}`)
}

func TestRenderLaTeX_MinimalRecordOmitsEmptySections(t *testing.T) {
	tex, err := RenderLaTeX(&types.EnhancedResume{Name: "Jane", Summary: "Engineer."})
	require.NoError(t, err)

	assert.Contains(t, tex, "Jane")
	assert.NotContains(t, tex, `\section*{Experience}`)
	assert.NotContains(t, tex, `\section*{Projects}`)
	assert.NotContains(t, tex, `\begin{itemize}`)
}
