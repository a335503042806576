// Package scoring implements the ATS keyword-match scoring engine:
// a deterministic set-based scorer, an AI-assisted scorer, and the
// before/after reconciliation bookkeeping.
package scoring

import (
	"math"

	"github.com/jonathan/resume-optimizer/internal/keywords"
)

// Result is a single scoring outcome. A fresh Result is computed on every
// call; "before" and "after" results for a session are independent values.
type Result struct {
	// Percentage is the keyword match score in [0,100], two decimal places.
	Percentage float64 `json:"score"`
	// Missing holds job-description keywords absent from the resume.
	Missing []string `json:"missing_keywords"`
}

// Score compares resume text against a job description and returns the
// percentage of job keywords covered plus the uncovered ones.
//
// A job description whose keyword set is empty (empty input, or nothing but
// stopwords) has no extractable signal; the result is defined as zero with no
// missing keywords so callers can detect unusable input without an error.
//
// The denominator is always the job-description keyword count, so
// Score(a, b) and Score(b, a) generally differ.
func Score(resumeText, jobText string) Result {
	resumeSet := keywords.Set(resumeText)
	jobKeywords := keywords.Extract(jobText)

	if len(jobKeywords) == 0 {
		return Result{Percentage: 0, Missing: []string{}}
	}

	matches := 0
	missing := make([]string, 0)
	for _, keyword := range jobKeywords {
		if _, ok := resumeSet[keyword]; ok {
			matches++
		} else {
			missing = append(missing, keyword)
		}
	}

	percentage := float64(matches) / float64(len(jobKeywords)) * 100
	return Result{Percentage: round2(percentage), Missing: missing}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
