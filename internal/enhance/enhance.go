// Package enhance drives the AI resume-enhancement boundary: it builds the
// rewrite prompt, calls the model, and validates the structured record that
// comes back.
package enhance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// maxKeywordHints caps how many missing keywords are passed to the model.
	maxKeywordHints = 15
	// minHintLength filters out tokens too short to be meaningful skill terms.
	minHintLength = 3
)

// Error is a labeled enhancement failure. The external message is carried
// verbatim so the caller can tell a transient service issue from a malformed
// request; a failed enhancement halts the pipeline, it is never defaulted.
type Error struct {
	Stage   string // "generate", "validate" or "parse"
	Message string
	Raw     string // raw model output, when available
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("enhancement failed (%s): %s", e.Stage, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Enhancer sends resume content to the model for keyword-aware rewriting.
type Enhancer struct {
	client llm.Client
}

// New creates an Enhancer backed by the given client.
func New(client llm.Client) *Enhancer {
	return &Enhancer{client: client}
}

// Enhance rewrites the resume targeting the job description, naturally
// injecting the missing keywords where truthful. The returned record has
// passed schema and struct validation and has all optional fields defaulted.
func (e *Enhancer) Enhance(ctx context.Context, originalText, jobDescription string, missingKeywords []string) (*types.EnhancedResume, error) {
	prompt := BuildPrompt(originalText, jobDescription, missingKeywords)

	raw, err := e.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &Error{Stage: "generate", Message: err.Error(), Cause: err}
	}

	cleaned := llm.ExtractJSONObject(raw)

	if err := schemas.ValidateEnhancedResume([]byte(cleaned)); err != nil {
		return nil, &Error{Stage: "validate", Message: err.Error(), Raw: raw, Cause: err}
	}

	var record types.EnhancedResume
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		return nil, &Error{Stage: "parse", Message: err.Error(), Raw: raw, Cause: err}
	}

	record.ApplyDefaults()

	if err := record.Validate(); err != nil {
		return nil, &Error{Stage: "validate", Message: err.Error(), Raw: raw, Cause: err}
	}

	return &record, nil
}

// BuildPrompt assembles the enhancement prompt. The keyword instruction block
// is omitted entirely when no usable hints remain after filtering.
func BuildPrompt(originalText, jobDescription string, missingKeywords []string) string {
	instruction := ""
	if hints := FilterKeywordHints(missingKeywords); len(hints) > 0 {
		instruction = prompts.Format(prompts.MustGet("enhance.json", "keyword_instruction"), map[string]string{
			"Keywords": strings.Join(hints, ", "),
		})
	}

	return prompts.Format(prompts.MustGet("enhance.json", "enhance"), map[string]string{
		"KeywordInstruction": instruction,
		"Resume":             originalText,
		"Job":                jobDescription,
	})
}

// FilterKeywordHints keeps keywords long enough to be meaningful and caps
// the list at maxKeywordHints.
func FilterKeywordHints(missingKeywords []string) []string {
	hints := make([]string, 0, len(missingKeywords))
	for _, keyword := range missingKeywords {
		if len(keyword) >= minHintLength {
			hints = append(hints, keyword)
		}
		if len(hints) == maxKeywordHints {
			break
		}
	}
	return hints
}
