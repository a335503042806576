package scoring

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
)

const (
	// maxInputChars bounds each input sent to the model. Longer inputs are
	// truncated to a prefix, so accuracy degrades gracefully rather than the
	// request cost growing without bound.
	maxInputChars = 4000
	// aiScoreAttempts is the total number of tries, not extra retries.
	aiScoreAttempts = 2
	retryBackoff    = 1 * time.Second
)

// AIResult carries the outcome of an AI-assisted scoring call.
// Available is false when both attempts failed; callers must treat that as
// "AI scoring unavailable", never as a zero-percent match.
type AIResult struct {
	Score     float64  `json:"score"`
	Missing   []string `json:"missing"`
	Available bool     `json:"available"`
}

// AIScorer delegates match judgement to a language model. It never returns
// an error: failures are retried once and then collapse to the unavailable
// result.
type AIScorer struct {
	client llm.Client
	sleep  func(time.Duration)
}

// NewAIScorer creates an AI scorer backed by the given client.
func NewAIScorer(client llm.Client) *AIScorer {
	return &AIScorer{client: client, sleep: time.Sleep}
}

// Score asks the model to judge the resume/job match. Inputs are truncated
// to maxInputChars each before transmission.
func (s *AIScorer) Score(ctx context.Context, resumeText, jobText string) AIResult {
	prompt := prompts.Format(prompts.MustGet("scoring.json", "ai_score"), map[string]string{
		"Job":    truncate(jobText, maxInputChars),
		"Resume": truncate(resumeText, maxInputChars),
	})

	for attempt := 0; attempt < aiScoreAttempts; attempt++ {
		if attempt > 0 {
			s.sleep(retryBackoff)
		}

		raw, err := s.client.GenerateJSON(ctx, prompt)
		if err != nil {
			log.Printf("AI scoring attempt %d failed: %v", attempt+1, err)
			continue
		}

		var parsed struct {
			Score   float64  `json:"score"`
			Missing []string `json:"missing"`
		}
		if err := json.Unmarshal([]byte(llm.ExtractJSONObject(raw)), &parsed); err != nil {
			log.Printf("AI scoring attempt %d returned unparseable JSON: %v", attempt+1, err)
			continue
		}

		missing := parsed.Missing
		if missing == nil {
			missing = []string{}
		}
		return AIResult{Score: parsed.Score, Missing: missing, Available: true}
	}

	return AIResult{Score: 0, Missing: []string{}, Available: false}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
