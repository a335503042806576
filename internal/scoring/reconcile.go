package scoring

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Summary is the derived before/after view of one optimization run.
// It is recomputed whenever needed and never mutated in place.
type Summary struct {
	ScoreBefore float64 `json:"score_before"`
	ScoreAfter  float64 `json:"score_after"`
	// Delta may be negative when enhancement removed matching terms;
	// it is surfaced as-is, never clamped.
	Delta float64 `json:"delta"`

	KeywordsAdded        []string               `json:"keywords_added"`
	KeywordsSkipped      []types.SkippedKeyword `json:"keywords_skipped"`
	KeywordsStillMissing []string               `json:"keywords_still_missing"`
}

// Reconcile combines the before/after scores with the enhancement record's
// keyword bookkeeping.
//
// Missing keywords come from the normalizer in lowercase while the model
// reports added keywords in arbitrary case, so the still-missing set
// difference is computed case-folded. The added/skipped lists themselves are
// passed through verbatim.
func Reconcile(before, after Result, added []string, skipped []types.SkippedKeyword) Summary {
	addedSet := make(map[string]struct{}, len(added))
	for _, keyword := range added {
		addedSet[strings.ToLower(keyword)] = struct{}{}
	}

	stillMissing := make([]string, 0, len(before.Missing))
	for _, keyword := range before.Missing {
		if _, ok := addedSet[strings.ToLower(keyword)]; !ok {
			stillMissing = append(stillMissing, keyword)
		}
	}

	if added == nil {
		added = []string{}
	}
	if skipped == nil {
		skipped = []types.SkippedKeyword{}
	}

	return Summary{
		ScoreBefore:          before.Percentage,
		ScoreAfter:           after.Percentage,
		Delta:                round2(after.Percentage - before.Percentage),
		KeywordsAdded:        added,
		KeywordsSkipped:      skipped,
		KeywordsStillMissing: stillMissing,
	}
}
