package scoring

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient implements llm.Client with scripted responses.
type fakeClient struct {
	responses []string
	errs      []error
	prompts   []string
	calls     int
}

func (f *fakeClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.GenerateJSON(ctx, prompt)
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

func (f *fakeClient) Close() error { return nil }

func newTestScorer(client *fakeClient) (*AIScorer, *[]time.Duration) {
	scorer := NewAIScorer(client)
	var slept []time.Duration
	scorer.sleep = func(d time.Duration) { slept = append(slept, d) }
	return scorer, &slept
}

func TestAIScorer_Success(t *testing.T) {
	client := &fakeClient{responses: []string{`{"score": 72.5, "missing": ["docker", "kubernetes"]}`}}
	scorer, slept := newTestScorer(client)

	result := scorer.Score(context.Background(), "resume text", "job text")

	assert.True(t, result.Available)
	assert.Equal(t, 72.5, result.Score)
	assert.Equal(t, []string{"docker", "kubernetes"}, result.Missing)
	assert.Empty(t, *slept)
	assert.Equal(t, 1, client.calls)
}

func TestAIScorer_RetriesOnceThenSucceeds(t *testing.T) {
	client := &fakeClient{
		errs:      []error{fmt.Errorf("transient transport error"), nil},
		responses: []string{"", `{"score": 50, "missing": []}`},
	}
	scorer, slept := newTestScorer(client)

	result := scorer.Score(context.Background(), "resume", "job")

	assert.True(t, result.Available)
	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, 2, client.calls)
	require.Len(t, *slept, 1)
	assert.Equal(t, retryBackoff, (*slept)[0])
}

func TestAIScorer_RetriesOnMalformedJSON(t *testing.T) {
	client := &fakeClient{responses: []string{"not json at all", `{"score": 10, "missing": ["go"]}`}}
	scorer, _ := newTestScorer(client)

	result := scorer.Score(context.Background(), "resume", "job")

	assert.True(t, result.Available)
	assert.Equal(t, 10.0, result.Score)
}

func TestAIScorer_BothAttemptsFailReturnsUnavailable(t *testing.T) {
	client := &fakeClient{errs: []error{fmt.Errorf("boom"), fmt.Errorf("boom again")}}
	scorer, slept := newTestScorer(client)

	result := scorer.Score(context.Background(), "resume", "job")

	assert.False(t, result.Available)
	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.Missing)
	assert.NotNil(t, result.Missing)
	assert.Equal(t, 2, client.calls)
	assert.Len(t, *slept, 1)
}

func TestAIScorer_TruncatesLongInputs(t *testing.T) {
	client := &fakeClient{responses: []string{`{"score": 1, "missing": []}`}}
	scorer, _ := newTestScorer(client)

	longResume := strings.Repeat("r", 3*maxInputChars)
	longJob := strings.Repeat("j", 3*maxInputChars)
	scorer.Score(context.Background(), longResume, longJob)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, strings.Repeat("r", maxInputChars))
	assert.NotContains(t, prompt, strings.Repeat("r", maxInputChars+1))
	assert.Contains(t, prompt, strings.Repeat("j", maxInputChars))
	assert.NotContains(t, prompt, strings.Repeat("j", maxInputChars+1))
}

func TestAIScorer_AcceptsFencedJSON(t *testing.T) {
	client := &fakeClient{responses: []string{"```json\n{\"score\": 33, \"missing\": [\"aws\"]}\n```"}}
	scorer, _ := newTestScorer(client)

	result := scorer.Score(context.Background(), "resume", "job")

	assert.True(t, result.Available)
	assert.Equal(t, 33.0, result.Score)
	assert.Equal(t, []string{"aws"}, result.Missing)
}
