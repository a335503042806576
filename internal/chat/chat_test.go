package chat

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return f.GenerateText(ctx, prompt)
}

func (f *fakeClient) Close() error { return nil }

func TestCoach_Respond(t *testing.T) {
	client := &fakeClient{response: "Lead with your Kubernetes work."}
	coach := NewCoach(client)

	reply, err := coach.Respond(context.Background(), "How do I improve my summary?", "RESUME BODY", "JOB BODY")
	require.NoError(t, err)

	assert.Equal(t, "Lead with your Kubernetes work.", reply)
	assert.Contains(t, client.prompt, "RESUME BODY")
	assert.Contains(t, client.prompt, "JOB BODY")
	assert.Contains(t, client.prompt, "How do I improve my summary?")
}

func TestCoach_RespondError(t *testing.T) {
	coach := NewCoach(&fakeClient{err: fmt.Errorf("model offline")})

	_, err := coach.Respond(context.Background(), "q", "r", "j")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model offline")
}

func TestTranscript_Add(t *testing.T) {
	var transcript Transcript
	transcript.Add("user", "hello")
	transcript.Add("assistant", "hi")

	require.Len(t, transcript.Messages, 2)
	assert.Equal(t, "user", transcript.Messages[0].Role)
	assert.Equal(t, "hi", transcript.Messages[1].Content)
}
