// Package chat implements the career-coach assistant that answers follow-up
// questions using the resume and job-description context of the current run.
package chat

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
)

// Message is a single turn in the conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Transcript is an ordered chat history. It lives only for the current
// session; nothing is persisted.
type Transcript struct {
	Messages []Message `json:"messages"`
}

// Add appends a message to the transcript.
func (t *Transcript) Add(role, content string) {
	t.Messages = append(t.Messages, Message{Role: role, Content: content})
}

// Coach wraps the model client with the recruiter persona prompt.
type Coach struct {
	client llm.Client
}

// NewCoach creates a Coach backed by the given client.
func NewCoach(client llm.Client) *Coach {
	return &Coach{client: client}
}

// Respond answers a user query grounded in the resume text and job
// description of the current session.
func (c *Coach) Respond(ctx context.Context, query, resumeText, jobDescription string) (string, error) {
	prompt := prompts.Format(prompts.MustGet("chat.json", "coach"), map[string]string{
		"Resume": resumeText,
		"Job":    jobDescription,
		"Query":  query,
	})

	reply, err := c.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("coach response failed: %w", err)
	}
	return reply, nil
}
