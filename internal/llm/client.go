// Package llm provides the Gemini client abstraction used by the scorer,
// enhancer and career-coach components.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is the narrow contract the rest of the system depends on.
type Client interface {
	// GenerateText generates free-form text for the given prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON generates content with a JSON response MIME type and
	// strips any markdown fences the model wraps around it.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// Close releases resources held by the client.
	Close() error
}

// Config holds model selection for the Gemini client.
type Config struct {
	Model         string  // primary model
	FallbackModel string  // used when the primary model fails
	Temperature   float32 // low temperature keeps scoring output stable
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:         "gemini-flash-latest",
		FallbackModel: "gemini-pro",
		Temperature:   0.1,
	}
}

// GeminiClient implements Client on top of the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewClient creates a Gemini-backed client.
func NewClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config}, nil
}

// GenerateText generates free-form text, falling back to the secondary model
// when the primary one fails.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, "")
}

// GenerateJSON generates content with a JSON response MIME type.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	text, err := c.generate(ctx, prompt, "application/json")
	if err != nil {
		return "", err
	}
	// Models sometimes wrap JSON in code fences despite the MIME type.
	return StripJSONFences(text), nil
}

// Close releases resources held by the underlying client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt, mimeType string) (string, error) {
	text, err := c.generateWithModel(ctx, c.config.Model, prompt, mimeType)
	if err == nil {
		return text, nil
	}
	if c.config.FallbackModel == "" || c.config.FallbackModel == c.config.Model {
		return "", err
	}

	text, fallbackErr := c.generateWithModel(ctx, c.config.FallbackModel, prompt, mimeType)
	if fallbackErr != nil {
		return "", fmt.Errorf("primary model failed (%v); fallback failed: %w", err, fallbackErr)
	}
	return text, nil
}

func (c *GeminiClient) generateWithModel(ctx context.Context, modelName, prompt, mimeType string) (string, error) {
	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(c.config.Temperature)
	if mimeType != "" {
		model.ResponseMIMEType = mimeType
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("model %s: %w", modelName, err)
	}

	return responseText(resp)
}

// responseText flattens the first candidate of a Gemini response into a string.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return sb.String(), nil
}
