package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrMissingAPIKey is returned when no Gemini API key is configured.
var ErrMissingAPIKey = errors.New("gemini API key is required")

// Client produces JSON for a structured request.
type Client interface {
	GenerateJSON(ctx context.Context, req Request) (string, error)
	Close() error
}

// GeminiClient implements Client with the Gemini API.
type GeminiClient struct {
	client *genai.Client
	config Config
}

var _ Client = (*GeminiClient)(nil)

// NewClient connects to Gemini with apiKey.
func NewClient(ctx context.Context, cfg Config, apiKey string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: cfg.withDefaults()}, nil
}

// Model returns the model requests are sent to.
func (c *GeminiClient) Model() string {
	return c.config.Model
}

// GenerateJSON sends the request with a JSON response schema and returns the cleaned
// JSON text.
func (c *GeminiClient) GenerateJSON(ctx context.Context, req Request) (string, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)
	model.SetMaxOutputTokens(c.config.MaxOutputTokens)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = req.responseSchema()

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt()))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Close releases the underlying connection.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// responseText joins the text parts of the first candidate. Blocked prompts and
// candidates stopped by the safety filter are errors.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", errors.New("empty response")
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("prompt blocked: %s", fb.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("response has no candidates")
	}

	cand := resp.Candidates[0]
	if cand.FinishReason == genai.FinishReasonSafety {
		return "", errors.New("response stopped by safety filter")
	}
	if cand.Content == nil {
		return "", errors.New("response has no content")
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("response has no text")
	}
	return sb.String(), nil
}
