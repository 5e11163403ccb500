package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

const (
	defaultGeminiModel     = "gemini-1.5-flash"
	defaultGeminiMaxTokens = 8192
)

// GeminiConfig configures the Gemini adapter.
type GeminiConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string // override for testing; defaults to the Gemini API
}

// GeminiClient calls the Gemini generateContent endpoint through the genai SDK.
// The underlying client is created on first use so that a missing API key is a
// call-time error, not a startup failure.
type GeminiClient struct {
	apiKey    string
	model     string
	maxTokens int
	baseURL   string

	initOnce sync.Once
	gClient  *genai.Client
	initErr  error
}

// NewGeminiClient creates a Gemini adapter.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultGeminiMaxTokens
	}
	return &GeminiClient{
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		baseURL:   cfg.BaseURL,
	}
}

func (c *GeminiClient) Name() string { return Gemini }

func (c *GeminiClient) client(ctx context.Context) (*genai.Client, error) {
	c.initOnce.Do(func() {
		clientConfig := &genai.ClientConfig{
			APIKey:  c.apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if c.baseURL != "" {
			clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
		}
		c.gClient, c.initErr = genai.NewClient(ctx, clientConfig)
		if c.initErr != nil {
			c.initErr = fmt.Errorf("failed to create Gemini client: %w", c.initErr)
		}
	})
	return c.gClient, c.initErr
}

// Generate submits the prompt and returns the first candidate's text. A
// response with no candidate text is classified as safety-blocked when the
// prompt feedback carries a block reason, and as structurally empty otherwise.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}

	client, err := c.client(ctx)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(c.maxTokens),
		Temperature:     genai.Ptr(float32(0.7)),
	}
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxTokens)
	}
	if opts.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(opts.Temperature))
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &VendorError{Provider: Gemini, Status: apiErr.Code, Message: apiErr.Message}
		}
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: %s", ErrContentBlocked, resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}

	return text, nil
}
