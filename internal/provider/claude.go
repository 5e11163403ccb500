package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultClaudeModel     = "claude-sonnet-4-20250514"
	defaultClaudeMaxTokens = 4096
	anthropicVersion       = "2023-06-01"
)

// ClaudeConfig configures the Anthropic adapter. Values are threaded in at
// construction time rather than read from the environment inside the adapter.
type ClaudeConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string // override for testing; defaults to the Anthropic API
}

// ClaudeClient calls the Anthropic messages endpoint.
type ClaudeClient struct {
	apiKey     string
	model      string
	maxTokens  int
	baseURL    string
	httpClient *http.Client
}

// NewClaudeClient creates an Anthropic adapter. A missing API key is not an
// error here; it surfaces at call time so other providers stay usable.
func NewClaudeClient(cfg ClaudeConfig) *ClaudeClient {
	if cfg.Model == "" {
		cfg.Model = defaultClaudeModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultClaudeMaxTokens
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com/v1"
	}
	return &ClaudeClient{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *ClaudeClient) Name() string { return Claude }

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature,omitempty"`
	Messages    []claudeMessage `json:"messages"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Generate submits the prompt as a single user message and returns the first
// text block of the response.
func (c *ClaudeClient) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("claude: %w", ErrMissingAPIKey)
	}

	request := claudeRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: 0.9,
		Messages:    []claudeMessage{{Role: "user", Content: prompt}},
	}
	if opts.Temperature > 0 {
		request.Temperature = opts.Temperature
	}
	if opts.MaxTokens > 0 {
		request.MaxTokens = opts.MaxTokens
	}

	reqBody, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/messages", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &VendorError{Provider: Claude, Status: resp.StatusCode, Message: string(body)}
	}

	var claudeResp claudeResponse
	if err := json.Unmarshal(body, &claudeResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(claudeResp.Content) == 0 || claudeResp.Content[0].Text == "" {
		return "", fmt.Errorf("claude: %w", ErrEmptyResponse)
	}

	return claudeResp.Content[0].Text, nil
}
