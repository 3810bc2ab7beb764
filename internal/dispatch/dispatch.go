// Package dispatch sends a generated prompt to an OpenAI-compatible chat
// completion endpoint and returns the model's reply.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Sentinel errors for dispatch operations.
var (
	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = errors.New("dispatch: API key is required")

	// ErrEmptyPrompt indicates there is nothing to send.
	ErrEmptyPrompt = errors.New("dispatch: prompt is empty")

	// ErrEmptyResponse indicates the endpoint returned no choices.
	ErrEmptyResponse = errors.New("dispatch: empty response")
)

// Config holds the endpoint settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// SystemPrompt, when set, is sent before the user prompt.
	SystemPrompt string
	// Retry controls retries of rate-limited and failed requests.
	Retry RetryPolicy
}

// ConfigFromEnv builds a Config, reading the API key from the environment
// variable named apiKeyEnv.
func ConfigFromEnv(apiKeyEnv, model, baseURL string) Config {
	return Config{
		APIKey:  strings.TrimSpace(os.Getenv(apiKeyEnv)),
		Model:   model,
		BaseURL: baseURL,
		Retry:   DefaultRetryPolicy,
	}
}

// Reply is the model's answer.
type Reply struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
}

// Client sends prompts to a chat completion endpoint.
type Client struct {
	client       *openai.Client
	model        string
	systemPrompt string
	retry        RetryPolicy
}

// New creates a Client. An empty BaseURL uses the library default.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &Client{
		client:       openai.NewClientWithConfig(config),
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,
		retry:        cfg.Retry,
	}, nil
}

// Send posts prompt as a single user message and returns the first choice.
// Rate limits and server errors are retried according to the client's
// RetryPolicy.
func (c *Client) Send(ctx context.Context, prompt string) (Reply, error) {
	if strings.TrimSpace(prompt) == "" {
		return Reply{}, ErrEmptyPrompt
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if c.systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: c.systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	var resp openai.ChatCompletionResponse
	err := retry(ctx, c.retry, func() error {
		var err error
		resp, err = c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    c.model,
			Messages: messages,
		})
		return err
	})
	if err != nil {
		return Reply{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Reply{}, ErrEmptyResponse
	}

	return Reply{
		Content:          resp.Choices[0].Message.Content,
		Model:            resp.Model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}
