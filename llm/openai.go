package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Model and Temperature are fixed; they are part of the generation contract,
// not runtime configuration.
const (
	Model       = openai.GPT4
	Temperature = 0.7
)

// Completer is the narrow surface the listing generator needs from a
// chat-completion API.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client wraps the OpenAI API behind the Completer interface.
type Client struct {
	api *openai.Client
}

// NewClient creates an authenticated OpenAI client.
func NewClient(apiKey string) *Client {
	return &Client{api: openai.NewClient(apiKey)}
}

// Complete sends one chat-completion request and returns the raw text of the
// first choice. A single attempt only; the caller decides what a failure
// means.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       Model,
		Temperature: Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: reply contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
