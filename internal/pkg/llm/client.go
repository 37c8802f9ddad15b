package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/autoflip/backend/config"
)

// Client is a thin wrapper around the OpenAI chat completions client that
// evaluates a single auction lot.
type Client struct {
	client      openai.Client
	model       openai.ChatModel
	temperature float64
}

func NewClient(cfg config.OpenAIConfig) *Client {
	return &Client{
		client:      openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       openai.ChatModel(cfg.Model),
		temperature: cfg.Temperature,
	}
}

// Evaluate sends the two-message exchange to the model and returns the raw
// reply text. No retries; any SDK failure is returned to the caller.
func (c *Client) Evaluate(ctx context.Context, lot Lot) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(UserPrompt(lot)),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("call OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
