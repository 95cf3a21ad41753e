package groq

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"vitashifa/internal/ports/ai"
)

var ErrEmptyResponse = errors.New("groq returned no choices")

// Client implements ai.ChatModel against Groq's OpenAI-compatible API.
type Client struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

func New(cfg Config) *Client {
	oc := openai.DefaultConfig(strings.TrimSpace(cfg.APIKey))
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		oc.BaseURL = base
	}

	return &Client{
		client: openai.NewClientWithConfig(oc),
		model:  strings.TrimSpace(cfg.Model),
	}
}

func (c *Client) Chat(ctx context.Context, req ai.ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	oreq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONOnly {
		oreq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, oreq)
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
