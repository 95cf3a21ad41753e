package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"vitashifa/internal/ports/ai"
)

var ErrEmptyResponse = errors.New("gemini returned no candidates")

// Client implements ai.VisionModel on the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Client, error) {
	gc, err := genai.NewClient(ctx, option.WithAPIKey(strings.TrimSpace(apiKey)))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &Client{client: gc, model: strings.TrimSpace(model)}, nil
}

func (c *Client) AnalyzeImage(ctx context.Context, req ai.ImageRequest) (string, error) {
	model := c.client.GenerativeModel(c.model)

	// genai wants the bare subtype, e.g. "jpeg" for image/jpeg.
	format := strings.TrimPrefix(req.MIMEType, "image/")
	img := genai.ImageData(format, req.Data)

	resp, err := model.GenerateContent(ctx, img, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", ErrEmptyResponse
	}
	return string(text), nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
