package ai

import "context"

// ChatModel is a text-completion LLM (consultation chat, plan generation).
type ChatModel interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

// VisionModel is an image-understanding LLM (diagnosis).
type VisionModel interface {
	AnalyzeImage(ctx context.Context, req ImageRequest) (string, error)
}
