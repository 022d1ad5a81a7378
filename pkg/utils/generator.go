package utils

import "context"

// GenerationResult is the generated text plus the usage metadata reported by the service.
// TotalTokenCount is taken from the service as-is, never recomputed here.
type GenerationResult struct {
	Text               string `json:"text"`
	PromptTokenCount   int    `json:"prompt_token_count"`
	ResponseTokenCount int    `json:"response_token_count"`
	TotalTokenCount    int    `json:"total_token_count"`
}

// TextGenerator performs a single blocking completion call. No retries, no streaming.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, temperature float32, modelName string) (GenerationResult, error)
}
