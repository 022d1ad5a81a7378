package utils

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no model name is configured.
const DefaultOpenAIModel = openai.GPT4o

// OpenAITextGenerator implements TextGenerator for OpenAI-compatible chat completion APIs.
type OpenAITextGenerator struct {
	client *openai.Client
}

// NewOpenAITextGenerator builds a client for apiKey. An empty baseURL keeps the public endpoint.
func NewOpenAITextGenerator(apiKey, baseURL string) *OpenAITextGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAITextGenerator{client: openai.NewClientWithConfig(cfg)}
}

func (o *OpenAITextGenerator) Generate(ctx context.Context, prompt string, temperature float32, modelName string) (GenerationResult, error) {
	if modelName == "" {
		modelName = DefaultOpenAIModel
	}

	req := openai.ChatCompletionRequest{
		Model:       modelName,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	log.Debug().Str("model", modelName).Float32("temperature", temperature).Msg("Sending request to OpenAI API")
	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("model", modelName).Msg("OpenAI API call failed")
		return GenerationResult{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return GenerationResult{}, fmt.Errorf("%w: %w", ErrGeneration, ErrEmptyGeneration)
	}

	return GenerationResult{
		Text:               resp.Choices[0].Message.Content,
		PromptTokenCount:   resp.Usage.PromptTokens,
		ResponseTokenCount: resp.Usage.CompletionTokens,
		TotalTokenCount:    resp.Usage.TotalTokens,
	}, nil
}
