package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-1.5-pro"

// GeminiTextGenerator implements TextGenerator using Google's Gemini models
type GeminiTextGenerator struct {
	client *genai.Client
}

// NewGeminiTextGenerator creates a new Gemini client
func NewGeminiTextGenerator(ctx context.Context, apiKey string) (*GeminiTextGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextGenerator{client: client}, nil
}

func (g *GeminiTextGenerator) model(modelName string) *genai.GenerativeModel {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return g.client.GenerativeModel(modelName)
}

// Generate sends the prompt once with the given temperature and returns the text and usage metadata.
func (g *GeminiTextGenerator) Generate(ctx context.Context, prompt string, temperature float32, modelName string) (GenerationResult, error) {
	m := g.model(modelName)
	m.SetTemperature(temperature)

	log.Debug().Str("model", modelName).Float32("temperature", temperature).Msg("Sending request to Gemini")
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("model", modelName).Msg("Gemini API call failed")
		return GenerationResult{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	return geminiResult(resp)
}

// Close closes the Gemini client
func (g *GeminiTextGenerator) Close() error {
	return g.client.Close()
}

// geminiResult concatenates the text parts of the first candidate.
func geminiResult(resp *genai.GenerateContentResponse) (GenerationResult, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return GenerationResult{}, fmt.Errorf("%w: %w", ErrGeneration, ErrEmptyGeneration)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	if text.Len() == 0 {
		return GenerationResult{}, fmt.Errorf("%w: %w", ErrGeneration, ErrEmptyGeneration)
	}

	result := GenerationResult{Text: text.String()}
	if usage := resp.UsageMetadata; usage != nil {
		result.PromptTokenCount = int(usage.PromptTokenCount)
		result.ResponseTokenCount = int(usage.CandidatesTokenCount)
		result.TotalTokenCount = int(usage.TotalTokenCount)
	}
	return result, nil
}
