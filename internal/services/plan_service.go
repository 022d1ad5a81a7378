package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"travelplan/internal/models/request_models"
	"travelplan/pkg/utils"
)

// PlanSettings fixes the model and temperature for every request handled by a PlanService.
type PlanSettings struct {
	ModelName   string
	Temperature float32
}

// PlanResult is everything one pipeline run produced. Log is kept for the caller's
// diagnostics and is never shown to the end user.
type PlanResult struct {
	Prompt      string
	ModelName   string
	Temperature float32
	Generation  utils.GenerationResult
	Log         LogOutcome
}

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, req request_models.TravelRequest) (PlanResult, error)
}

type PlanService struct {
	generator    utils.TextGenerator
	executionLog ExecutionLogServiceInterface
	settings     PlanSettings
	now          func() time.Time
}

func NewPlanService(
	generator utils.TextGenerator,
	executionLog ExecutionLogServiceInterface,
	settings PlanSettings,
) PlanServiceInterface {
	return &PlanService{
		generator:    generator,
		executionLog: executionLog,
		settings:     settings,
		now:          utils.NowJST,
	}
}

// CreatePlan validates the request, builds the prompt, makes one generation call and then one
// execution-log insert. A failed insert does not change the returned generation.
func (p *PlanService) CreatePlan(ctx context.Context, req request_models.TravelRequest) (PlanResult, error) {
	if err := ValidateTravelRequest(req); err != nil {
		log.Info().Err(err).Msg("Rejected travel request")
		return PlanResult{}, err
	}

	prompt := BuildTravelPrompt(req)
	log.Debug().Str("prompt", prompt).Msg("Constructed travel prompt")

	generation, err := p.generator.Generate(ctx, prompt, p.settings.Temperature, p.settings.ModelName)
	if err != nil {
		if !errors.Is(err, utils.ErrGeneration) {
			err = fmt.Errorf("%w: %w", utils.ErrGeneration, err)
		}
		return PlanResult{}, err
	}

	log.Info().
		Str("model", p.settings.ModelName).
		Float32("temperature", p.settings.Temperature).
		Int("prompt_tokens", generation.PromptTokenCount).
		Int("response_tokens", generation.ResponseTokenCount).
		Int("total_tokens", generation.TotalTokenCount).
		Msg("Travel plan generated")

	outcome := p.executionLog.LogExecution(ctx, ExecutionLogEntry{
		ModelName:          p.settings.ModelName,
		Prompt:             prompt,
		OutputResult:       generation.Text,
		PromptTokenCount:   generation.PromptTokenCount,
		ResponseTokenCount: generation.ResponseTokenCount,
		TotalTokenCount:    generation.TotalTokenCount,
		ExecutionTime:      p.now(),
	})

	return PlanResult{
		Prompt:      prompt,
		ModelName:   p.settings.ModelName,
		Temperature: p.settings.Temperature,
		Generation:  generation,
		Log:         outcome,
	}, nil
}
