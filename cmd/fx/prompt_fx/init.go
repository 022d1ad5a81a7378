package prompt_fx

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"travelplan/internal/config"
	"travelplan/internal/services"
	"travelplan/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvidePlanSettings,
	ProvidePlanService)

// ProvideTextGenerator creates the generation client for the configured provider.
func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config) (utils.TextGenerator, error) {
	log.Info().Str("provider", cfg.GenerationProvider).Str("model", cfg.ModelName()).Msg("Initializing text generator")

	switch cfg.GenerationProvider {
	case config.ProviderOpenAI:
		return utils.NewOpenAITextGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL), nil
	case config.ProviderGemini:
		client, err := utils.NewGeminiTextGenerator(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedProvider, cfg.GenerationProvider)
	}
}

func ProvidePlanSettings(cfg *config.Config) services.PlanSettings {
	return services.PlanSettings{
		ModelName:   cfg.ModelName(),
		Temperature: cfg.GenerationTemperature,
	}
}

func ProvidePlanService(
	generator utils.TextGenerator,
	executionLog services.ExecutionLogServiceInterface,
	settings services.PlanSettings,
) services.PlanServiceInterface {
	return services.NewPlanService(generator, executionLog, settings)
}
