package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"travelplan/internal/models/db_models"
	"travelplan/internal/models/response_models"
	"travelplan/internal/repositories"
	"travelplan/pkg/utils"
)

// ExecutionLogEntry is the audit record of one successful generation.
type ExecutionLogEntry struct {
	ModelName          string
	Prompt             string
	OutputResult       string
	PromptTokenCount   int
	ResponseTokenCount int
	TotalTokenCount    int
	ExecutionTime      time.Time
}

// LogOutcome reports whether the entry was stored. Err wraps utils.ErrLogWrite on failure.
type LogOutcome struct {
	Logged bool
	Err    error
}

type ExecutionLogServiceInterface interface {
	// LogExecution makes one insert attempt. Failures are logged and returned as an
	// outcome, never retried.
	LogExecution(ctx context.Context, entry ExecutionLogEntry) LogOutcome
	ListExecutions(ctx context.Context, page, pageSize int) ([]response_models.ExecutionLogResponse, error)
}

type ExecutionLogService struct {
	store repositories.ExecutionLogStore
}

func NewExecutionLogService(store repositories.ExecutionLogStore) ExecutionLogServiceInterface {
	return &ExecutionLogService{store: store}
}

func (s *ExecutionLogService) LogExecution(ctx context.Context, entry ExecutionLogEntry) LogOutcome {
	row := &db_models.ExecutionLog{
		ModelName:          entry.ModelName,
		Prompt:             entry.Prompt,
		OutputResult:       entry.OutputResult,
		PromptTokenCount:   entry.PromptTokenCount,
		ResponseTokenCount: entry.ResponseTokenCount,
		TotalTokenCount:    entry.TotalTokenCount,
		ExecutionTime:      entry.ExecutionTime,
	}

	inserted, err := s.store.Insert(ctx, row)
	switch {
	case err != nil:
		err = fmt.Errorf("%w: %w", utils.ErrLogWrite, err)
	case inserted == 0:
		err = fmt.Errorf("%w: no rows inserted", utils.ErrLogWrite)
	default:
		log.Info().Str("id", row.ID.String()).Str("model", entry.ModelName).Msg("Execution log saved")
		return LogOutcome{Logged: true}
	}

	log.Warn().Err(err).Str("model", entry.ModelName).Msg("Execution log was not saved")
	return LogOutcome{Err: err}
}

func (s *ExecutionLogService) ListExecutions(ctx context.Context, page, pageSize int) ([]response_models.ExecutionLogResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	rows, err := s.store.List(ctx, page, pageSize)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list execution logs")
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}

	responses := make([]response_models.ExecutionLogResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, response_models.ExecutionLogResponse{
			ID:                 row.ID.String(),
			ModelName:          row.ModelName,
			Prompt:             row.Prompt,
			OutputResult:       row.OutputResult,
			PromptTokenCount:   row.PromptTokenCount,
			ResponseTokenCount: row.ResponseTokenCount,
			TotalTokenCount:    row.TotalTokenCount,
			ExecutionTime:      utils.InJST(row.ExecutionTime),
			CreatedAt:          utils.FromUnixSecondsJST(row.CreatedAt),
		})
	}
	return responses, nil
}

// NoopExecutionLogService is used when execution logging is disabled.
type NoopExecutionLogService struct{}

func NewNoopExecutionLogService() ExecutionLogServiceInterface {
	return NoopExecutionLogService{}
}

func (NoopExecutionLogService) LogExecution(ctx context.Context, entry ExecutionLogEntry) LogOutcome {
	log.Debug().Msg("Execution logging disabled, skipping insert")
	return LogOutcome{}
}

func (NoopExecutionLogService) ListExecutions(ctx context.Context, page, pageSize int) ([]response_models.ExecutionLogResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	return []response_models.ExecutionLogResponse{}, nil
}

func validatePaging(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return utils.ErrInvalidPageSize
	}
	return nil
}
