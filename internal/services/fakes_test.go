package services

import (
	"context"

	"travelplan/internal/models/db_models"
	"travelplan/pkg/utils"
)

type generateCall struct {
	prompt      string
	temperature float32
	modelName   string
}

type fakeGenerator struct {
	result utils.GenerationResult
	err    error
	calls  []generateCall
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, temperature float32, modelName string) (utils.GenerationResult, error) {
	f.calls = append(f.calls, generateCall{prompt: prompt, temperature: temperature, modelName: modelName})
	if f.err != nil {
		return utils.GenerationResult{}, f.err
	}
	return f.result, nil
}

// countingGenerator records any token-count request made alongside Generate.
type countingGenerator struct {
	fakeGenerator
	counted []string
}

func (c *countingGenerator) CountTokens(ctx context.Context, prompt string, modelName string) (int, error) {
	c.counted = append(c.counted, prompt)
	return 42, nil
}

type fakeExecutionLogStore struct {
	inserted []db_models.ExecutionLog
	rows     int64
	err      error
	listed   []db_models.ExecutionLog
	listErr  error
}

func (f *fakeExecutionLogStore) Insert(ctx context.Context, entry *db_models.ExecutionLog) (int64, error) {
	f.inserted = append(f.inserted, *entry)
	if f.err != nil {
		return 0, f.err
	}
	return f.rows, nil
}

func (f *fakeExecutionLogStore) List(ctx context.Context, page, pageSize int) ([]db_models.ExecutionLog, error) {
	return f.listed, f.listErr
}
