package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplan/pkg/utils"
)

var fixedNow = time.Date(2024, 11, 1, 9, 30, 0, 0, time.UTC)

func newTestPlanService(generator utils.TextGenerator, logService ExecutionLogServiceInterface, temperature float32) *PlanService {
	service := NewPlanService(generator, logService, PlanSettings{ModelName: "gemini-1.5-pro", Temperature: temperature}).(*PlanService)
	service.now = func() time.Time { return fixedNow }
	return service
}

func TestPlanService_CreatePlan_TokyoToKumamoto(t *testing.T) {
	generator := &fakeGenerator{result: utils.GenerationResult{
		Text: "ITINERARY", PromptTokenCount: 10, ResponseTokenCount: 20, TotalTokenCount: 30,
	}}
	store := &fakeExecutionLogStore{rows: 1}
	service := newTestPlanService(generator, NewExecutionLogService(store), 1.0)

	result, err := service.CreatePlan(context.Background(), validRequest())
	require.NoError(t, err)

	for _, fragment := range []string{"東京", "熊本", "1", "歴史, 食", "3", "なし"} {
		assert.Contains(t, result.Prompt, fragment)
	}
	assert.Equal(t, utils.GenerationResult{Text: "ITINERARY", PromptTokenCount: 10, ResponseTokenCount: 20, TotalTokenCount: 30}, result.Generation)
	assert.Equal(t, result.Generation.PromptTokenCount+result.Generation.ResponseTokenCount, result.Generation.TotalTokenCount)
	assert.True(t, result.Log.Logged)

	require.Len(t, generator.calls, 1)
	assert.Equal(t, result.Prompt, generator.calls[0].prompt)
	assert.Equal(t, float32(1.0), generator.calls[0].temperature)
	assert.Equal(t, "gemini-1.5-pro", generator.calls[0].modelName)

	require.Len(t, store.inserted, 1)
	row := store.inserted[0]
	assert.Equal(t, result.Prompt, row.Prompt)
	assert.Equal(t, "ITINERARY", row.OutputResult)
	assert.Equal(t, 10, row.PromptTokenCount)
	assert.Equal(t, 20, row.ResponseTokenCount)
	assert.Equal(t, 30, row.TotalTokenCount)
	assert.Equal(t, "gemini-1.5-pro", row.ModelName)
	assert.Equal(t, fixedNow, row.ExecutionTime)
}

func TestPlanService_CreatePlan_LogFailureKeepsResult(t *testing.T) {
	generator := &fakeGenerator{result: utils.GenerationResult{Text: "ITINERARY", PromptTokenCount: 10, ResponseTokenCount: 20, TotalTokenCount: 30}}
	store := &fakeExecutionLogStore{err: errors.New("insert failed")}
	service := newTestPlanService(generator, NewExecutionLogService(store), 1.5)

	result, err := service.CreatePlan(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "ITINERARY", result.Generation.Text)
	assert.Equal(t, float32(1.5), result.Temperature)
	assert.False(t, result.Log.Logged)
	assert.ErrorIs(t, result.Log.Err, utils.ErrLogWrite)
	assert.Len(t, store.inserted, 1)
}

func TestPlanService_CreatePlan_InvalidInput(t *testing.T) {
	generator := &fakeGenerator{}
	store := &fakeExecutionLogStore{rows: 1}
	service := newTestPlanService(generator, NewExecutionLogService(store), 1.0)

	req := validRequest()
	req.Interests = nil
	_, err := service.CreatePlan(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrNoInterestsSelected)

	req = validRequest()
	req.Destination = "Atlantis"
	_, err = service.CreatePlan(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidRegion)

	assert.Empty(t, generator.calls, "generation must not run for invalid input")
	assert.Empty(t, store.inserted)
}

func TestPlanService_CreatePlan_GenerationError(t *testing.T) {
	t.Run("Plain_Error_Is_Wrapped", func(t *testing.T) {
		generator := &fakeGenerator{err: errors.New("quota exceeded")}
		store := &fakeExecutionLogStore{rows: 1}
		service := newTestPlanService(generator, NewExecutionLogService(store), 1.0)

		result, err := service.CreatePlan(context.Background(), validRequest())
		assert.ErrorIs(t, err, utils.ErrGeneration)
		assert.Contains(t, err.Error(), "quota exceeded")
		assert.Empty(t, result.Generation.Text)
		assert.Empty(t, store.inserted, "nothing is logged when generation fails")
		assert.Len(t, generator.calls, 1, "generation must not be retried")
	})

	t.Run("Already_Wrapped_Error_Kept", func(t *testing.T) {
		generator := &fakeGenerator{err: utils.ErrGeneration}
		service := newTestPlanService(generator, NewNoopExecutionLogService(), 1.0)

		_, err := service.CreatePlan(context.Background(), validRequest())
		assert.Equal(t, utils.ErrGeneration, err)
	})
}

func TestPlanService_CreatePlan_SingleGenerationCall(t *testing.T) {
	generator := &countingGenerator{fakeGenerator: fakeGenerator{result: utils.GenerationResult{
		Text: "plan", PromptTokenCount: 10, ResponseTokenCount: 20, TotalTokenCount: 30,
	}}}
	store := &fakeExecutionLogStore{rows: 1}
	service := newTestPlanService(generator, NewExecutionLogService(store), 1.0)

	result, err := service.CreatePlan(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, generator.counted, "prompt tokens come from the generation usage metadata")
	assert.Len(t, generator.calls, 1)
	assert.Len(t, store.inserted, 1)
	assert.Equal(t, 10, result.Generation.PromptTokenCount)
}
