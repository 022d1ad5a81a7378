package response_models

import "time"

type ExecutionLogResponse struct {
	ID                 string    `json:"id"`
	ModelName          string    `json:"model_name"`
	Prompt             string    `json:"prompt"`
	OutputResult       string    `json:"output_result"`
	PromptTokenCount   int       `json:"prompt_token_count"`
	ResponseTokenCount int       `json:"response_token_count"`
	TotalTokenCount    int       `json:"total_token_count"`
	ExecutionTime      time.Time `json:"execution_time"`
	CreatedAt          time.Time `json:"created_at"`
}
