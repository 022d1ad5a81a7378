package response_models

type TravelPlanResponse struct {
	Text               string  `json:"text"`
	ModelName          string  `json:"model_name"`
	Temperature        float32 `json:"temperature"`
	PromptTokenCount   int     `json:"prompt_token_count"`
	ResponseTokenCount int     `json:"response_token_count"`
	TotalTokenCount    int     `json:"total_token_count"`
}
