package db_models

import "time"

// ExecutionLog is one generation call: what was asked, what came back and what it cost.
// Rows are insert-only.
type ExecutionLog struct {
	BaseModel
	ModelName          string    `gorm:"type:varchar(128);not null"`
	Prompt             string    `gorm:"type:text;not null"`
	OutputResult       string    `gorm:"type:text;not null"`
	PromptTokenCount   int       `gorm:"not null"`
	ResponseTokenCount int       `gorm:"not null"`
	TotalTokenCount    int       `gorm:"not null"`
	ExecutionTime      time.Time `gorm:"index;not null"`
}

func (ExecutionLog) TableName() string {
	return "execution_logs"
}
