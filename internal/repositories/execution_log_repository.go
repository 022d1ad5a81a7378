package repositories

import (
	"context"

	"gorm.io/gorm"

	"travelplan/internal/models/db_models"
)

// ExecutionLogStore is the narrow write/read surface of the execution-log table.
type ExecutionLogStore interface {
	// Insert writes one row and returns how many rows the database reports as inserted.
	Insert(ctx context.Context, entry *db_models.ExecutionLog) (int64, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.ExecutionLog, error)
}

type ExecutionLogRepository struct {
	db *gorm.DB
}

func NewExecutionLogRepository(db *gorm.DB) *ExecutionLogRepository {
	return &ExecutionLogRepository{db: db}
}

func (r *ExecutionLogRepository) Insert(ctx context.Context, entry *db_models.ExecutionLog) (int64, error) {
	result := r.db.WithContext(ctx).Create(entry)
	return result.RowsAffected, result.Error
}

func (r *ExecutionLogRepository) List(ctx context.Context, page, pageSize int) ([]db_models.ExecutionLog, error) {
	var logs []db_models.ExecutionLog
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("execution_time DESC").
		Find(&logs).Error
	return logs, err
}
