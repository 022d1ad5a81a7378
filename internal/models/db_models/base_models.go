package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelplan/pkg/utils"
)

type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt int64     `gorm:"autoCreateTime"`
}

// BeforeCreate assigns the id and creation time in Go so inserts need no RETURNING clause.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = utils.NowUnixSeconds()
	}
	return nil
}
