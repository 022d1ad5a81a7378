package infra

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travelplan/internal/models/db_models"
)

// InitPostgresql opens the connection pool and makes sure the execution_logs table exists.
func InitPostgresql(dsn string) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := connectionPool.AutoMigrate(&db_models.ExecutionLog{}); err != nil {
		return nil, fmt.Errorf("error migrating execution_logs: %w", err)
	}

	log.Info().Msg("PostgreSQL connection established")
	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("Error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
	} else {
		log.Info().Msg("PostgreSQL database connection closed successfully")
	}
}
