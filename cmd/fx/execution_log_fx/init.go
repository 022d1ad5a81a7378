package execution_log_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelplan/cmd/fx/db_fx"
	"travelplan/internal/repositories"
	"travelplan/internal/services"
)

// Module stores execution logs in PostgreSQL.
var Module = fx.Options(
	db_fx.Module,
	fx.Provide(provideExecutionLogStore, provideExecutionLogService),
)

// DisabledModule skips the database entirely.
var DisabledModule = fx.Provide(services.NewNoopExecutionLogService)

// Select picks Module or DisabledModule.
func Select(enabled bool) fx.Option {
	if enabled {
		return Module
	}
	return DisabledModule
}

func provideExecutionLogStore(db *gorm.DB) repositories.ExecutionLogStore {
	return repositories.NewExecutionLogRepository(db)
}

func provideExecutionLogService(store repositories.ExecutionLogStore) services.ExecutionLogServiceInterface {
	return services.NewExecutionLogService(store)
}
