package controllers_fx

import (
	"go.uber.org/fx"

	"travelplan/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewProvincesController),
	fx.Provide(controllers.NewExecutionLogController),
	fx.Provide(controllers.NewRouter))
