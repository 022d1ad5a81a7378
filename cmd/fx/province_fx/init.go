package province_fx

import (
	"go.uber.org/fx"

	"travelplan/internal/config"
	"travelplan/internal/services"
)

var Module = fx.Provide(
	NewProvinceService)

func NewProvinceService(cfg *config.Config) services.ProvinceServiceInterface {
	return services.NewProvinceService(cfg.DefaultOrigin)
}
