package controllers

import (
	"github.com/gin-gonic/gin"

	"travelplan/internal/services"
	"travelplan/pkg/utils"
)

type ProvincesController struct {
	provinceService services.ProvinceServiceInterface
}

func NewProvincesController(provinceService services.ProvinceServiceInterface) *ProvincesController {
	return &ProvincesController{
		provinceService: provinceService,
	}
}

// GetOptions godoc
// @Summary List form options
// @Description Regions, interest tags, special requests and numeric bounds accepted by /api/plans
// @Tags Options
// @Produce json
// @Success 200 {object} response_models.OptionsResponse
// @Router /api/options [get]
func (p *ProvincesController) GetOptions(c *gin.Context) {
	utils.RespondSuccess(c, p.provinceService.GetOptions(), "Options fetched successfully")
}
