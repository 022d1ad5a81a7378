package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelplan/internal/api/views"
	"travelplan/internal/models/request_models"
	"travelplan/internal/models/response_models"
	"travelplan/internal/services"
	"travelplan/pkg/utils"
)

type PlanController struct {
	planService     services.PlanServiceInterface
	provinceService services.ProvinceServiceInterface
	modelName       string
}

func NewPlanController(
	planService services.PlanServiceInterface,
	provinceService services.ProvinceServiceInterface,
	settings services.PlanSettings,
) *PlanController {
	return &PlanController{
		planService:     planService,
		provinceService: provinceService,
		modelName:       settings.ModelName,
	}
}

type planPage struct {
	ModelName string
	Options   response_models.OptionsResponse
	Request   request_models.TravelRequest
	Plan      *response_models.TravelPlanResponse
	Warning   string
	Error     string
}

func toPlanResponse(result services.PlanResult) *response_models.TravelPlanResponse {
	return &response_models.TravelPlanResponse{
		Text:               result.Generation.Text,
		ModelName:          result.ModelName,
		Temperature:        result.Temperature,
		PromptTokenCount:   result.Generation.PromptTokenCount,
		ResponseTokenCount: result.Generation.ResponseTokenCount,
		TotalTokenCount:    result.Generation.TotalTokenCount,
	}
}

func (p *PlanController) newPage() planPage {
	options := p.provinceService.GetOptions()
	return planPage{
		ModelName: p.modelName,
		Options:   options,
		Request: request_models.TravelRequest{
			Origin:         options.DefaultOrigin,
			Destination:    options.Regions[0],
			PartySize:      options.PartySize.Default,
			Duration:       options.Duration.Default,
			SpecialRequest: options.SpecialRequests[0],
		},
	}
}

// GET /
func (p *PlanController) ShowFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, views.IndexTemplate, p.newPage())
}

// POST /
func (p *PlanController) SubmitFormHandler(c *gin.Context) {
	page := p.newPage()

	var req request_models.TravelRequest
	if err := c.ShouldBind(&req); err != nil {
		page.Warning = "入力内容を確認してください。"
		c.HTML(http.StatusBadRequest, views.IndexTemplate, page)
		return
	}
	page.Request = req

	result, err := p.planService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		code, message := utils.ErrorStatus(err)
		if utils.IsInputError(err) {
			page.Warning = message
		} else {
			page.Error = message
		}
		c.HTML(code, views.IndexTemplate, page)
		return
	}

	page.Plan = toPlanResponse(result)
	c.HTML(http.StatusOK, views.IndexTemplate, page)
}

// POST /api/plans
func (p *PlanController) CreatePlanHandler(c *gin.Context) {
	var req request_models.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.planService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toPlanResponse(result), "Travel plan created successfully")
}
