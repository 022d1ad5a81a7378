package controllers

import (
	"github.com/gin-gonic/gin"

	"travelplan/internal/api/views"
	"travelplan/pkg/middleware"
)

// NewRouter builds the gin engine with the form page and the JSON API.
func NewRouter(
	planController *PlanController,
	provincesController *ProvincesController,
	executionLogController *ExecutionLogController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.SetHTMLTemplate(views.Load())

	r.GET("/", planController.ShowFormHandler)
	r.POST("/", planController.SubmitFormHandler)

	api := r.Group("/api")
	api.POST("/plans", planController.CreatePlanHandler)
	api.GET("/options", provincesController.GetOptions)
	api.GET("/executions", executionLogController.ListExecutions)

	return r
}
