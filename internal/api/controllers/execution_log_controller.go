package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelplan/internal/services"
	"travelplan/pkg/utils"
)

type ExecutionLogController struct {
	executionLogService services.ExecutionLogServiceInterface
}

func NewExecutionLogController(executionLogService services.ExecutionLogServiceInterface) *ExecutionLogController {
	return &ExecutionLogController{
		executionLogService: executionLogService,
	}
}

// ListExecutions godoc
// @Summary List execution logs
// @Description Fetch a paginated list of generation calls, newest first
// @Tags ExecutionLogs
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {array} response_models.ExecutionLogResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/executions [get]
func (e *ExecutionLogController) ListExecutions(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	logs, err := e.executionLogService.ListExecutions(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, logs, "Execution logs fetched successfully")
}
