package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// ErrorStatus maps a service error to the HTTP status and the message shown to the user.
func ErrorStatus(err error) (int, string) {
	switch {
	case IsInputError(err):
		return http.StatusBadRequest, inputWarning(err)
	case errors.Is(err, ErrInvalidPage):
		return http.StatusBadRequest, "Page must be greater than 0"
	case errors.Is(err, ErrInvalidPageSize):
		return http.StatusBadRequest, "Page size must be between 1 and 100"
	case errors.Is(err, ErrGeneration):
		return http.StatusBadGateway, "Travel plan generation failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func HandleServiceError(c *gin.Context, err error) {
	code, message := ErrorStatus(err)
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("Request failed")
	}
	RespondError(c, code, message)
}

func inputWarning(err error) string {
	switch {
	case errors.Is(err, ErrNoInterestsSelected):
		return "興味の対象を少なくとも1つ選択してください。"
	case errors.Is(err, ErrInvalidRegion):
		return "無効な都道府県が選択されました。"
	case errors.Is(err, ErrInvalidPartySize):
		return "人数は1から10の間で選択してください。"
	case errors.Is(err, ErrInvalidDuration):
		return "滞在日数は1から10の間で選択してください。"
	case errors.Is(err, ErrInvalidInterest):
		return "無効な興味の対象が選択されました。"
	default:
		return "無効な特別リクエストが選択されました。"
	}
}
