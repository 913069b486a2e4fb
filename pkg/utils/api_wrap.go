package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
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

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		RespondError(c, http.StatusNotFound, "Profile not found for the current session")
	case errors.Is(err, ErrCareTeamNotFound):
		RespondError(c, http.StatusNotFound, "Care team not found")
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnknownVitalType):
		RespondError(c, http.StatusBadRequest, "Unknown vital type")
	case errors.Is(err, ErrUnitNotAllowed):
		RespondError(c, http.StatusBadRequest, "Unit is not valid for this vital type")
	case errors.Is(err, ErrSubmissionInFlight):
		RespondError(c, http.StatusConflict, "A submission is already in progress")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		zap.S().Errorw("database error", "trace_id", c.GetString("trace_id"), "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.S().Errorw("unhandled error", "trace_id", c.GetString("trace_id"), "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
