package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradescope/internal/service"
)

type apiResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func Ok(c *gin.Context, data any, meta map[string]any) {
	c.JSON(http.StatusOK, apiResponse{
		Code:    0,
		Message: "ok",
		Data:    data,
		Meta:    meta,
	})
}

func Error(c *gin.Context, status int, message string, meta map[string]any) {
	c.JSON(status, apiResponse{
		Code:    status,
		Message: message,
		Meta:    meta,
	})
}

// serviceError maps the service sentinels onto http statuses; anything
// unmatched is a storage failure.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		Error(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, service.ErrValidation):
		Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrNameTaken):
		Error(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, service.ErrAccountLimit):
		Error(c, http.StatusForbidden, err.Error(), map[string]any{"reason": "plan_limit"})
	case errors.Is(err, service.ErrFeatureLocked):
		Error(c, http.StatusForbidden, err.Error(), map[string]any{"reason": "plan_feature"})
	default:
		Error(c, http.StatusBadGateway, err.Error(), nil)
	}
}
