package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradescope/internal/auth"
	"tradescope/internal/service"
)

// BackupHandler moves whole journals between deployments as JSON dumps.
type BackupHandler struct {
	Imports *service.ImportService
}

func (h *BackupHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/backup")
	g.GET("", h.export)
	g.POST("/import", h.importBackup)
}

// @Summary Download the journal as a JSON backup
// @Tags backup
// @Success 200 {object} apiResponse
// @Router /api/v1/backup [get]
func (h *BackupHandler) export(c *gin.Context) {
	if h.Imports == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	backup, err := h.Imports.Export(c.Request.Context(), auth.UserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, backup, nil)
}

// @Summary Restore a journal backup
// @Tags backup
// @Param body body service.Backup true "backup payload"
// @Success 200 {object} apiResponse
// @Router /api/v1/backup/import [post]
func (h *BackupHandler) importBackup(c *gin.Context) {
	if h.Imports == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var backup service.Backup
	if err := c.ShouldBindJSON(&backup); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	result, err := h.Imports.Import(c.Request.Context(), auth.UserID(c), backup)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, result, nil)
}
