package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradescope/internal/auth"
	"tradescope/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type StatementHandler struct {
	Statements *service.StatementService
}

func (h *StatementHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/statements")
	g.GET("/:account_id", h.preview)
	g.POST("/:account_id/export", h.export)
}

// @Summary Monthly statement sheets
// @Tags statements
// @Param account_id path string true "account id"
// @Param max_loss_pct query number false "max loss override (percent)"
// @Param obj_week_pct query number false "weekly objective override (percent)"
// @Param obj_day_pct query number false "daily objective override (percent)"
// @Success 200 {object} apiResponse
// @Router /api/v1/statements/{account_id} [get]
func (h *StatementHandler) preview(c *gin.Context) {
	if h.Statements == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	_, sheets, err := h.Statements.Sheets(
		c.Request.Context(),
		auth.UserID(c),
		c.Param("account_id"),
		overridesFromQuery(c),
		time.Now().UTC(),
	)
	if err != nil {
		serviceError(c, err)
		return
	}
	Ok(c, sheets, nil)
}

type exportRequest struct {
	MaxLossPct *float64 `json:"max_loss_pct"`
	ObjWeekPct *float64 `json:"obj_week_pct"`
	ObjDayPct  *float64 `json:"obj_day_pct"`
}

// @Summary Export statements as an xlsx workbook
// @Tags statements
// @Param account_id path string true "account id"
// @Param body body exportRequest false "objective overrides (percent)"
// @Success 200 {file} binary
// @Router /api/v1/statements/{account_id}/export [post]
func (h *StatementHandler) export(c *gin.Context) {
	if h.Statements == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req exportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			Error(c, http.StatusBadRequest, "invalid body", nil)
			return
		}
	}

	var buf bytes.Buffer
	filename, err := h.Statements.Export(
		c.Request.Context(),
		&buf,
		auth.UserID(c),
		c.Param("account_id"),
		service.StatementOverrides{
			MaxLossPct: req.MaxLossPct,
			ObjWeekPct: req.ObjWeekPct,
			ObjDayPct:  req.ObjDayPct,
		},
		time.Now().UTC(),
	)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func overridesFromQuery(c *gin.Context) service.StatementOverrides {
	return service.StatementOverrides{
		MaxLossPct: floatQueryPtr(c, "max_loss_pct"),
		ObjWeekPct: floatQueryPtr(c, "obj_week_pct"),
		ObjDayPct:  floatQueryPtr(c, "obj_day_pct"),
	}
}
