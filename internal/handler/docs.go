package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterDocs serves a plain-markdown route map for people poking the
// API without the swagger UI.
func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# TradeScope Service

Trading journal backend. All /api/* routes expect the gateway identity
header (X-User-ID by default). Health endpoints are public.

## Routes

- GET /healthz
- GET /readyz
- GET /swagger/index.html
- GET|POST /api/v1/accounts
- GET|PATCH|DELETE /api/v1/accounts/{id}
- GET|POST /api/v1/trades
- POST /api/v1/trades/payouts
- DELETE /api/v1/trades/{id}
- GET /api/v1/dashboard/{account_id}
- GET /api/v1/dashboard/{account_id}/calendar
- GET /api/v1/dashboard/{account_id}/equity-history
- GET /api/v1/statistics/{account_id}
- GET /api/v1/statistics/global
- GET /api/v1/statements/{account_id}
- POST /api/v1/statements/{account_id}/export
- GET|POST /api/v1/playbook
- DELETE /api/v1/playbook/{id}
- GET /api/v1/backup
- POST /api/v1/backup/import
- GET /api/v1/profile
- PUT /api/v1/profile/plan
- GET /api/v1/stream (websocket)
`)
	})
}
