// Package controller contains the HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hexapixel/backend/internal/integration/entrypoint/dto"
)

// HealthController handles health check requests.
type HealthController struct {
	dbHealthChecker func() bool
}

// NewHealthController creates a new HealthController instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{dbHealthChecker: dbHealthChecker}
}

// Check handles GET /health.
func (c *HealthController) Check(ctx *gin.Context) {
	if !c.dbHealthChecker() {
		ctx.JSON(http.StatusServiceUnavailable, dto.OK("unhealthy", gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		}))
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("healthy", gin.H{
		"status": "healthy",
	}))
}
