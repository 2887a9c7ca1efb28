package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/event-track-service/internal/models"
)

// RegisterHealthRoutes registers the liveness endpoint used by uptime probes.
// It has no dependencies and no failure path.
func RegisterHealthRoutes(r gin.IRoutes) {
	health := func(c *gin.Context) {
		c.String(http.StatusOK, models.HealthResponseBody)
	}
	r.GET("/health", health)
	r.HEAD("/health", health)
}
