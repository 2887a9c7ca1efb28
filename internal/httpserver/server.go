package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PratikDhanave/event-track-service/internal/auth"
	"github.com/PratikDhanave/event-track-service/internal/config"
	"github.com/PratikDhanave/event-track-service/internal/handlers"
	"github.com/PratikDhanave/event-track-service/internal/metrics"
	"github.com/PratikDhanave/event-track-service/internal/requestid"
)

// NewRouter wires the public liveness endpoint and the authenticated API.
// Public: /health
// Authenticated: /track
func NewRouter(cfg config.Config, logger *zap.Logger, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	// Registered paths answer other methods with 405 rather than 404.
	r.HandleMethodNotAllowed = true
	r.Use(requestid.Middleware(), Recovery(logger), AccessLog(logger))

	// Liveness: confirms the process is running.
	handlers.RegisterHealthRoutes(r)

	// Auth group enforces the shared secret via X-API-Key.
	authGroup := r.Group("/")
	authGroup.Use(auth.SharedSecretMiddleware(cfg.SecretToken, logger, m))

	handlers.RegisterTrackRoutes(authGroup, logger, m)

	return r
}

// NewServer wraps h in an http.Server with conservative timeouts.
func NewServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
