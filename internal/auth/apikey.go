package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PratikDhanave/event-track-service/internal/metrics"
	"github.com/PratikDhanave/event-track-service/internal/models"
	"github.com/PratikDhanave/event-track-service/internal/requestid"
)

// HeaderAPIKey carries the shared secret on authenticated routes.
const HeaderAPIKey = "X-API-Key"

// SharedSecretMiddleware rejects requests whose X-API-Key header is not
// exactly equal to secret. A missing header reads as "" and never matches.
// The header value is compared as received, without trimming.
//
// TODO: switch to crypto/subtle.ConstantTimeCompare once timing-safe
// comparison is requested.
func SharedSecretMiddleware(secret string, logger *zap.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(HeaderAPIKey) != secret {
			logger.Warn("Unauthorized request blocked",
				zap.String("request_id", requestid.Get(c)),
				zap.String("remote_addr", c.ClientIP()),
				zap.String("path", c.Request.URL.Path))
			m.Track(metrics.OutcomeUnauthorized)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: models.MsgUnauthorized})
			return
		}
		c.Next()
	}
}
