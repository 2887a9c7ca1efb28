package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PratikDhanave/event-track-service/internal/metrics"
	"github.com/PratikDhanave/event-track-service/internal/models"
	"github.com/PratikDhanave/event-track-service/internal/payload"
	"github.com/PratikDhanave/event-track-service/internal/requestid"
)

// RegisterTrackRoutes registers the ingestion endpoint.
//
// POST /track
// - Must be mounted behind auth.SharedSecretMiddleware
// - Accepts any JSON value; malformed bodies are treated as empty
// - Logs the raw body and the decoded value before validating
// - Echoes the payload back verbatim on success
func RegisterTrackRoutes(r gin.IRoutes, logger *zap.Logger, m *metrics.Metrics) {
	r.POST("/track", func(c *gin.Context) {
		reqID := requestid.Get(c)

		// A failed read leaves whatever was read; the decode below treats a
		// truncated body like any other malformed one.
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			logger.Debug("reading request body", zap.String("request_id", reqID), zap.Error(err))
		}

		ev := payload.Decode(body)
		m.PayloadSize(len(body))

		logger.Info("=== RAW BODY ===",
			zap.String("request_id", reqID),
			zap.ByteString("body", body))
		logger.Info("=== PARSED JSON ===",
			zap.String("request_id", reqID),
			zap.Bool("valid", ev.OK),
			zap.Any("json", ev.Value))

		if ev.EmptyLike() {
			m.Track(metrics.OutcomeEmptyPayload)
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: models.MsgNoJSONReceived})
			return
		}

		m.Track(metrics.OutcomeAccepted)
		c.JSON(http.StatusOK, models.TrackResponse{
			Status:   models.StatusOK,
			Received: ev.Raw,
		})
	})
}
