package models

import "encoding/json"

// Fixed response values for POST /track.
const (
	StatusOK               = "ok"
	MsgUnauthorized        = "Unauthorized"
	MsgNoJSONReceived      = "No JSON received"
	MsgInternalServerError = "Internal Server Error"
	HealthResponseBody     = "API OK"
)

// TrackResponse is returned by POST /track on success.
// Received is the payload exactly as sent, so key order is preserved.
type TrackResponse struct {
	Status   string          `json:"status"`
	Received json.RawMessage `json:"received"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
