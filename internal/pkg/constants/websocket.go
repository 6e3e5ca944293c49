package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Location events
	EventLocationUpdate = "location_update"
	EventLocationAck    = "location_ack"
	EventPresenceUpdate = "presence_update"

	// Emergency events
	EventEmergencyAlert = "emergency_alert"
)

// WebSocket error codes
const (
	ErrorInvalidFormat     = "invalid_format"
	ErrorInvalidLocation   = "invalid_location"
	ErrorRateLimitExceeded = "rate_limit_exceeded"
	ErrorInternalError     = "internal_error"
)
