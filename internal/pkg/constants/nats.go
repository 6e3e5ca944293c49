package constants

// NATS Subjects
const (
	// Location
	SubjectLocationUpdate = "location.update"

	// Ride lifecycle, emergency rides only
	SubjectRideEmergencyStarted = "ride.emergency.started"
	SubjectRideEmergencyEnded   = "ride.emergency.ended"

	// Push delivery, request/reply
	SubjectNotificationPush = "notification.push"
)

// NATS queue groups
const (
	QueueEmergencyService = "emergency-service"
)

// NSQ topics
const (
	TopicLoyaltyEmergencyAssist = "loyalty.emergency_assist"
)
