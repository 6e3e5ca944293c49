package constants

// Redis key formats
const (
	// Location tracking
	KeyActor          = "actor:%s"             // Format: actor:{actor_id}
	KeyActorGeo       = "actors:geo:%s"        // Format: actors:geo:{role}, GEO set of last known positions
	KeyActorGeoOnline = "actors:geo:%s:online" // Format: actors:geo:{role}:online, subset of reachable actors
	KeyEpisode        = "emergency:ride:%s"    // Format: emergency:ride:{ride_id}
)

// Redis hash fields of an actor
const (
	FieldRole          = "role"
	FieldLatitude      = "lat"
	FieldLongitude     = "lng"
	FieldCapturedAt    = "ts"
	FieldPrevLatitude  = "prev_lat"
	FieldPrevLongitude = "prev_lng"
	FieldPrevCaptured  = "prev_ts"
	FieldBearing       = "bearing"
	FieldSpeed         = "speed"
	FieldUpdatedAt     = "updated_at"
	FieldMeta          = "meta"
	FieldOnline        = "online"
	FieldPushToken     = "push_token"
)

// Redis hash fields of an emergency episode
const (
	FieldDriverID           = "driver_id"
	FieldEmergencyType      = "emergency_type"
	FieldStatus             = "status"
	FieldStartedAt          = "started_at"
	FieldEndedAt            = "ended_at"
	FieldLastNotificationAt = "last_notification_at"
)
