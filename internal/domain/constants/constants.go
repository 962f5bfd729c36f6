// Package constants holds identifiers shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
	PubSubProviderNoop   = "noop"
)

// Change bus providers.
const (
	ChangeBusProviderMemory = "memory"
	ChangeBusProviderRedis  = "redis"
)

// Live feed topics.
const (
	TopicSpots = "spots"
)

// SpotTopic is the change topic of a single spot.
func SpotTopic(spotID string) string {
	return "spot:" + spotID
}

// SpotCommentsTopic is the change topic of a spot's comments.
func SpotCommentsTopic(spotID string) string {
	return "spot:" + spotID + ":comments"
}

// UserRatingTopic is the change topic of a user's rating of a spot.
func UserRatingTopic(userID, spotID string) string {
	return "user:" + userID + ":rating:" + spotID
}

// Pub/Sub attribute and event names.
const (
	EventTypeLocationChanged = "user.location.changed"
	AttributeEventType       = "event_type"
	AttributeUserID          = "user_id"
	AttributeRequestID       = "request_id"
	AttributeVersion         = "location_version"
)
