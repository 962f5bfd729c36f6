package service

import (
	"context"

	"ecospot/internal/domain/entity"
)

// LocationChangedMessage is the envelope published for the proximity worker.
type LocationChangedMessage struct {
	RequestID string                       `json:"request_id,omitempty"` // For distributed tracing
	Event     *entity.LocationChangedEvent `json:"event"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLocationChanged publishes a location change for async processing
	PublishLocationChanged(ctx context.Context, msg *LocationChangedMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
