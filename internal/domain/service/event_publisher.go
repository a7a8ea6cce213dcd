package service

import (
	"context"

	"servicedesk/internal/domain/entity"
)

// EventPublisher defines the interface for publishing committed changes to a message queue.
type EventPublisher interface {
	// PublishComplaintEvent publishes a lifecycle event for downstream consumers.
	PublishComplaintEvent(ctx context.Context, event *entity.ComplaintEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
