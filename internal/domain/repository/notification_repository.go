package repository

import (
	"context"

	"servicedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines the interface for the notification audit trail.
type NotificationRepository interface {
	// Create persists a single dispatch attempt.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByComplaint returns every attempt recorded for a complaint, newest first.
	ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]*entity.Notification, error)
}
