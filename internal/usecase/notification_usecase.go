package usecase

import (
	"context"

	"servicedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchRequest describes one message to deliver
type DispatchRequest struct {
	ComplaintID uuid.UUID
	Recipient   string // Contact number in any format; normalized before sending
	Type        entity.NotificationType
	Variables   map[string]string
}

// DispatchResult reports a single delivery attempt
type DispatchResult struct {
	Success           bool
	ExternalMessageID string
	Error             string
	Notification      *entity.Notification // Audit record, nil if it could not be persisted
}

// NotificationUsecase defines the notification dispatcher
type NotificationUsecase interface {
	// Dispatch sends the message and records the attempt. It never returns an error;
	// delivery failures are reported in the result and persisted as failed records.
	Dispatch(ctx context.Context, req *DispatchRequest) *DispatchResult

	// ListForComplaint returns the delivery history of a complaint visible to the actor
	ListForComplaint(ctx context.Context, actor entity.Actor, complaintID uuid.UUID) ([]*entity.Notification, error)
}
