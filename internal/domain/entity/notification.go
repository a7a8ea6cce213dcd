package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies the template a notification was rendered from.
type NotificationType string

const (
	NotificationTypeAssignment   NotificationType = "assignment"
	NotificationTypeStatusUpdate NotificationType = "status_update"
	NotificationTypeCompletion   NotificationType = "completion"
)

// IsValid checks if the type is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeAssignment, NotificationTypeStatusUpdate, NotificationTypeCompletion:
		return true
	default:
		return false
	}
}

// NotificationStatus is the outcome of a dispatch attempt.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification is the audit record of one attempt to deliver a message.
// Records are written once and never updated; a retry creates a new record.
type Notification struct {
	ID                uuid.UUID          `json:"id"`
	ComplaintID       uuid.UUID          `json:"complaint_id"`
	Recipient         string             `json:"recipient"` // Normalized 10-digit contact number.
	Type              NotificationType   `json:"type"`
	Message           string             `json:"message"`
	Status            NotificationStatus `json:"status"`
	ExternalMessageID string             `json:"external_message_id,omitempty"` // Provider message ID on success.
	Error             string             `json:"error,omitempty"`
	SentAt            *time.Time         `json:"sent_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}
