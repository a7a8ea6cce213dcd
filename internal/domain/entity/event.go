package entity

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintEventType names a committed change published to downstream consumers.
type ComplaintEventType string

const (
	EventComplaintCreated  ComplaintEventType = "complaint.created"
	EventComplaintUpdated  ComplaintEventType = "complaint.updated"
	EventComplaintDeleted  ComplaintEventType = "complaint.deleted"
	EventComplaintAssigned ComplaintEventType = "complaint.assigned"
	EventComplaintStarted  ComplaintEventType = "complaint.started"
	EventComplaintResolved ComplaintEventType = "complaint.resolved"
	EventBillingCreated    ComplaintEventType = "billing.created"
	EventBillingUpdated    ComplaintEventType = "billing.updated"
)

// ComplaintEvent is published after a change has been committed.
type ComplaintEvent struct {
	Type        ComplaintEventType `json:"type"`
	RequestID   string             `json:"request_id,omitempty"`
	ID          uuid.UUID          `json:"id"`
	ComplaintID string             `json:"complaint_id"`
	Status      ComplaintStatus    `json:"status,omitempty"`
	ActorID     uuid.UUID          `json:"actor_id"`
	ActorRole   Role               `json:"actor_role"`
	OccurredAt  time.Time          `json:"occurred_at"`
}
