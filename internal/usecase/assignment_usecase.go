package usecase

import (
	"context"

	"servicedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// AutoAssignReason explains the outcome of the auto-assignment policy
type AutoAssignReason string

const (
	AutoAssignReasonAssigned            AutoAssignReason = "assigned"
	AutoAssignReasonAlreadyAssigned     AutoAssignReason = "already_assigned"
	AutoAssignReasonMissingDefaultPhone AutoAssignReason = "missing_default_phone"
	AutoAssignReasonTechnicianNotFound  AutoAssignReason = "technician_not_found"
	AutoAssignReasonAssignmentFailed    AutoAssignReason = "assignment_failed"
)

// AutoAssignResult reports what the policy did
type AutoAssignResult struct {
	Assigned     bool              `json:"assigned"`
	Reason       AutoAssignReason  `json:"reason"`
	TechnicianID *uuid.UUID        `json:"technician_id,omitempty"`
	Complaint    *entity.Complaint `json:"-"` // Post-assignment state when Assigned is true
}

// AutoAssignmentPolicy routes unattended complaints to the configured default technician
type AutoAssignmentPolicy interface {
	// Apply never fails; every outcome is reported through the result
	Apply(ctx context.Context, complaint *entity.Complaint, triggeredBy entity.Actor) *AutoAssignResult
}
