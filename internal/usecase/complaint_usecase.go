package usecase

import (
	"context"

	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/service"

	"github.com/google/uuid"
)

// CreateComplaintInput represents the fields a caller supplies when raising a complaint
type CreateComplaintInput struct {
	Title       string
	Description string
	Location    string
	Priority    entity.Priority
	ClientID    *uuid.UUID // Only honoured for admins raising a complaint for a client
}

// UpdateComplaintInput carries a partial edit of a pending complaint; nil fields are left untouched
type UpdateComplaintInput struct {
	Title           *string
	Description     *string
	Location        *string
	Priority        *entity.Priority
	RemovePhotoKeys []string
}

// StatusUpdateInput is a technician-driven transition request
type StatusUpdateInput struct {
	Status          entity.ComplaintStatus
	Notes           *string
	ResolutionNotes string
}

// ComplaintQuery filters complaint listings
type ComplaintQuery struct {
	Pagination
	Status   entity.ComplaintStatus
	Priority entity.Priority
	Location string
	Search   string
}

// ComplaintPage is one page of complaints
type ComplaintPage struct {
	Items []*entity.Complaint `json:"items"`
	PageInfo
}

// CreateComplaintResult is the created complaint together with the outcome of auto-assignment, if it ran
type CreateComplaintResult struct {
	Complaint      *entity.Complaint `json:"complaint"`
	AutoAssignment *AutoAssignResult `json:"auto_assignment,omitempty"`
}

// ComplaintUsecase defines the complaint lifecycle use cases
type ComplaintUsecase interface {
	// CreateComplaint validates input, uploads photos all-or-nothing, mints the identifier and stores a pending complaint
	CreateComplaint(ctx context.Context, actor entity.Actor, input *CreateComplaintInput, photos []*service.FileUpload) (*CreateComplaintResult, error)

	// GetComplaint returns a complaint visible to the actor
	GetComplaint(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Complaint, error)

	// ListComplaints returns the actor's complaints (clients) or all complaints (admins)
	ListComplaints(ctx context.Context, actor entity.Actor, query ComplaintQuery) (*ComplaintPage, error)

	// UpdateComplaint edits a pending complaint and its photos
	UpdateComplaint(ctx context.Context, actor entity.Actor, id uuid.UUID, input *UpdateComplaintInput, photos []*service.FileUpload) (*entity.Complaint, error)

	// DeleteComplaint removes a pending complaint and its photos
	DeleteComplaint(ctx context.Context, actor entity.Actor, id uuid.UUID) error

	// AssignComplaint moves a pending complaint to a technician (admin only)
	AssignComplaint(ctx context.Context, actor entity.Actor, id uuid.UUID, technicianID uuid.UUID) (*entity.Complaint, error)

	// UpdateStatus drives assigned -> in-progress -> resolved for the assigned technician
	UpdateStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, input *StatusUpdateInput, photos []*service.FileUpload) (*entity.Complaint, error)

	// ListAssigned returns complaints assigned to the calling technician
	ListAssigned(ctx context.Context, actor entity.Actor, query ComplaintQuery) (*ComplaintPage, error)
}

// IdentifierComposer mints human-readable complaint identifiers
type IdentifierComposer interface {
	// Compose returns CMP-<CODE>-<NNNNNN> for the store, allocating the next sequence value
	Compose(ctx context.Context, location string) (string, error)
}
