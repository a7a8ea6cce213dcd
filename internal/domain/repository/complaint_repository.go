package repository

import (
	"context"
	"errors"

	"servicedesk/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrComplaintNotFound is returned when a complaint is not found.
	ErrComplaintNotFound = errors.New("complaint not found")
	// ErrComplaintIDTaken is returned when a complaint identifier is already in use.
	ErrComplaintIDTaken = errors.New("complaint identifier already exists")
	// ErrStatusPreconditionFailed is returned when a conditional write finds
	// the complaint in a status other than the expected one.
	ErrStatusPreconditionFailed = errors.New("complaint status changed concurrently")
)

// ComplaintRepository defines the interface for complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)

	// List returns one page of complaints matching the filter, newest first, and the total count.
	List(ctx context.Context, filter entity.ComplaintFilter) ([]*entity.Complaint, int64, error)

	// UpdatePending writes the editable fields of a complaint, only if it is still pending.
	UpdatePending(ctx context.Context, complaint *entity.Complaint) error

	// ApplyStatusChange writes a transition, only if the stored status equals change.From.
	ApplyStatusChange(ctx context.Context, id uuid.UUID, change *entity.StatusChange) error

	// DeletePending removes a complaint, only if it is still pending.
	DeletePending(ctx context.Context, id uuid.UUID) error
}
