package repository

import (
	"context"
	"errors"

	"servicedesk/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrBillingRecordNotFound is returned when a billing record is not found.
	ErrBillingRecordNotFound = errors.New("billing record not found")
	// ErrBillingRecordExists is returned when a complaint already has a billing record.
	ErrBillingRecordExists = errors.New("billing record already exists for complaint")
)

// BillingRepository defines the interface for billing record persistence.
type BillingRepository interface {
	Create(ctx context.Context, record *entity.BillingRecord) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.BillingRecord, error)

	// FindByIDForUpdate loads a record and locks it until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.BillingRecord, error)

	ExistsForComplaint(ctx context.Context, complaintID uuid.UUID) (bool, error)

	// List returns one page of records, newest submission first, and the total count.
	List(ctx context.Context, filter entity.BillingFilter) ([]*entity.BillingRecord, int64, error)

	Update(ctx context.Context, record *entity.BillingRecord) error
}
