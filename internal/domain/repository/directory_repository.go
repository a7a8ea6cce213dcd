package repository

import (
	"context"
	"errors"

	"servicedesk/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrTechnicianNotFound is returned when no matching technician exists.
	ErrTechnicianNotFound = errors.New("technician not found")
	// ErrClientNotFound is returned when no matching client exists.
	ErrClientNotFound = errors.New("client not found")
)

// DirectoryRepository reads technicians and clients owned by the user directory.
type DirectoryRepository interface {
	FindTechnicianByID(ctx context.Context, id uuid.UUID) (*entity.Technician, error)

	// FindActiveTechnicianByPhone matches on the normalized 10-digit number.
	FindActiveTechnicianByPhone(ctx context.Context, phone string) (*entity.Technician, error)

	FindClientByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
}
