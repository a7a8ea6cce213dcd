package usecase

import (
	"context"

	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialInput is one material row as submitted by a technician or admin
type MaterialInput struct {
	ID         *uuid.UUID      `json:"id,omitempty"` // Set by admins to keep an existing row and its photo
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	PhotoField string          `json:"photoField,omitempty"` // Multipart field name of this row's bill photo
}

// CreateBillingInput represents a technician's billing submission
type CreateBillingInput struct {
	ComplaintID         uuid.UUID       `json:"complaintId" validate:"required"`
	IsComplaintResolved bool            `json:"isComplaintResolved"`
	MaterialsUsed       bool            `json:"materialsUsed"`
	Materials           []MaterialInput `json:"materials"`
}

// UpdateBillingInput represents an admin amendment
type UpdateBillingInput struct {
	IsComplaintResolved bool            `json:"isComplaintResolved"`
	MaterialsUsed       bool            `json:"materialsUsed"`
	Materials           []MaterialInput `json:"materials"`
}

// BillingPage is one page of billing records
type BillingPage struct {
	Items []*entity.BillingRecord `json:"items"`
	PageInfo
}

// BillingUsecase defines billing reconciliation use cases
type BillingUsecase interface {
	// CreateBilling stores the single billing record of a complaint for its assigned technician
	CreateBilling(ctx context.Context, actor entity.Actor, input *CreateBillingInput, files []*service.FileUpload) (*entity.BillingRecord, error)

	// ListBilling returns the technician's own records, or all records for admins
	ListBilling(ctx context.Context, actor entity.Actor, page Pagination) (*BillingPage, error)

	// GetBilling returns one record (admin only)
	GetBilling(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.BillingRecord, error)

	// UpdateBilling replaces the materials of a record, keeping bill photos of surviving rows (admin only)
	UpdateBilling(ctx context.Context, actor entity.Actor, id uuid.UUID, input *UpdateBillingInput) (*entity.BillingRecord, error)
}
