package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// MaterialModel is the JSON shape of one material row inside a billing record.
type MaterialModel struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	BillPhoto *PhotoModel     `json:"billPhoto,omitempty"`
}

// BillingRecordModel is the GORM-specific struct for the 'billing_records' table.
// The unique index on complaint_id enforces one record per complaint.
type BillingRecordModel struct {
	ID                  uuid.UUID                          `gorm:"type:uuid;primary_key"`
	ComplaintID         uuid.UUID                          `gorm:"type:uuid;not null;uniqueIndex:uq_billing_records_complaint"`
	TechnicianID        uuid.UUID                          `gorm:"type:uuid;not null;index"`
	IsComplaintResolved bool                               `gorm:"not null;default:false"`
	MaterialsUsed       bool                               `gorm:"not null;default:false"`
	Materials           datatypes.JSONSlice[MaterialModel] `gorm:"type:jsonb;not null;default:'[]'"`
	UpdatedByAdmin      *uuid.UUID                         `gorm:"type:uuid"`
	UpdatedByAdminAt    *time.Time
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (BillingRecordModel) TableName() string {
	return "billing_records"
}
