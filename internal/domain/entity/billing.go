package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material is one line of a billing record.
type Material struct {
	ID        uuid.UUID       `json:"id"` // Stable per-row identifier, used to keep bill photos across edits.
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	BillPhoto *Photo          `json:"bill_photo,omitempty"`
}

// LineTotal returns quantity multiplied by unit price.
func (m Material) LineTotal() decimal.Decimal {
	return m.Quantity.Mul(m.Price)
}

// BillingRecord is the single reconciliation document attached to a complaint.
type BillingRecord struct {
	ID                  uuid.UUID  `json:"id"`
	ComplaintID         uuid.UUID  `json:"complaint_id"`
	TechnicianID        uuid.UUID  `json:"technician_id"`
	IsComplaintResolved bool       `json:"is_complaint_resolved"` // Technician's self-report.
	MaterialsUsed       bool       `json:"materials_used"`
	Materials           []Material `json:"materials"`
	UpdatedByAdmin      *uuid.UUID `json:"updated_by_admin,omitempty"`
	UpdatedByAdminAt    *time.Time `json:"updated_by_admin_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Total sums the line totals of every material.
func (b *BillingRecord) Total() decimal.Decimal {
	total := decimal.Zero
	for _, m := range b.Materials {
		total = total.Add(m.LineTotal())
	}

	return total
}

// PhotoKeys returns the storage keys of every bill photo on the record.
func (b *BillingRecord) PhotoKeys() []string {
	var keys []string
	for _, m := range b.Materials {
		if m.BillPhoto != nil {
			keys = append(keys, m.BillPhoto.StorageKey)
		}
	}

	return keys
}

// BillingFilter narrows billing listings.
type BillingFilter struct {
	TechnicianID *uuid.UUID
	Limit        int
	Offset       int
}
