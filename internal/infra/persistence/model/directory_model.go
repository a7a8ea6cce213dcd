package model

import (
	"github.com/google/uuid"
)

// TechnicianModel is the GORM-specific struct for the 'technicians' table.
// Rows are owned by the user directory; this service only reads them.
type TechnicianModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Phone    string    `gorm:"type:varchar(32);not null;index"`
	IsActive bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (TechnicianModel) TableName() string {
	return "technicians"
}

// ClientModel is the GORM-specific struct for the 'clients' table.
type ClientModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Phone string    `gorm:"type:varchar(32)"`
	Email string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}

// All returns every model owned by this service, in migration order.
func All() []any {
	return []any{
		&SequenceCounterModel{},
		&ComplaintModel{},
		&NotificationModel{},
		&BillingRecordModel{},
	}
}
