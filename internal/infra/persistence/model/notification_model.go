package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'complaint_notifications' table.
// It represents a single delivery attempt of an assignment or status message.
type NotificationModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	ComplaintID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Recipient         string    `gorm:"type:varchar(32);not null"`
	Type              string    `gorm:"type:varchar(20);not null"`
	Message           string    `gorm:"type:text;not null"`
	Status            string    `gorm:"type:varchar(10);not null;default:'pending'"`
	ExternalMessageID string    `gorm:"type:text"`
	ErrorMessage      string    `gorm:"type:text"`
	SentAt            *time.Time
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "complaint_notifications"
}
