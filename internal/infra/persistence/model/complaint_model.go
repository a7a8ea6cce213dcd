package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PhotoModel is the JSON shape of a stored photo inside a complaint row.
type PhotoModel struct {
	URL          string `json:"url"`
	StorageKey   string `json:"storageKey"`
	OriginalName string `json:"originalName,omitempty"`
}

// ComplaintModel is the GORM-specific struct for the 'complaints' table.
type ComplaintModel struct {
	ID          uuid.UUID                       `gorm:"type:uuid;primary_key"`
	ComplaintID string                          `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status      string                          `gorm:"type:varchar(20);not null;index;default:'pending'"`
	Title       string                          `gorm:"type:text;not null"`
	Description string                          `gorm:"type:text;not null"`
	Location    string                          `gorm:"type:text;not null;index"`
	Priority    string                          `gorm:"type:varchar(10);not null;default:'medium'"`
	Photos      datatypes.JSONSlice[PhotoModel] `gorm:"type:jsonb;not null;default:'[]'"`

	ClientID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedByID   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedByRole string     `gorm:"type:varchar(20);not null"`

	AssignedTechnicianID *uuid.UUID `gorm:"type:uuid;index"`
	AssignedBy           *uuid.UUID `gorm:"type:uuid"`
	AssignedAt           *time.Time

	StartedAt        *time.Time
	ResolutionNotes  string                          `gorm:"type:text"`
	ResolutionPhotos datatypes.JSONSlice[PhotoModel] `gorm:"type:jsonb;not null;default:'[]'"`
	ResolvedAt       *time.Time
	CompletedAt      *time.Time
	TechnicianNotes  string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplaintModel) TableName() string {
	return "complaints"
}

// SequenceCounterModel is the GORM-specific struct for the 'sequence_counters' table.
// Each row holds the last value handed out for one keyed series.
type SequenceCounterModel struct {
	SeriesKey string `gorm:"type:varchar(32);primary_key"`
	Seq       int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SequenceCounterModel) TableName() string {
	return "sequence_counters"
}
