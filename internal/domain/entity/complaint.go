package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// MaxComplaintPhotos caps the evidence photos attached to a complaint.
const MaxComplaintPhotos = 5

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusAssigned   ComplaintStatus = "assigned"
	ComplaintStatusInProgress ComplaintStatus = "in-progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
)

// legalTransitions lists the only forward moves a complaint can make.
//
//nolint:gochecknoglobals
var legalTransitions = map[ComplaintStatus]ComplaintStatus{
	ComplaintStatusPending:    ComplaintStatusAssigned,
	ComplaintStatusAssigned:   ComplaintStatusInProgress,
	ComplaintStatusInProgress: ComplaintStatusResolved,
}

// AllComplaintStatuses returns every status in lifecycle order.
func AllComplaintStatuses() []ComplaintStatus {
	return []ComplaintStatus{
		ComplaintStatusPending,
		ComplaintStatusAssigned,
		ComplaintStatusInProgress,
		ComplaintStatusResolved,
	}
}

// IsValid checks if the status is a known value.
func (s ComplaintStatus) IsValid() bool {
	return slices.Contains(AllComplaintStatuses(), s)
}

// String returns the string representation of the status.
func (s ComplaintStatus) String() string {
	return string(s)
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to ComplaintStatus) bool {
	next, ok := legalTransitions[from]

	return ok && next == to
}

// Priority is the urgency a client attaches to a complaint.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid checks if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Photo is a file held by the photo storage.
type Photo struct {
	URL          string `json:"url"`
	StorageKey   string `json:"storage_key"`
	OriginalName string `json:"original_name,omitempty"`
}

// Complaint represents a service issue raised against a store.
type Complaint struct {
	ID          uuid.UUID       `json:"id"`           // Internal key.
	ComplaintID string          `json:"complaint_id"` // Human-readable identifier, e.g. CMP-KHA-000001.
	Status      ComplaintStatus `json:"status"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"` // Store name as entered.
	Priority    Priority        `json:"priority"`
	Photos      []Photo         `json:"photos"`

	ClientID      *uuid.UUID `json:"client_id,omitempty"` // Nil when raised by a technician on behalf of a store.
	CreatedByID   uuid.UUID  `json:"created_by_id"`
	CreatedByRole Role       `json:"created_by_role"`

	AssignedTechnicianID *uuid.UUID `json:"assigned_technician_id,omitempty"`
	AssignedBy           *uuid.UUID `json:"assigned_by,omitempty"`
	AssignedAt           *time.Time `json:"assigned_at,omitempty"`

	StartedAt        *time.Time `json:"started_at,omitempty"`
	ResolutionNotes  string     `json:"resolution_notes,omitempty"`
	ResolutionPhotos []Photo    `json:"resolution_photos"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	TechnicianNotes  string     `json:"technician_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPending reports whether the complaint can still be edited or deleted.
func (c *Complaint) IsPending() bool {
	return c.Status == ComplaintStatusPending
}

// IsAssignedTo reports whether the given technician currently holds the complaint.
func (c *Complaint) IsAssignedTo(technicianID uuid.UUID) bool {
	return c.AssignedTechnicianID != nil && *c.AssignedTechnicianID == technicianID
}

// IsOwnedBy reports whether the given client owns the complaint.
func (c *Complaint) IsOwnedBy(clientID uuid.UUID) bool {
	return c.ClientID != nil && *c.ClientID == clientID
}

// VisibleTo reports whether the actor may read the complaint.
func (c *Complaint) VisibleTo(actor Actor) bool {
	switch actor.Role() {
	case RoleAdmin:
		return true
	case RoleClient:
		return c.IsOwnedBy(actor.ID())
	case RoleTechnician:
		return c.IsAssignedTo(actor.ID()) || c.CreatedByID == actor.ID()
	default:
		return false
	}
}

// StorageKeys returns the storage keys of every photo attached to the complaint.
func (c *Complaint) StorageKeys() []string {
	keys := make([]string, 0, len(c.Photos)+len(c.ResolutionPhotos))
	for _, p := range c.Photos {
		keys = append(keys, p.StorageKey)
	}
	for _, p := range c.ResolutionPhotos {
		keys = append(keys, p.StorageKey)
	}

	return keys
}

// StatusChange describes the fields written by a single lifecycle transition.
// Only the fields relevant to the target status are set.
type StatusChange struct {
	From                 ComplaintStatus
	To                   ComplaintStatus
	AssignedTechnicianID *uuid.UUID
	AssignedBy           *uuid.UUID
	TechnicianNotes      *string
	ResolutionNotes      string
	ResolutionPhotos     []Photo
	At                   time.Time
}

// ComplaintFilter narrows complaint listings.
type ComplaintFilter struct {
	ClientID             *uuid.UUID
	AssignedTechnicianID *uuid.UUID
	Status               ComplaintStatus
	Priority             Priority
	Location             string
	Search               string
	Limit                int
	Offset               int
}
