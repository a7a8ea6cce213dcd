package entity

import (
	"github.com/google/uuid"
)

// Technician is a field technician as known to the user directory.
type Technician struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	IsActive bool      `json:"is_active"`
}

// Client is a complaint owner as known to the user directory.
type Client struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email"`
}
