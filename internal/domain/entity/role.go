// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an acting party can have in the system.
type Role string

const (
	// RoleClient indicates a client who raises complaints.
	RoleClient Role = "client"
	// RoleTechnician indicates a field technician who works on complaints.
	RoleTechnician Role = "technician"
	// RoleAdmin indicates a back-office administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleTechnician, RoleAdmin:
		return true
	default:
		return false
	}
}
