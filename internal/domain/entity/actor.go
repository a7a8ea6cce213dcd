package entity

import (
	"github.com/google/uuid"
)

// Actor is the authenticated party performing a request.
// The zero value is not a valid actor; build one with NewClientActor,
// NewTechnicianActor or NewAdminActor.
type Actor struct {
	id   uuid.UUID
	role Role
}

// NewClientActor returns an actor acting as the given client.
func NewClientActor(id uuid.UUID) Actor {
	return Actor{id: id, role: RoleClient}
}

// NewTechnicianActor returns an actor acting as the given technician.
func NewTechnicianActor(id uuid.UUID) Actor {
	return Actor{id: id, role: RoleTechnician}
}

// NewAdminActor returns an actor acting as the given administrator.
func NewAdminActor(id uuid.UUID) Actor {
	return Actor{id: id, role: RoleAdmin}
}

// ActorFor builds an actor from a role string, reporting false for unknown roles or a nil id.
func ActorFor(role Role, id uuid.UUID) (Actor, bool) {
	if id == uuid.Nil {
		return Actor{}, false
	}

	switch role {
	case RoleClient:
		return NewClientActor(id), true
	case RoleTechnician:
		return NewTechnicianActor(id), true
	case RoleAdmin:
		return NewAdminActor(id), true
	default:
		return Actor{}, false
	}
}

// ID returns the acting party's identifier.
func (a Actor) ID() uuid.UUID { return a.id }

// Role returns the acting party's role.
func (a Actor) Role() Role { return a.role }

func (a Actor) IsClient() bool     { return a.role == RoleClient }
func (a Actor) IsTechnician() bool { return a.role == RoleTechnician }
func (a Actor) IsAdmin() bool      { return a.role == RoleAdmin }

// IsValid reports whether the actor was built through one of the constructors.
func (a Actor) IsValid() bool {
	return a.id != uuid.Nil && a.role.IsValid()
}
