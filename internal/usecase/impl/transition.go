package impl

import (
	"context"
	"time"

	"servicedesk/internal/domain/entity"
	domainerrors "servicedesk/internal/domain/errors"
	"servicedesk/internal/domain/repository"

	"github.com/pkg/errors"
)

// transitioner commits status changes with a conditional write on the expected current status.
type transitioner struct {
	complaintRepo repository.ComplaintRepository
	effects       *lifecycleEffects
}

// commit writes change and returns the complaint as it now stands.
// A lost race surfaces as an invalid-transition conflict naming the status found.
func (t *transitioner) commit(ctx context.Context, complaint *entity.Complaint, change *entity.StatusChange) (*entity.Complaint, error) {
	if err := t.complaintRepo.ApplyStatusChange(ctx, complaint.ID, change); err != nil {
		switch {
		case errors.Is(err, repository.ErrStatusPreconditionFailed):
			return nil, t.raceConflict(ctx, complaint, change.To)
		case errors.Is(err, repository.ErrComplaintNotFound):
			return nil, domainerrors.ErrComplaintNotFound
		default:
			return nil, errors.Wrapf(err, "failed to move complaint %s to %s", complaint.ComplaintID, change.To)
		}
	}

	return applyStatusChange(complaint, change), nil
}

// assign moves a pending complaint to the technician and notifies them.
func (t *transitioner) assign(ctx context.Context, complaint *entity.Complaint, technician *entity.Technician, by entity.Actor) (*entity.Complaint, error) {
	if !entity.CanTransition(complaint.Status, entity.ComplaintStatusAssigned) {
		return nil, domainerrors.NewInvalidTransitionError(string(complaint.Status), string(entity.ComplaintStatusAssigned))
	}

	technicianID := technician.ID
	assignedBy := by.ID()
	change := &entity.StatusChange{
		From:                 complaint.Status,
		To:                   entity.ComplaintStatusAssigned,
		AssignedTechnicianID: &technicianID,
		AssignedBy:           &assignedBy,
		At:                   time.Now().UTC(),
	}

	assigned, err := t.commit(ctx, complaint, change)
	if err != nil {
		return nil, err
	}

	t.effects.transitioned(ctx, assigned, change, by)
	t.effects.notifyTechnician(ctx, assigned, technician)

	return assigned, nil
}

func (t *transitioner) raceConflict(ctx context.Context, complaint *entity.Complaint, requested entity.ComplaintStatus) error {
	current, err := t.complaintRepo.FindByID(ctx, complaint.ID)
	if err != nil {
		return domainerrors.ErrInvalidTransition.WithMessagef("complaint %s changed concurrently; cannot move to %q", complaint.ComplaintID, requested)
	}

	return domainerrors.NewInvalidTransitionError(string(current.Status), string(requested))
}

// applyStatusChange returns a copy of complaint with change applied.
func applyStatusChange(complaint *entity.Complaint, change *entity.StatusChange) *entity.Complaint {
	updated := *complaint
	at := change.At
	updated.Status = change.To
	updated.UpdatedAt = at

	if change.TechnicianNotes != nil {
		updated.TechnicianNotes = *change.TechnicianNotes
	}

	switch change.To {
	case entity.ComplaintStatusAssigned:
		updated.AssignedTechnicianID = change.AssignedTechnicianID
		updated.AssignedBy = change.AssignedBy
		updated.AssignedAt = &at
	case entity.ComplaintStatusInProgress:
		updated.StartedAt = &at
	case entity.ComplaintStatusResolved:
		updated.ResolutionNotes = change.ResolutionNotes
		updated.ResolutionPhotos = change.ResolutionPhotos
		updated.ResolvedAt = &at
		updated.CompletedAt = &at
	}

	return &updated
}
