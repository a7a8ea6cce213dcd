package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "servicedesk/internal/delivery/context"
	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/repository"
	"servicedesk/internal/domain/service"
	"servicedesk/internal/usecase"

	"github.com/google/uuid"
)

// lifecycleEffects runs the side effects that follow a committed write:
// notifications, published events and metrics. None of them can fail the
// write that triggered them.
type lifecycleEffects struct {
	notifier      usecase.NotificationUsecase
	directoryRepo repository.DirectoryRepository
	publisher     service.EventPublisher
	metrics       service.Metrics
	logger        *slog.Logger
}

func newLifecycleEffects(
	notifier usecase.NotificationUsecase,
	directoryRepo repository.DirectoryRepository,
	publisher service.EventPublisher,
	metrics service.Metrics,
	logger *slog.Logger,
) *lifecycleEffects {
	return &lifecycleEffects{
		notifier:      notifier,
		directoryRepo: directoryRepo,
		publisher:     publisher,
		metrics:       metrics,
		logger:        logger,
	}
}

func (e *lifecycleEffects) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

// notify dispatches on a context detached from request cancellation.
func (e *lifecycleEffects) notify(ctx context.Context, req *usecase.DispatchRequest) {
	result := e.notifier.Dispatch(context.WithoutCancel(ctx), req)
	if !result.Success {
		e.log(ctx).Warn("Notification not delivered",
			slog.String("complaint_id", req.ComplaintID.String()),
			slog.String("type", string(req.Type)),
			slog.String("error", result.Error),
		)
	}
}

// notifyTechnician sends the assignment message to the technician's phone.
func (e *lifecycleEffects) notifyTechnician(ctx context.Context, complaint *entity.Complaint, technician *entity.Technician) {
	e.notify(ctx, &usecase.DispatchRequest{
		ComplaintID: complaint.ID,
		Recipient:   technician.Phone,
		Type:        entity.NotificationTypeAssignment,
		Variables: map[string]string{
			varComplaintID:    complaint.ComplaintID,
			varTitle:          complaint.Title,
			varLocation:       complaint.Location,
			varTechnicianName: technician.Name,
		},
	})
}

// notifyClient sends a status update to the owning client. The attempt is
// dispatched even when no client phone resolves, so it is still recorded as failed.
func (e *lifecycleEffects) notifyClient(ctx context.Context, complaint *entity.Complaint) {
	ctx = context.WithoutCancel(ctx)

	recipient := ""
	switch {
	case complaint.ClientID == nil:
		e.log(ctx).Debug("Complaint has no client, status notification has no recipient",
			slog.String("complaint_id", complaint.ComplaintID),
		)
	default:
		client, err := e.directoryRepo.FindClientByID(ctx, *complaint.ClientID)
		if err != nil {
			e.log(ctx).Warn("Cannot resolve client for status notification",
				slog.String("complaint_id", complaint.ComplaintID),
				slog.Any("error", err),
			)
		} else {
			recipient = client.Phone
		}
	}

	e.notify(ctx, &usecase.DispatchRequest{
		ComplaintID: complaint.ID,
		Recipient:   recipient,
		Type:        entity.NotificationTypeStatusUpdate,
		Variables: map[string]string{
			varComplaintID: complaint.ComplaintID,
			varTitle:       complaint.Title,
			varLocation:    complaint.Location,
			varStatus:      string(complaint.Status),
		},
	})
}

// publish emits a complaint event; failures are logged.
func (e *lifecycleEffects) publish(ctx context.Context, eventType entity.ComplaintEventType, id uuid.UUID, complaintID string, status entity.ComplaintStatus, actor entity.Actor) {
	if e.publisher == nil {
		return
	}

	event := &entity.ComplaintEvent{
		Type:        eventType,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		ID:          id,
		ComplaintID: complaintID,
		Status:      status,
		ActorID:     actor.ID(),
		ActorRole:   actor.Role(),
		OccurredAt:  time.Now().UTC(),
	}
	if err := e.publisher.PublishComplaintEvent(context.WithoutCancel(ctx), event); err != nil {
		e.log(ctx).Warn("Failed to publish complaint event",
			slog.String("event", string(eventType)),
			slog.String("complaint_id", complaintID),
			slog.Any("error", err),
		)
	}
}

func (e *lifecycleEffects) complaintEvent(ctx context.Context, eventType entity.ComplaintEventType, complaint *entity.Complaint, actor entity.Actor) {
	e.publish(ctx, eventType, complaint.ID, complaint.ComplaintID, complaint.Status, actor)
}

// transitioned records a committed status change.
func (e *lifecycleEffects) transitioned(ctx context.Context, complaint *entity.Complaint, change *entity.StatusChange, actor entity.Actor) {
	if e.metrics != nil {
		e.metrics.StatusChanged(string(change.From), string(change.To))
	}
	e.complaintEvent(ctx, transitionEvents[change.To], complaint, actor)
}

//nolint:gochecknoglobals
var transitionEvents = map[entity.ComplaintStatus]entity.ComplaintEventType{
	entity.ComplaintStatusAssigned:   entity.EventComplaintAssigned,
	entity.ComplaintStatusInProgress: entity.EventComplaintStarted,
	entity.ComplaintStatusResolved:   entity.EventComplaintResolved,
}
