package impl

import (
	"context"
	"log/slog"

	"servicedesk/config"
	deliverycontext "servicedesk/internal/delivery/context"
	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/repository"
	"servicedesk/internal/domain/service"
	"servicedesk/internal/usecase"
	"servicedesk/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type autoAssignmentPolicy struct {
	defaultTechnicianPhone string
	directoryRepo          repository.DirectoryRepository
	transitions            *transitioner
	logger                 *slog.Logger
}

// AutoAssignmentPolicyParams holds dependencies for the auto-assignment policy, injected by Fx.
type AutoAssignmentPolicyParams struct {
	fx.In

	ComplaintRepo repository.ComplaintRepository
	DirectoryRepo repository.DirectoryRepository
	Notifier      usecase.NotificationUsecase
	Publisher     service.EventPublisher
	Metrics       service.Metrics
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAutoAssignmentPolicy creates the policy with the configured default technician phone.
func NewAutoAssignmentPolicy(params AutoAssignmentPolicyParams) usecase.AutoAssignmentPolicy {
	return &autoAssignmentPolicy{
		defaultTechnicianPhone: params.Config.AutoAssign.DefaultTechnicianPhone,
		directoryRepo:          params.DirectoryRepo,
		transitions: &transitioner{
			complaintRepo: params.ComplaintRepo,
			effects:       newLifecycleEffects(params.Notifier, params.DirectoryRepo, params.Publisher, params.Metrics, params.Logger),
		},
		logger: params.Logger,
	}
}

func (p *autoAssignmentPolicy) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// Apply assigns the complaint to the default technician when possible.
func (p *autoAssignmentPolicy) Apply(ctx context.Context, complaint *entity.Complaint, triggeredBy entity.Actor) *usecase.AutoAssignResult {
	if complaint.AssignedTechnicianID != nil || !complaint.IsPending() {
		return &usecase.AutoAssignResult{Reason: usecase.AutoAssignReasonAlreadyAssigned}
	}

	phone := util.NormalizeLocalNumber(p.defaultTechnicianPhone)
	if phone == "" {
		p.log(ctx).Info("Auto-assignment skipped: no default technician phone configured",
			slog.String("complaint_id", complaint.ComplaintID),
		)

		return &usecase.AutoAssignResult{Reason: usecase.AutoAssignReasonMissingDefaultPhone}
	}

	technician, err := p.directoryRepo.FindActiveTechnicianByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrTechnicianNotFound) {
			p.log(ctx).Warn("Auto-assignment skipped: default technician not found",
				slog.String("complaint_id", complaint.ComplaintID),
			)

			return &usecase.AutoAssignResult{Reason: usecase.AutoAssignReasonTechnicianNotFound}
		}

		p.log(ctx).Error("Auto-assignment failed to look up default technician",
			slog.String("complaint_id", complaint.ComplaintID),
			slog.Any("error", err),
		)

		return &usecase.AutoAssignResult{Reason: usecase.AutoAssignReasonAssignmentFailed}
	}

	assigned, err := p.transitions.assign(ctx, complaint, technician, triggeredBy)
	if err != nil {
		p.log(ctx).Error("Auto-assignment failed",
			slog.String("complaint_id", complaint.ComplaintID),
			slog.String("technician_id", technician.ID.String()),
			slog.Any("error", err),
		)

		return &usecase.AutoAssignResult{Reason: usecase.AutoAssignReasonAssignmentFailed}
	}

	technicianID := technician.ID
	p.log(ctx).Info("Complaint auto-assigned",
		slog.String("complaint_id", complaint.ComplaintID),
		slog.String("technician_id", technicianID.String()),
	)

	return &usecase.AutoAssignResult{
		Assigned:     true,
		Reason:       usecase.AutoAssignReasonAssigned,
		TechnicianID: &technicianID,
		Complaint:    assigned,
	}
}
