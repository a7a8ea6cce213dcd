package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "servicedesk/internal/delivery/context"
	"servicedesk/internal/domain/entity"
	domainerrors "servicedesk/internal/domain/errors"
	"servicedesk/internal/domain/repository"
	"servicedesk/internal/domain/service"
	"servicedesk/internal/usecase"
	"servicedesk/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	errInvalidRecipient = "recipient has no valid 10-digit contact number"
	errChannelRejected  = "messaging channel did not accept the message"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	complaintRepo    repository.ComplaintRepository
	channel          service.MessagingChannel
	metrics          service.Metrics
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	ComplaintRepo    repository.ComplaintRepository
	Channel          service.MessagingChannel
	Metrics          service.Metrics
	Logger           *slog.Logger
}

// NewNotificationService creates the notification dispatcher.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		complaintRepo:    params.ComplaintRepo,
		channel:          params.Channel,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Dispatch sends one message and records the attempt, whatever the outcome.
func (s *notificationService) Dispatch(ctx context.Context, req *usecase.DispatchRequest) *usecase.DispatchResult {
	recipient := util.NormalizeLocalNumber(req.Recipient)
	notification := &entity.Notification{
		ID:          uuid.New(),
		ComplaintID: req.ComplaintID,
		Recipient:   recipient,
		Type:        req.Type,
		Message:     renderMessage(req.Type, req.Variables),
		Status:      entity.NotificationStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if recipient == "" {
		notification.Recipient = req.Recipient
	}

	s.send(ctx, notification, recipient, req.Variables)

	result := &usecase.DispatchResult{
		Success:           notification.Status == entity.NotificationStatusSent,
		ExternalMessageID: notification.ExternalMessageID,
		Error:             notification.Error,
	}

	// The attempt is recorded even when the send failed; losing the record is only logged.
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.log(ctx).Error("Failed to record notification attempt",
			slog.String("complaint_id", req.ComplaintID.String()),
			slog.String("type", string(req.Type)),
			slog.String("status", string(notification.Status)),
			slog.Any("error", err),
		)
	} else {
		result.Notification = notification
	}

	if s.metrics != nil {
		s.metrics.NotificationDispatched(string(req.Type), string(notification.Status))
	}

	return result
}

func (s *notificationService) send(ctx context.Context, notification *entity.Notification, recipient string, vars map[string]string) {
	if recipient == "" {
		notification.Status = entity.NotificationStatusFailed
		notification.Error = errInvalidRecipient

		return
	}

	sendResult, err := s.channel.Send(ctx, &service.OutboundMessage{
		Recipient: recipient,
		Kind:      string(notification.Type),
		Body:      notification.Message,
		Variables: vars,
	})

	switch {
	case err != nil:
		notification.Status = entity.NotificationStatusFailed
		notification.Error = err.Error()
		s.log(ctx).Warn("Notification dispatch failed",
			slog.String("channel", s.channel.Name()),
			slog.String("type", string(notification.Type)),
			slog.Any("error", err),
		)
	case sendResult == nil || !sendResult.Success:
		notification.Status = entity.NotificationStatusFailed
		notification.Error = errChannelRejected
	default:
		sentAt := time.Now().UTC()
		notification.Status = entity.NotificationStatusSent
		notification.ExternalMessageID = sendResult.ExternalMessageID
		notification.SentAt = &sentAt
	}
}

// ListForComplaint returns the delivery history of a complaint visible to the actor.
func (s *notificationService) ListForComplaint(ctx context.Context, actor entity.Actor, complaintID uuid.UUID) ([]*entity.Notification, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to load complaint")
	}
	if !complaint.VisibleTo(actor) {
		return nil, domainerrors.ErrComplaintNotFound
	}

	notifications, err := s.notificationRepo.ListByComplaint(ctx, complaintID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}
