// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"servicedesk/internal/domain/entity"
	domainerrors "servicedesk/internal/domain/errors"
	"servicedesk/internal/domain/repository"
	"servicedesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a single delivery attempt.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrComplaintNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByComplaint retrieves the delivery history of a complaint, newest first.
func (repo *notificationRepository) ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("complaint_id = ?", complaintID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by complaint")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// Mapper functions

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:                data.ID,
		ComplaintID:       data.ComplaintID,
		Recipient:         data.Recipient,
		Type:              entity.NotificationType(data.Type),
		Message:           data.Message,
		Status:            entity.NotificationStatus(data.Status),
		ExternalMessageID: data.ExternalMessageID,
		Error:             data.ErrorMessage,
		SentAt:            utcPtr(data.SentAt),
		CreatedAt:         data.CreatedAt.UTC(),
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:                data.ID,
		ComplaintID:       data.ComplaintID,
		Recipient:         data.Recipient,
		Type:              string(data.Type),
		Message:           data.Message,
		Status:            string(data.Status),
		ExternalMessageID: data.ExternalMessageID,
		ErrorMessage:      data.Error,
		SentAt:            data.SentAt,
		CreatedAt:         data.CreatedAt,
	}
}
