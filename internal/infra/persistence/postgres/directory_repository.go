package postgres

import (
	"context"

	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/repository"
	"servicedesk/internal/infra/persistence/model"
	"servicedesk/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// directoryRepository reads technicians and clients from the user directory tables.
type directoryRepository struct {
	db *gorm.DB
}

// NewDirectoryRepository is the constructor for directoryRepository.
func NewDirectoryRepository(db *gorm.DB) repository.DirectoryRepository {
	return &directoryRepository{db: db}
}

// FindTechnicianByID retrieves a technician, active or not.
func (repo *directoryRepository) FindTechnicianByID(ctx context.Context, id uuid.UUID) (*entity.Technician, error) {
	var technicianM model.TechnicianModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&technicianM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTechnicianNotFound
		}

		return nil, errors.Wrap(err, "failed to find technician by ID")
	}

	return toTechnicianDomain(&technicianM), nil
}

// FindActiveTechnicianByPhone matches stored numbers on their last ten digits,
// so "+91 98765-43210" and "9876543210" are the same technician.
func (repo *directoryRepository) FindActiveTechnicianByPhone(ctx context.Context, phone string) (*entity.Technician, error) {
	normalized := util.NormalizeLocalNumber(phone)
	if normalized == "" {
		return nil, repository.ErrTechnicianNotFound
	}

	var technicianM model.TechnicianModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(`RIGHT(REGEXP_REPLACE(phone, '\D', '', 'g'), ?) = ?`, util.LocalNumberLength, normalized).
		Order("id").
		First(&technicianM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTechnicianNotFound
		}

		return nil, errors.Wrap(err, "failed to find technician by phone")
	}

	return toTechnicianDomain(&technicianM), nil
}

// FindClientByID retrieves a client.
func (repo *directoryRepository) FindClientByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return &entity.Client{
		ID:    clientM.ID,
		Name:  clientM.Name,
		Phone: clientM.Phone,
		Email: clientM.Email,
	}, nil
}

func toTechnicianDomain(data *model.TechnicianModel) *entity.Technician {
	return &entity.Technician{
		ID:       data.ID,
		Name:     data.Name,
		Phone:    data.Phone,
		IsActive: data.IsActive,
	}
}
