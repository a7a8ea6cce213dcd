package postgres

import (
	"context"

	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/repository"
	"servicedesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const billingComplaintUniqueIndex = "uq_billing_records_complaint"

// billingRepository implements the repository.BillingRepository interface.
type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository is the constructor for billingRepository.
func NewBillingRepository(db *gorm.DB) repository.BillingRepository {
	return &billingRepository{db: db}
}

// Create persists a new billing record. The unique index on complaint_id
// rejects a second record for the same complaint.
func (repo *billingRepository) Create(ctx context.Context, record *entity.BillingRecord) error {
	recordM := fromBillingDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueViolationOn(err, billingComplaintUniqueIndex) || isUniqueConstraintViolation(err) {
			return repository.ErrBillingRecordExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrComplaintNotFound
		}

		return errors.Wrap(err, "failed to create billing record")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindByID retrieves a billing record by ID.
func (repo *billingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BillingRecord, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a billing record and holds a row lock until the transaction ends.
func (repo *billingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.BillingRecord, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *billingRepository) find(db *gorm.DB, id uuid.UUID) (*entity.BillingRecord, error) {
	var recordM model.BillingRecordModel

	if err := db.Where("id = ?", id).First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBillingRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find billing record by ID")
	}

	return toBillingDomain(&recordM), nil
}

// ExistsForComplaint reports whether the complaint already has a billing record.
func (repo *billingRepository) ExistsForComplaint(ctx context.Context, complaintID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BillingRecordModel{}).
		Where("complaint_id = ?", complaintID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check billing record existence")
	}

	return count > 0, nil
}

// List returns one page of billing records, newest submission first.
func (repo *billingRepository) List(ctx context.Context, filter entity.BillingFilter) ([]*entity.BillingRecord, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BillingRecordModel{})
	if filter.TechnicianID != nil {
		query = query.Where("technician_id = ?", *filter.TechnicianID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count billing records")
	}

	page := query.Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		page = page.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		page = page.Offset(filter.Offset)
	}

	var recordModels []*model.BillingRecordModel
	if err := page.Find(&recordModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list billing records")
	}

	records := make([]*entity.BillingRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toBillingDomain(recordM))
	}

	return records, total, nil
}

// Update writes the admin-amendable fields of a record.
func (repo *billingRepository) Update(ctx context.Context, record *entity.BillingRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BillingRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"is_complaint_resolved": record.IsComplaintResolved,
			"materials_used":        record.MaterialsUsed,
			"materials":             toMaterialModels(record.Materials),
			"updated_by_admin":      record.UpdatedByAdmin,
			"updated_by_admin_at":   record.UpdatedByAdminAt,
			"updated_at":            record.UpdatedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update billing record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBillingRecordNotFound
	}

	return nil
}

// Mapper functions

func toBillingDomain(data *model.BillingRecordModel) *entity.BillingRecord {
	materials := make([]entity.Material, 0, len(data.Materials))
	for _, m := range data.Materials {
		material := entity.Material{
			ID:       m.ID,
			Name:     m.Name,
			Quantity: m.Quantity,
			Price:    m.Price,
		}
		if m.BillPhoto != nil {
			photo := toPhotoDomain(*m.BillPhoto)
			material.BillPhoto = &photo
		}
		materials = append(materials, material)
	}

	return &entity.BillingRecord{
		ID:                  data.ID,
		ComplaintID:         data.ComplaintID,
		TechnicianID:        data.TechnicianID,
		IsComplaintResolved: data.IsComplaintResolved,
		MaterialsUsed:       data.MaterialsUsed,
		Materials:           materials,
		UpdatedByAdmin:      data.UpdatedByAdmin,
		UpdatedByAdminAt:    utcPtr(data.UpdatedByAdminAt),
		CreatedAt:           data.CreatedAt.UTC(),
		UpdatedAt:           data.UpdatedAt.UTC(),
	}
}

func fromBillingDomain(data *entity.BillingRecord) *model.BillingRecordModel {
	return &model.BillingRecordModel{
		ID:                  data.ID,
		ComplaintID:         data.ComplaintID,
		TechnicianID:        data.TechnicianID,
		IsComplaintResolved: data.IsComplaintResolved,
		MaterialsUsed:       data.MaterialsUsed,
		Materials:           toMaterialModels(data.Materials),
		UpdatedByAdmin:      data.UpdatedByAdmin,
		UpdatedByAdminAt:    data.UpdatedByAdminAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func toMaterialModels(materials []entity.Material) datatypes.JSONSlice[model.MaterialModel] {
	out := make(datatypes.JSONSlice[model.MaterialModel], 0, len(materials))
	for _, m := range materials {
		materialM := model.MaterialModel{
			ID:       m.ID,
			Name:     m.Name,
			Quantity: m.Quantity,
			Price:    m.Price,
		}
		if m.BillPhoto != nil {
			photoM := toPhotoModel(*m.BillPhoto)
			materialM.BillPhoto = &photoM
		}
		out = append(out, materialM)
	}

	return out
}
