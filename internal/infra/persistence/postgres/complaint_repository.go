package postgres

import (
	"context"
	"strings"
	"time"

	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/repository"
	"servicedesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// complaintRepository implements the repository.ComplaintRepository interface.
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(db *gorm.DB) repository.ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create persists a new complaint.
func (repo *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	complaintM := fromComplaintDomain(complaint)

	if err := repo.db.WithContext(ctx).Create(complaintM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrComplaintIDTaken
		}

		return errors.Wrap(err, "failed to create complaint")
	}

	complaint.CreatedAt = complaintM.CreatedAt
	complaint.UpdatedAt = complaintM.UpdatedAt

	return nil
}

// FindByID retrieves a complaint by its internal ID.
func (repo *complaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	var complaintM model.ComplaintModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&complaintM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint by ID")
	}

	return toComplaintDomain(&complaintM), nil
}

// List returns one page of complaints matching the filter, newest first.
func (repo *complaintRepository) List(ctx context.Context, filter entity.ComplaintFilter) ([]*entity.Complaint, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ComplaintModel{})

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.AssignedTechnicianID != nil {
		query = query.Where("assigned_technician_id = ?", *filter.AssignedTechnicianID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", string(filter.Priority))
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) = ?", strings.ToLower(filter.Location))
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ? OR complaint_id ILIKE ?)", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count complaints")
	}

	var complaintModels []*model.ComplaintModel
	page := query.Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		page = page.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		page = page.Offset(filter.Offset)
	}
	if err := page.Find(&complaintModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list complaints")
	}

	complaints := make([]*entity.Complaint, 0, len(complaintModels))
	for _, complaintM := range complaintModels {
		complaints = append(complaints, toComplaintDomain(complaintM))
	}

	return complaints, total, nil
}

// UpdatePending writes the editable fields, only while the complaint is pending.
func (repo *complaintRepository) UpdatePending(ctx context.Context, complaint *entity.Complaint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ComplaintModel{}).
		Where("id = ? AND status = ?", complaint.ID, string(entity.ComplaintStatusPending)).
		Updates(map[string]any{
			"title":       complaint.Title,
			"description": complaint.Description,
			"location":    complaint.Location,
			"priority":    string(complaint.Priority),
			"photos":      toPhotoModels(complaint.Photos),
			"updated_at":  complaint.UpdatedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update complaint")
	}

	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, complaint.ID)
	}

	return nil
}

// ApplyStatusChange writes a transition, only while the stored status equals change.From.
func (repo *complaintRepository) ApplyStatusChange(ctx context.Context, id uuid.UUID, change *entity.StatusChange) error {
	updates := map[string]any{
		"status":     string(change.To),
		"updated_at": change.At,
	}
	if change.TechnicianNotes != nil {
		updates["technician_notes"] = *change.TechnicianNotes
	}

	switch change.To {
	case entity.ComplaintStatusAssigned:
		updates["assigned_technician_id"] = change.AssignedTechnicianID
		updates["assigned_by"] = change.AssignedBy
		updates["assigned_at"] = change.At
	case entity.ComplaintStatusInProgress:
		updates["started_at"] = change.At
	case entity.ComplaintStatusResolved:
		updates["resolution_notes"] = change.ResolutionNotes
		updates["resolution_photos"] = toPhotoModels(change.ResolutionPhotos)
		updates["resolved_at"] = change.At
		updates["completed_at"] = change.At
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ComplaintModel{}).
		Where("id = ? AND status = ?", id, string(change.From)).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to apply status change")
	}

	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, id)
	}

	return nil
}

// DeletePending removes a complaint, only while it is pending.
func (repo *complaintRepository) DeletePending(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, string(entity.ComplaintStatusPending)).
		Delete(&model.ComplaintModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete complaint")
	}

	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, id)
	}

	return nil
}

// missOrConflict tells a missing row apart from a failed status precondition.
func (repo *complaintRepository) missOrConflict(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ComplaintModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check complaint existence")
	}

	if count == 0 {
		return repository.ErrComplaintNotFound
	}

	return repository.ErrStatusPreconditionFailed
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Mapper functions

func toComplaintDomain(data *model.ComplaintModel) *entity.Complaint {
	return &entity.Complaint{
		ID:                   data.ID,
		ComplaintID:          data.ComplaintID,
		Status:               entity.ComplaintStatus(data.Status),
		Title:                data.Title,
		Description:          data.Description,
		Location:             data.Location,
		Priority:             entity.Priority(data.Priority),
		Photos:               toPhotoDomains(data.Photos),
		ClientID:             data.ClientID,
		CreatedByID:          data.CreatedByID,
		CreatedByRole:        entity.Role(data.CreatedByRole),
		AssignedTechnicianID: data.AssignedTechnicianID,
		AssignedBy:           data.AssignedBy,
		AssignedAt:           utcPtr(data.AssignedAt),
		StartedAt:            utcPtr(data.StartedAt),
		ResolutionNotes:      data.ResolutionNotes,
		ResolutionPhotos:     toPhotoDomains(data.ResolutionPhotos),
		ResolvedAt:           utcPtr(data.ResolvedAt),
		CompletedAt:          utcPtr(data.CompletedAt),
		TechnicianNotes:      data.TechnicianNotes,
		CreatedAt:            data.CreatedAt.UTC(),
		UpdatedAt:            data.UpdatedAt.UTC(),
	}
}

func fromComplaintDomain(data *entity.Complaint) *model.ComplaintModel {
	return &model.ComplaintModel{
		ID:                   data.ID,
		ComplaintID:          data.ComplaintID,
		Status:               string(data.Status),
		Title:                data.Title,
		Description:          data.Description,
		Location:             data.Location,
		Priority:             string(data.Priority),
		Photos:               toPhotoModels(data.Photos),
		ClientID:             data.ClientID,
		CreatedByID:          data.CreatedByID,
		CreatedByRole:        string(data.CreatedByRole),
		AssignedTechnicianID: data.AssignedTechnicianID,
		AssignedBy:           data.AssignedBy,
		AssignedAt:           data.AssignedAt,
		StartedAt:            data.StartedAt,
		ResolutionNotes:      data.ResolutionNotes,
		ResolutionPhotos:     toPhotoModels(data.ResolutionPhotos),
		ResolvedAt:           data.ResolvedAt,
		CompletedAt:          data.CompletedAt,
		TechnicianNotes:      data.TechnicianNotes,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func toPhotoModels(photos []entity.Photo) datatypes.JSONSlice[model.PhotoModel] {
	out := make(datatypes.JSONSlice[model.PhotoModel], 0, len(photos))
	for _, p := range photos {
		out = append(out, toPhotoModel(p))
	}

	return out
}

func toPhotoModel(p entity.Photo) model.PhotoModel {
	return model.PhotoModel{
		URL:          p.URL,
		StorageKey:   p.StorageKey,
		OriginalName: p.OriginalName,
	}
}

func toPhotoDomains(photos datatypes.JSONSlice[model.PhotoModel]) []entity.Photo {
	out := make([]entity.Photo, 0, len(photos))
	for _, p := range photos {
		out = append(out, toPhotoDomain(p))
	}

	return out
}

func toPhotoDomain(p model.PhotoModel) entity.Photo {
	return entity.Photo{
		URL:          p.URL,
		StorageKey:   p.StorageKey,
		OriginalName: p.OriginalName,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}
