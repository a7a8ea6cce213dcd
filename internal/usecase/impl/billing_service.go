package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"servicedesk/config"
	deliverycontext "servicedesk/internal/delivery/context"
	"servicedesk/internal/domain/entity"
	domainerrors "servicedesk/internal/domain/errors"
	"servicedesk/internal/domain/repository"
	"servicedesk/internal/domain/service"
	"servicedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type billingService struct {
	billingRepo   repository.BillingRepository
	complaintRepo repository.ComplaintRepository
	txManager     repository.TransactionManager
	photos        *photoUploader
	effects       *lifecycleEffects
	logger        *slog.Logger
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	BillingRepo   repository.BillingRepository
	ComplaintRepo repository.ComplaintRepository
	TxManager     repository.TransactionManager
	Storage       service.PhotoStorage
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewBillingService creates the billing reconciliation service.
func NewBillingService(params BillingServiceParams) (usecase.BillingUsecase, error) {
	photos, err := newPhotoUploader(params.Storage, params.Config.Storage.MaxPhotoSize, params.Logger)
	if err != nil {
		return nil, err
	}

	return &billingService{
		billingRepo:   params.BillingRepo,
		complaintRepo: params.ComplaintRepo,
		txManager:     params.TxManager,
		photos:        photos,
		effects:       newLifecycleEffects(nil, nil, params.Publisher, nil, params.Logger),
		logger:        params.Logger,
	}, nil
}

func (s *billingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateBilling stores the billing record of a complaint assigned to the calling technician.
func (s *billingService) CreateBilling(ctx context.Context, actor entity.Actor, input *usecase.CreateBillingInput, files []*service.FileUpload) (*entity.BillingRecord, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, input.ComplaintID)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to load complaint")
	}
	if complaint.IsPending() || complaint.AssignedTechnicianID == nil {
		return nil, domainerrors.ErrComplaintNotAssigned
	}
	if !actor.IsTechnician() || !complaint.IsAssignedTo(actor.ID()) {
		return nil, domainerrors.ErrForbidden.WithMessage("only the assigned technician can bill this complaint")
	}

	exists, err := s.billingRepo.ExistsForComplaint(ctx, complaint.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing billing record")
	}
	if exists {
		return nil, domainerrors.ErrBillingAlreadyExists
	}

	rows, err := normalizeMaterials(input.MaterialsUsed, input.Materials)
	if err != nil {
		return nil, err
	}

	materials, err := s.uploadBillPhotos(ctx, rows, files)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &entity.BillingRecord{
		ID:                  uuid.New(),
		ComplaintID:         complaint.ID,
		TechnicianID:        actor.ID(),
		IsComplaintResolved: input.IsComplaintResolved,
		MaterialsUsed:       input.MaterialsUsed,
		Materials:           materials,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.billingRepo.Create(ctx, record); err != nil {
		s.photos.deleteAll(ctx, record.PhotoKeys())

		if errors.Is(err, repository.ErrBillingRecordExists) {
			return nil, domainerrors.ErrBillingAlreadyExists
		}

		return nil, errors.Wrapf(err, "failed to create billing record for complaint %s", complaint.ComplaintID)
	}

	s.log(ctx).Info("Billing record created",
		slog.String("complaint_id", complaint.ComplaintID),
		slog.String("billing_id", record.ID.String()),
		slog.Int("materials", len(record.Materials)),
		slog.String("total", record.Total().StringFixed(2)),
	)
	s.effects.publish(ctx, entity.EventBillingCreated, record.ID, complaint.ComplaintID, complaint.Status, actor)

	return record, nil
}

// uploadBillPhotos stores the file referenced by each row's photo field and builds the materials.
func (s *billingService) uploadBillPhotos(ctx context.Context, rows []usecase.MaterialInput, files []*service.FileUpload) ([]entity.Material, error) {
	byField := make(map[string]*service.FileUpload, len(files))
	for _, f := range files {
		if f != nil && f.FieldName != "" {
			byField[f.FieldName] = f
		}
	}

	var (
		pending []*service.FileUpload
		owners  []int
	)
	materials := make([]entity.Material, len(rows))
	for i, row := range rows {
		materials[i] = entity.Material{
			ID:       uuid.New(),
			Name:     row.Name,
			Quantity: row.Quantity,
			Price:    row.Price,
		}
		if row.PhotoField == "" {
			continue
		}
		f, ok := byField[row.PhotoField]
		if !ok {
			return nil, domainerrors.NewValidationError("no file uploaded for photoField %q", row.PhotoField)
		}
		pending = append(pending, f)
		owners = append(owners, i)
	}

	uploaded, err := s.photos.uploadAll(ctx, pending, billPhotoFolder)
	if err != nil {
		return nil, err
	}
	for j, photo := range uploaded {
		materials[owners[j]].BillPhoto = &photo
	}

	return materials, nil
}

// ListBilling returns the technician's own records, or every record for admins.
func (s *billingService) ListBilling(ctx context.Context, actor entity.Actor, page usecase.Pagination) (*usecase.BillingPage, error) {
	filter := entity.BillingFilter{}
	switch actor.Role() {
	case entity.RoleTechnician:
		technicianID := actor.ID()
		filter.TechnicianID = &technicianID
	case entity.RoleAdmin:
	default:
		return nil, domainerrors.ErrForbidden
	}

	page = page.Normalize()
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	items, total, err := s.billingRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list billing records")
	}
	if items == nil {
		items = []*entity.BillingRecord{}
	}

	return &usecase.BillingPage{
		Items: items,
		PageInfo: usecase.PageInfo{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
		},
	}, nil
}

// GetBilling returns one billing record to an administrator.
func (s *billingService) GetBilling(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.BillingRecord, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	record, err := s.billingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBillingRecordNotFound) {
			return nil, domainerrors.ErrBillingNotFound
		}

		return nil, errors.Wrap(err, "failed to load billing record")
	}

	return record, nil
}

// UpdateBilling replaces the materials of a record under a row lock, keeping
// the bill photos of rows that survive the edit.
func (s *billingService) UpdateBilling(ctx context.Context, actor entity.Actor, id uuid.UUID, input *usecase.UpdateBillingInput) (*entity.BillingRecord, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithMessage("only administrators can amend billing records")
	}

	rows, err := normalizeMaterials(input.MaterialsUsed, input.Materials)
	if err != nil {
		return nil, err
	}

	var (
		updated     *entity.BillingRecord
		orphaned    []string
		complaintID string
		status      entity.ComplaintStatus
	)
	err = s.txManager.Execute(ctx, func(scope repository.TxScope) error {
		billingRepo := scope.Billing()

		record, err := billingRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBillingRecordNotFound) {
				return domainerrors.ErrBillingNotFound
			}

			return errors.Wrap(err, "failed to lock billing record")
		}

		previousKeys := record.PhotoKeys()
		now := time.Now().UTC()
		adminID := actor.ID()

		record.IsComplaintResolved = input.IsComplaintResolved
		record.MaterialsUsed = input.MaterialsUsed
		record.Materials = mergeMaterials(record.Materials, rows)
		record.UpdatedByAdmin = &adminID
		record.UpdatedByAdminAt = &now
		record.UpdatedAt = now

		if err := billingRepo.Update(ctx, record); err != nil {
			return errors.Wrap(err, "failed to update billing record")
		}

		updated = record
		orphaned = orphanedKeys(previousKeys, record.PhotoKeys())
		if complaint, err := scope.Complaints().FindByID(ctx, record.ComplaintID); err == nil {
			complaintID = complaint.ComplaintID
			status = complaint.Status
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.photos.deleteAll(ctx, orphaned)
	s.log(ctx).Info("Billing record amended",
		slog.String("billing_id", updated.ID.String()),
		slog.String("admin_id", actor.ID().String()),
		slog.Int("materials", len(updated.Materials)),
		slog.Int("orphaned_photos", len(orphaned)),
	)

	s.effects.publish(ctx, entity.EventBillingUpdated, updated.ID, complaintID, status, actor)

	return updated, nil
}

// normalizeMaterials drops rows without a name and validates the rest.
// When no materials were used the list is cleared.
func normalizeMaterials(materialsUsed bool, inputs []usecase.MaterialInput) ([]usecase.MaterialInput, error) {
	if !materialsUsed {
		return nil, nil
	}

	rows := make([]usecase.MaterialInput, 0, len(inputs))
	seenIDs := make(map[uuid.UUID]struct{})
	seenFields := make(map[string]struct{})
	for _, in := range inputs {
		in.Name = strings.TrimSpace(in.Name)
		if in.Name == "" {
			continue
		}
		if in.Quantity.IsNegative() {
			return nil, domainerrors.NewValidationError("quantity of %q cannot be negative", in.Name)
		}
		if in.Price.IsNegative() {
			return nil, domainerrors.NewValidationError("price of %q cannot be negative", in.Name)
		}
		if in.ID != nil {
			if _, dup := seenIDs[*in.ID]; dup {
				return nil, domainerrors.NewValidationError("material id %s appears more than once", *in.ID)
			}
			seenIDs[*in.ID] = struct{}{}
		}
		in.PhotoField = strings.TrimSpace(in.PhotoField)
		if in.PhotoField != "" {
			if _, dup := seenFields[in.PhotoField]; dup {
				return nil, domainerrors.NewValidationError("photoField %q appears more than once", in.PhotoField)
			}
			seenFields[in.PhotoField] = struct{}{}
		}
		rows = append(rows, in)
	}

	if len(rows) == 0 {
		return nil, domainerrors.NewValidationError("materials must contain at least one named item when materialsUsed is true")
	}

	return rows, nil
}

// mergeMaterials builds the amended material list. Rows carrying the id of an
// existing row keep its id and bill photo; other rows start fresh. If no row
// carries an id, photos are paired with existing rows by position.
func mergeMaterials(existing []entity.Material, rows []usecase.MaterialInput) []entity.Material {
	merged := make([]entity.Material, len(rows))
	if len(rows) == 0 {
		return merged
	}

	legacy := true
	for _, row := range rows {
		if row.ID != nil {
			legacy = false

			break
		}
	}

	byID := make(map[uuid.UUID]entity.Material, len(existing))
	for _, m := range existing {
		byID[m.ID] = m
	}

	for i, row := range rows {
		m := entity.Material{
			ID:       uuid.New(),
			Name:     row.Name,
			Quantity: row.Quantity,
			Price:    row.Price,
		}

		switch {
		case legacy && i < len(existing):
			if existing[i].ID != uuid.Nil {
				m.ID = existing[i].ID
			}
			m.BillPhoto = existing[i].BillPhoto
		case row.ID != nil:
			if prev, ok := byID[*row.ID]; ok {
				m.ID = prev.ID
				m.BillPhoto = prev.BillPhoto
			}
		}

		merged[i] = m
	}

	return merged
}

func orphanedKeys(before, after []string) []string {
	kept := make(map[string]struct{}, len(after))
	for _, k := range after {
		kept[k] = struct{}{}
	}

	var orphaned []string
	for _, k := range before {
		if _, ok := kept[k]; !ok {
			orphaned = append(orphaned, k)
		}
	}

	return orphaned
}
