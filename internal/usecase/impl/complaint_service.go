package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
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

type complaintService struct {
	complaintRepo           repository.ComplaintRepository
	directoryRepo           repository.DirectoryRepository
	identifiers             usecase.IdentifierComposer
	policy                  usecase.AutoAssignmentPolicy
	photos                  *photoUploader
	transitions             *transitioner
	effects                 *lifecycleEffects
	metrics                 service.Metrics
	applyToClientComplaints bool
	logger                  *slog.Logger
}

// ComplaintServiceParams holds dependencies for ComplaintService, injected by Fx.
type ComplaintServiceParams struct {
	fx.In

	ComplaintRepo repository.ComplaintRepository
	DirectoryRepo repository.DirectoryRepository
	Identifiers   usecase.IdentifierComposer
	Policy        usecase.AutoAssignmentPolicy
	Notifier      usecase.NotificationUsecase
	Storage       service.PhotoStorage
	Publisher     service.EventPublisher
	Metrics       service.Metrics
	Config        *config.Config
	Logger        *slog.Logger
}

// NewComplaintService creates the complaint lifecycle manager.
func NewComplaintService(params ComplaintServiceParams) (usecase.ComplaintUsecase, error) {
	photos, err := newPhotoUploader(params.Storage, params.Config.Storage.MaxPhotoSize, params.Logger)
	if err != nil {
		return nil, err
	}

	effects := newLifecycleEffects(params.Notifier, params.DirectoryRepo, params.Publisher, params.Metrics, params.Logger)

	return &complaintService{
		complaintRepo: params.ComplaintRepo,
		directoryRepo: params.DirectoryRepo,
		identifiers:   params.Identifiers,
		policy:        params.Policy,
		photos:        photos,
		transitions: &transitioner{
			complaintRepo: params.ComplaintRepo,
			effects:       effects,
		},
		effects:                 effects,
		metrics:                 params.Metrics,
		applyToClientComplaints: params.Config.AutoAssign.ApplyToClientComplaints,
		logger:                  params.Logger,
	}, nil
}

func (s *complaintService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateComplaint uploads the photos, mints the identifier and stores a pending complaint.
func (s *complaintService) CreateComplaint(ctx context.Context, actor entity.Actor, input *usecase.CreateComplaintInput, photos []*service.FileUpload) (*usecase.CreateComplaintResult, error) {
	if !actor.IsValid() {
		return nil, domainerrors.ErrUnauthorized
	}

	complaint, err := s.newComplaint(actor, input)
	if err != nil {
		return nil, err
	}
	if len(photos) > entity.MaxComplaintPhotos {
		return nil, domainerrors.ErrTooManyPhotos
	}

	uploaded, err := s.photos.uploadAll(ctx, photos, complaintPhotoFolder)
	if err != nil {
		return nil, err
	}
	complaint.Photos = uploaded

	complaint.ComplaintID, err = s.identifiers.Compose(ctx, complaint.Location)
	if err != nil {
		s.photos.deleteAll(ctx, photoKeys(uploaded))

		return nil, errors.Wrap(err, "failed to compose complaint identifier")
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		s.photos.deleteAll(ctx, photoKeys(uploaded))
		if errors.Is(err, repository.ErrComplaintIDTaken) {
			s.log(ctx).Error("Allocated complaint identifier already exists",
				slog.String("complaint_id", complaint.ComplaintID),
			)

			return nil, domainerrors.ErrComplaintIDConflict.WithDetails(complaint.ComplaintID)
		}

		return nil, errors.Wrapf(err, "failed to create complaint %s", complaint.ComplaintID)
	}

	s.log(ctx).Info("Complaint created",
		slog.String("complaint_id", complaint.ComplaintID),
		slog.String("created_by_role", string(actor.Role())),
		slog.Int("photos", len(complaint.Photos)),
	)
	if s.metrics != nil {
		s.metrics.ComplaintCreated(storeCodeOf(complaint.ComplaintID))
	}
	s.effects.complaintEvent(ctx, entity.EventComplaintCreated, complaint, actor)

	result := &usecase.CreateComplaintResult{Complaint: complaint}
	if actor.IsTechnician() || s.applyToClientComplaints {
		result.AutoAssignment = s.policy.Apply(ctx, complaint, actor)
		if result.AutoAssignment.Assigned && result.AutoAssignment.Complaint != nil {
			result.Complaint = result.AutoAssignment.Complaint
		}
	}

	return result, nil
}

func (s *complaintService) newComplaint(actor entity.Actor, input *usecase.CreateComplaintInput) (*entity.Complaint, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	location := strings.TrimSpace(input.Location)

	switch {
	case title == "":
		return nil, domainerrors.NewValidationError("title is required")
	case description == "":
		return nil, domainerrors.NewValidationError("description is required")
	case location == "":
		return nil, domainerrors.NewValidationError("location is required")
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domainerrors.NewValidationError("priority %q is not one of low, medium, high, urgent", input.Priority)
	}

	now := time.Now().UTC()
	complaint := &entity.Complaint{
		ID:               uuid.New(),
		Status:           entity.ComplaintStatusPending,
		Title:            title,
		Description:      description,
		Location:         location,
		Priority:         priority,
		Photos:           []entity.Photo{},
		CreatedByID:      actor.ID(),
		CreatedByRole:    actor.Role(),
		ResolutionPhotos: []entity.Photo{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	switch actor.Role() {
	case entity.RoleClient:
		clientID := actor.ID()
		complaint.ClientID = &clientID
	case entity.RoleAdmin:
		complaint.ClientID = input.ClientID
	}

	return complaint, nil
}

// GetComplaint returns a complaint visible to the actor.
func (s *complaintService) GetComplaint(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Complaint, error) {
	complaint, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !complaint.VisibleTo(actor) {
		return nil, domainerrors.ErrComplaintNotFound
	}

	return complaint, nil
}

// ListComplaints returns the client's own complaints, or every complaint for admins.
func (s *complaintService) ListComplaints(ctx context.Context, actor entity.Actor, query usecase.ComplaintQuery) (*usecase.ComplaintPage, error) {
	switch actor.Role() {
	case entity.RoleTechnician:
		return s.ListAssigned(ctx, actor, query)
	case entity.RoleClient, entity.RoleAdmin:
	default:
		return nil, domainerrors.ErrUnauthorized
	}

	filter, err := complaintFilter(query)
	if err != nil {
		return nil, err
	}
	if actor.IsClient() {
		clientID := actor.ID()
		filter.ClientID = &clientID
	}

	return s.list(ctx, filter, query.Pagination)
}

// ListAssigned returns the complaints currently assigned to the technician.
func (s *complaintService) ListAssigned(ctx context.Context, actor entity.Actor, query usecase.ComplaintQuery) (*usecase.ComplaintPage, error) {
	if !actor.IsTechnician() {
		return nil, domainerrors.ErrForbidden
	}

	filter, err := complaintFilter(query)
	if err != nil {
		return nil, err
	}
	technicianID := actor.ID()
	filter.AssignedTechnicianID = &technicianID

	return s.list(ctx, filter, query.Pagination)
}

func (s *complaintService) list(ctx context.Context, filter entity.ComplaintFilter, page usecase.Pagination) (*usecase.ComplaintPage, error) {
	page = page.Normalize()
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	items, total, err := s.complaintRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}
	if items == nil {
		items = []*entity.Complaint{}
	}

	return &usecase.ComplaintPage{
		Items: items,
		PageInfo: usecase.PageInfo{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
		},
	}, nil
}

func complaintFilter(query usecase.ComplaintQuery) (entity.ComplaintFilter, error) {
	if query.Status != "" && !query.Status.IsValid() {
		return entity.ComplaintFilter{}, domainerrors.NewValidationError("unknown status %q", query.Status)
	}
	if query.Priority != "" && !query.Priority.IsValid() {
		return entity.ComplaintFilter{}, domainerrors.NewValidationError("unknown priority %q", query.Priority)
	}

	return entity.ComplaintFilter{
		Status:   query.Status,
		Priority: query.Priority,
		Location: strings.TrimSpace(query.Location),
		Search:   strings.TrimSpace(query.Search),
	}, nil
}

// UpdateComplaint edits a pending complaint owned by the client, or any pending complaint for admins.
func (s *complaintService) UpdateComplaint(ctx context.Context, actor entity.Actor, id uuid.UUID, input *usecase.UpdateComplaintInput, photos []*service.FileUpload) (*entity.Complaint, error) {
	complaint, err := s.loadEditable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	updated := *complaint
	if err := applyComplaintPatch(&updated, input); err != nil {
		return nil, err
	}

	kept, removed, err := splitPhotos(complaint.Photos, input.RemovePhotoKeys)
	if err != nil {
		return nil, err
	}
	if len(kept)+len(photos) > entity.MaxComplaintPhotos {
		return nil, domainerrors.ErrTooManyPhotos.WithDetails(fmt.Sprintf("%d kept and %d new photos", len(kept), len(photos)))
	}

	added, err := s.photos.uploadAll(ctx, photos, complaintPhotoFolder)
	if err != nil {
		return nil, err
	}
	updated.Photos = append(kept, added...)
	updated.UpdatedAt = time.Now().UTC()

	if err := s.complaintRepo.UpdatePending(ctx, &updated); err != nil {
		s.photos.deleteAll(ctx, photoKeys(added))

		switch {
		case errors.Is(err, repository.ErrStatusPreconditionFailed):
			return nil, domainerrors.ErrComplaintNotPending
		case errors.Is(err, repository.ErrComplaintNotFound):
			return nil, domainerrors.ErrComplaintNotFound
		default:
			return nil, errors.Wrapf(err, "failed to update complaint %s", complaint.ComplaintID)
		}
	}

	s.photos.deleteAll(ctx, photoKeys(removed))
	s.effects.complaintEvent(ctx, entity.EventComplaintUpdated, &updated, actor)

	return &updated, nil
}

func applyComplaintPatch(complaint *entity.Complaint, input *usecase.UpdateComplaintInput) error {
	fields := []struct {
		name  string
		value *string
		dst   *string
	}{
		{"title", input.Title, &complaint.Title},
		{"description", input.Description, &complaint.Description},
		{"location", input.Location, &complaint.Location},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		v := strings.TrimSpace(*f.value)
		if v == "" {
			return domainerrors.NewValidationError("%s cannot be empty", f.name)
		}
		*f.dst = v
	}

	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return domainerrors.NewValidationError("priority %q is not one of low, medium, high, urgent", *input.Priority)
		}
		complaint.Priority = *input.Priority
	}

	return nil
}

// splitPhotos partitions photos into those kept and those named for removal.
func splitPhotos(photos []entity.Photo, removeKeys []string) ([]entity.Photo, []entity.Photo, error) {
	for _, key := range removeKeys {
		if !slices.ContainsFunc(photos, func(p entity.Photo) bool { return p.StorageKey == key }) {
			return nil, nil, domainerrors.NewValidationError("photo %q is not attached to this complaint", key)
		}
	}

	kept := make([]entity.Photo, 0, len(photos))
	var removed []entity.Photo
	for _, p := range photos {
		if slices.Contains(removeKeys, p.StorageKey) {
			removed = append(removed, p)

			continue
		}
		kept = append(kept, p)
	}

	return kept, removed, nil
}

// DeleteComplaint removes the photos of a pending complaint, then the complaint.
// Photo deletes are best-effort; the record delete is still conditional on pending.
func (s *complaintService) DeleteComplaint(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	complaint, err := s.loadEditable(ctx, actor, id)
	if err != nil {
		return err
	}

	s.photos.deleteAll(ctx, complaint.StorageKeys())

	if err := s.complaintRepo.DeletePending(ctx, complaint.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrStatusPreconditionFailed):
			return domainerrors.ErrComplaintNotPending
		case errors.Is(err, repository.ErrComplaintNotFound):
			return domainerrors.ErrComplaintNotFound
		default:
			return errors.Wrapf(err, "failed to delete complaint %s", complaint.ComplaintID)
		}
	}

	s.log(ctx).Info("Complaint deleted",
		slog.String("complaint_id", complaint.ComplaintID),
		slog.Int("photos", len(complaint.Photos)),
	)
	s.effects.complaintEvent(ctx, entity.EventComplaintDeleted, complaint, actor)

	return nil
}

// loadEditable returns a pending complaint the actor may edit.
func (s *complaintService) loadEditable(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Complaint, error) {
	if actor.IsTechnician() {
		return nil, domainerrors.ErrForbidden.WithMessage("technicians cannot edit or delete complaints")
	}

	complaint, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !complaint.VisibleTo(actor) {
		return nil, domainerrors.ErrComplaintNotFound
	}
	if !complaint.IsPending() {
		return nil, domainerrors.ErrComplaintNotPending.WithDetails("current status: " + string(complaint.Status))
	}

	return complaint, nil
}

// AssignComplaint moves a pending complaint to an active technician.
func (s *complaintService) AssignComplaint(ctx context.Context, actor entity.Actor, id uuid.UUID, technicianID uuid.UUID) (*entity.Complaint, error) {
	complaint, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransition(complaint.Status, entity.ComplaintStatusAssigned) {
		return nil, domainerrors.NewInvalidTransitionError(string(complaint.Status), string(entity.ComplaintStatusAssigned))
	}
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithMessage("only administrators can assign complaints")
	}

	technician, err := s.directoryRepo.FindTechnicianByID(ctx, technicianID)
	if err != nil {
		if errors.Is(err, repository.ErrTechnicianNotFound) {
			return nil, domainerrors.ErrTechnicianNotFound
		}

		return nil, errors.Wrap(err, "failed to look up technician")
	}
	if !technician.IsActive {
		return nil, domainerrors.ErrTechnicianNotFound.WithDetails("technician is inactive")
	}

	assigned, err := s.transitions.assign(ctx, complaint, technician, actor)
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Complaint assigned",
		slog.String("complaint_id", assigned.ComplaintID),
		slog.String("technician_id", technician.ID.String()),
	)

	return assigned, nil
}

// UpdateStatus drives assigned -> in-progress -> resolved for the assigned technician.
func (s *complaintService) UpdateStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, input *usecase.StatusUpdateInput, photos []*service.FileUpload) (*entity.Complaint, error) {
	resolutionNotes := strings.TrimSpace(input.ResolutionNotes)
	if input.Status == entity.ComplaintStatusResolved && resolutionNotes == "" {
		return nil, domainerrors.NewValidationError("resolutionNotes is required to resolve a complaint")
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.NewValidationError("unknown status %q", input.Status)
	}

	complaint, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransition(complaint.Status, input.Status) {
		return nil, domainerrors.NewInvalidTransitionError(string(complaint.Status), string(input.Status))
	}
	if input.Status == entity.ComplaintStatusAssigned {
		return nil, domainerrors.ErrForbidden.WithMessage("only administrators can assign complaints")
	}
	if !actor.IsTechnician() || !complaint.IsAssignedTo(actor.ID()) {
		return nil, domainerrors.ErrForbidden.WithMessage("only the assigned technician can update this complaint")
	}

	change := &entity.StatusChange{
		From: complaint.Status,
		To:   input.Status,
		At:   time.Now().UTC(),
	}
	if input.Notes != nil {
		notes := strings.TrimSpace(*input.Notes)
		change.TechnicianNotes = &notes
	}

	switch input.Status {
	case entity.ComplaintStatusInProgress:
		if len(photos) > 0 {
			return nil, domainerrors.NewValidationError("photos can only be attached when resolving a complaint")
		}
	case entity.ComplaintStatusResolved:
		if len(photos) > entity.MaxComplaintPhotos {
			return nil, domainerrors.ErrTooManyPhotos
		}
		uploaded, err := s.photos.uploadAll(ctx, photos, resolutionPhotoFolder)
		if err != nil {
			return nil, err
		}
		if uploaded == nil {
			uploaded = []entity.Photo{}
		}
		change.ResolutionNotes = resolutionNotes
		change.ResolutionPhotos = uploaded
	}

	updated, err := s.transitions.commit(ctx, complaint, change)
	if err != nil {
		s.photos.deleteAll(ctx, photoKeys(change.ResolutionPhotos))

		return nil, err
	}

	s.log(ctx).Info("Complaint status updated",
		slog.String("complaint_id", updated.ComplaintID),
		slog.String("from", string(change.From)),
		slog.String("to", string(change.To)),
	)
	s.effects.transitioned(ctx, updated, change, actor)
	s.effects.notifyClient(ctx, updated)

	return updated, nil
}

func (s *complaintService) load(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to load complaint")
	}

	return complaint, nil
}
