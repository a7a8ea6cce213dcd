package impl

import (
	"testing"

	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/service"
	"servicedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const defaultTechnicianPhone = "+91 98765-43210"

// harness wires the usecases to in-memory collaborators.
type harness struct {
	complaints    *memComplaintRepo
	sequences     *memSequenceRepo
	notifications *memNotificationRepo
	billing       *memBillingRepo
	directory     *memDirectoryRepo
	storage       *memStorage
	channel       *recordingChannel
	publisher     *recordingPublisher
	metrics       *countingMetrics

	complaintSvc usecase.ComplaintUsecase
	billingSvc   usecase.BillingUsecase
	notifier     usecase.NotificationUsecase
	policy       usecase.AutoAssignmentPolicy

	// storageOverride and publisherOverride replace the in-memory doubles.
	storageOverride   service.PhotoStorage
	publisherOverride service.EventPublisher

	technician *entity.Technician
	client     *entity.Client
	admin      entity.Actor
}

type harnessOption func(h *harness, phone *string, applyToClients *bool)

func withDefaultPhone(phone string) harnessOption {
	return func(_ *harness, p *string, _ *bool) { *p = phone }
}

func withClientAutoAssign() harnessOption {
	return func(_ *harness, _ *string, apply *bool) { *apply = true }
}

func withStorage(storage service.PhotoStorage) harnessOption {
	return func(h *harness, _ *string, _ *bool) { h.storageOverride = storage }
}

func withPublisher(publisher service.EventPublisher) harnessOption {
	return func(h *harness, _ *string, _ *bool) { h.publisherOverride = publisher }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()

	h := &harness{
		complaints:    newMemComplaintRepo(),
		sequences:     newMemSequenceRepo(),
		notifications: &memNotificationRepo{},
		billing:       newMemBillingRepo(),
		storage:       newMemStorage(),
		channel:       &recordingChannel{},
		publisher:     &recordingPublisher{},
		metrics:       newCountingMetrics(),
		technician: &entity.Technician{
			ID:       uuid.New(),
			Name:     "Ravi",
			Phone:    "9876543210",
			IsActive: true,
		},
		client: &entity.Client{
			ID:    uuid.New(),
			Name:  "Kharadi Store",
			Phone: "(020) 1234-567 890",
		},
		admin: entity.NewAdminActor(uuid.New()),
	}
	h.directory = &memDirectoryRepo{
		technicians: []*entity.Technician{h.technician},
		clients:     []*entity.Client{h.client},
	}

	phone := defaultTechnicianPhone
	applyToClients := false
	for _, opt := range opts {
		opt(h, &phone, &applyToClients)
	}

	var (
		storage   service.PhotoStorage   = h.storage
		publisher service.EventPublisher = h.publisher
	)
	if h.storageOverride != nil {
		storage = h.storageOverride
	}
	if h.publisherOverride != nil {
		publisher = h.publisherOverride
	}

	cfg := testConfig()
	cfg.AutoAssign.DefaultTechnicianPhone = phone
	cfg.AutoAssign.ApplyToClientComplaints = applyToClients
	logger := discardLogger()

	h.notifier = NewNotificationService(NotificationServiceParams{
		NotificationRepo: h.notifications,
		ComplaintRepo:    h.complaints,
		Channel:          h.channel,
		Metrics:          h.metrics,
		Logger:           logger,
	})
	h.policy = NewAutoAssignmentPolicy(AutoAssignmentPolicyParams{
		ComplaintRepo: h.complaints,
		DirectoryRepo: h.directory,
		Notifier:      h.notifier,
		Publisher:     publisher,
		Metrics:       h.metrics,
		Config:        cfg,
		Logger:        logger,
	})

	var err error
	h.complaintSvc, err = NewComplaintService(ComplaintServiceParams{
		ComplaintRepo: h.complaints,
		DirectoryRepo: h.directory,
		Identifiers:   NewIdentifierService(staticDirectory{"kharadi": "KHA", "viman nagar": "VMN"}, h.sequences),
		Policy:        h.policy,
		Notifier:      h.notifier,
		Storage:       storage,
		Publisher:     publisher,
		Metrics:       h.metrics,
		Config:        cfg,
		Logger:        logger,
	})
	require.NoError(t, err)

	h.billingSvc, err = NewBillingService(BillingServiceParams{
		BillingRepo:   h.billing,
		ComplaintRepo: h.complaints,
		TxManager:     &memTxManager{billingRepo: h.billing, complaintRepo: h.complaints},
		Storage:       storage,
		Publisher:     publisher,
		Config:        cfg,
		Logger:        logger,
	})
	require.NoError(t, err)

	return h
}

func (h *harness) technicianActor() entity.Actor {
	return entity.NewTechnicianActor(h.technician.ID)
}

func (h *harness) clientActor() entity.Actor {
	return entity.NewClientActor(h.client.ID)
}

// seed stores a complaint directly in the given status.
func (h *harness) seed(t *testing.T, status entity.ComplaintStatus) *entity.Complaint {
	t.Helper()

	clientID := h.client.ID
	complaint := &entity.Complaint{
		ID:               uuid.New(),
		ComplaintID:      FormatComplaintID("KHA", int64(len(h.complaints.complaints)+1)),
		Status:           status,
		Title:            "Leaking tap",
		Description:      "Tap in the wash area is leaking",
		Location:         "Kharadi",
		Priority:         entity.PriorityMedium,
		Photos:           []entity.Photo{},
		ClientID:         &clientID,
		CreatedByID:      clientID,
		CreatedByRole:    entity.RoleClient,
		ResolutionPhotos: []entity.Photo{},
	}
	if status != entity.ComplaintStatusPending {
		technicianID := h.technician.ID
		adminID := h.admin.ID()
		complaint.AssignedTechnicianID = &technicianID
		complaint.AssignedBy = &adminID
	}
	require.NoError(t, h.complaints.Create(t.Context(), complaint))

	return complaint
}
