package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"

	"servicedesk/config"
	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/repository"
	"servicedesk/internal/domain/service"
	"servicedesk/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.MaxPhotoSize = "5MB"

	return cfg
}

type memSequenceRepo struct {
	mu     sync.Mutex
	values map[string]int64
}

func newMemSequenceRepo() *memSequenceRepo {
	return &memSequenceRepo{values: make(map[string]int64)}
}

func (r *memSequenceRepo) NextValue(_ context.Context, key string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key]++

	return r.values[key], nil
}

type memComplaintRepo struct {
	mu         sync.Mutex
	complaints map[uuid.UUID]*entity.Complaint
	createErr  error

	// beforeWrite runs inside conditional writes, letting tests simulate a concurrent change.
	beforeWrite  func(c *entity.Complaint)
	// beforeDelete runs when DeletePending is entered.
	beforeDelete func()
}

func newMemComplaintRepo() *memComplaintRepo {
	return &memComplaintRepo{complaints: make(map[uuid.UUID]*entity.Complaint)}
}

func (r *memComplaintRepo) Create(_ context.Context, complaint *entity.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, c := range r.complaints {
		if c.ComplaintID == complaint.ComplaintID {
			return repository.ErrComplaintIDTaken
		}
	}
	stored := *complaint
	r.complaints[complaint.ID] = &stored

	return nil
}

func (r *memComplaintRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.complaints[id]
	if !ok {
		return nil, repository.ErrComplaintNotFound
	}
	found := *c

	return &found, nil
}

func (r *memComplaintRepo) List(_ context.Context, filter entity.ComplaintFilter) ([]*entity.Complaint, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Complaint
	for _, c := range r.complaints {
		if filter.ClientID != nil && !c.IsOwnedBy(*filter.ClientID) {
			continue
		}
		if filter.AssignedTechnicianID != nil && !c.IsAssignedTo(*filter.AssignedTechnicianID) {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && c.Priority != filter.Priority {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Title+" "+c.Description+" "+c.ComplaintID), strings.ToLower(filter.Search)) {
			continue
		}
		found := *c
		matched = append(matched, &found)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := min(filter.Offset, len(matched))
	end := len(matched)
	if filter.Limit > 0 {
		end = min(start+filter.Limit, len(matched))
	}

	return matched[start:end], total, nil
}

func (r *memComplaintRepo) UpdatePending(_ context.Context, complaint *entity.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.complaints[complaint.ID]
	if !ok {
		return repository.ErrComplaintNotFound
	}
	if r.beforeWrite != nil {
		r.beforeWrite(c)
	}
	if c.Status != entity.ComplaintStatusPending {
		return repository.ErrStatusPreconditionFailed
	}
	stored := *complaint
	r.complaints[complaint.ID] = &stored

	return nil
}

func (r *memComplaintRepo) ApplyStatusChange(_ context.Context, id uuid.UUID, change *entity.StatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.complaints[id]
	if !ok {
		return repository.ErrComplaintNotFound
	}
	if r.beforeWrite != nil {
		r.beforeWrite(c)
	}
	if c.Status != change.From {
		return repository.ErrStatusPreconditionFailed
	}
	r.complaints[id] = applyStatusChange(c, change)

	return nil
}

func (r *memComplaintRepo) DeletePending(_ context.Context, id uuid.UUID) error {
	if r.beforeDelete != nil {
		r.beforeDelete()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.complaints[id]
	if !ok {
		return repository.ErrComplaintNotFound
	}
	if c.Status != entity.ComplaintStatusPending {
		return repository.ErrStatusPreconditionFailed
	}
	delete(r.complaints, id)

	return nil
}

type memNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
	createErr     error
}

func (r *memNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	stored := *notification
	r.notifications = append(r.notifications, &stored)

	return nil
}

func (r *memNotificationRepo) ListByComplaint(_ context.Context, complaintID uuid.UUID) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].ComplaintID == complaintID {
			out = append(out, r.notifications[i])
		}
	}

	return out, nil
}

func (r *memNotificationRepo) all() []*entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.notifications)
}

type memBillingRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.BillingRecord
}

func newMemBillingRepo() *memBillingRepo {
	return &memBillingRepo{records: make(map[uuid.UUID]*entity.BillingRecord)}
}

func cloneRecord(r *entity.BillingRecord) *entity.BillingRecord {
	c := *r
	c.Materials = slices.Clone(r.Materials)

	return &c
}

func (r *memBillingRepo) Create(_ context.Context, record *entity.BillingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.ComplaintID == record.ComplaintID {
			return repository.ErrBillingRecordExists
		}
	}
	r.records[record.ID] = cloneRecord(record)

	return nil
}

func (r *memBillingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BillingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, repository.ErrBillingRecordNotFound
	}

	return cloneRecord(rec), nil
}

func (r *memBillingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.BillingRecord, error) {
	return r.FindByID(ctx, id)
}

func (r *memBillingRepo) ExistsForComplaint(_ context.Context, complaintID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ComplaintID == complaintID {
			return true, nil
		}
	}

	return false, nil
}

func (r *memBillingRepo) List(_ context.Context, filter entity.BillingFilter) ([]*entity.BillingRecord, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.BillingRecord
	for _, rec := range r.records {
		if filter.TechnicianID != nil && rec.TechnicianID != *filter.TechnicianID {
			continue
		}
		matched = append(matched, cloneRecord(rec))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	return matched, int64(len(matched)), nil
}

func (r *memBillingRepo) Update(_ context.Context, record *entity.BillingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return repository.ErrBillingRecordNotFound
	}
	r.records[record.ID] = cloneRecord(record)

	return nil
}

type memTxManager struct {
	billingRepo   repository.BillingRepository
	complaintRepo repository.ComplaintRepository
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.TxScope) error) error {
	return fn(m)
}

func (m *memTxManager) Billing() repository.BillingRepository {
	return m.billingRepo
}

func (m *memTxManager) Complaints() repository.ComplaintRepository {
	return m.complaintRepo
}

type memDirectoryRepo struct {
	technicians []*entity.Technician
	clients     []*entity.Client
	findErr     error
}

func (r *memDirectoryRepo) FindTechnicianByID(_ context.Context, id uuid.UUID) (*entity.Technician, error) {
	for _, t := range r.technicians {
		if t.ID == id {
			return t, nil
		}
	}

	return nil, repository.ErrTechnicianNotFound
}

func (r *memDirectoryRepo) FindActiveTechnicianByPhone(_ context.Context, phone string) (*entity.Technician, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, t := range r.technicians {
		if t.IsActive && util.NormalizeLocalNumber(t.Phone) == phone {
			return t, nil
		}
	}

	return nil, repository.ErrTechnicianNotFound
}

func (r *memDirectoryRepo) FindClientByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, repository.ErrClientNotFound
}

// memStorage is an in-memory photo store that can fail chosen uploads.
type memStorage struct {
	mu      sync.Mutex
	objects map[string]string
	uploads int
	failOn  int // 1-based upload number to fail; 0 never fails
	deleted []string
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string]string)}
}

func (s *memStorage) Upload(_ context.Context, file *service.FileUpload, folder string) (*service.StoredFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads++
	if s.failOn == s.uploads {
		return nil, errors.New("storage unavailable")
	}
	key := folder + "/" + uuid.NewString()
	s.objects[key] = file.FileName

	return &service.StoredFile{
		URL:          "https://cdn.test/" + key,
		StorageKey:   key,
		OriginalName: file.FileName,
	}, nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)

	return nil
}

func (s *memStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.objects)
}

func (s *memStorage) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]

	return ok
}

// recordingChannel accepts every message unless told otherwise.
type recordingChannel struct {
	mu   sync.Mutex
	sent []*service.OutboundMessage
	err  error
}

func (c *recordingChannel) Send(_ context.Context, msg *service.OutboundMessage) (*service.SendResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	c.sent = append(c.sent, msg)

	return &service.SendResult{Success: true, ExternalMessageID: "msg-" + uuid.NewString(), Provider: "test"}, nil
}

func (c *recordingChannel) Name() string { return "test" }

func (c *recordingChannel) messages() []*service.OutboundMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.sent)
}

type staticDirectory map[string]string

func (d staticDirectory) CodeFor(name string) string {
	if code, ok := d[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}

	return "OTH"
}

func photoUpload(name string) *service.FileUpload {
	return &service.FileUpload{
		FieldName:   "photos",
		FileName:    name,
		ContentType: "image/jpeg",
		Size:        1024,
		Content:     strings.NewReader("jpeg"),
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.ComplaintEvent
	err    error
}

func (p *recordingPublisher) PublishComplaintEvent(_ context.Context, event *entity.ComplaintEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []entity.ComplaintEventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]entity.ComplaintEventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}

	return types
}

// countingMetrics keys every observation as "<metric>:<labels>".
type countingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{counts: map[string]int{}}
}

func (m *countingMetrics) inc(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
}

func (m *countingMetrics) ComplaintCreated(storeCode string) { m.inc("created:" + storeCode) }

func (m *countingMetrics) StatusChanged(from, to string) { m.inc("status:" + from + "->" + to) }

func (m *countingMetrics) NotificationDispatched(kind, status string) {
	m.inc("notification:" + kind + "/" + status)
}

func (m *countingMetrics) snapshot() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return maps.Clone(m.counts)
}
