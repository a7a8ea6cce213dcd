package postgres

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/repository"
	"servicedesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testDSNEnv = "SERVICEDESK_TEST_POSTGRES_DSN"

// openTestDB connects to the database named by SERVICEDESK_TEST_POSTGRES_DSN
// and migrates every table, or skips the test when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping PostgreSQL integration test", testDSNEnv)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	models := append(model.All(), &model.TechnicianModel{}, &model.ClientModel{})
	require.NoError(t, db.AutoMigrate(models...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTestComplaint(status entity.ComplaintStatus) *entity.Complaint {
	now := time.Now().UTC().Truncate(time.Microsecond)

	return &entity.Complaint{
		ID:            uuid.New(),
		ComplaintID:   "CMP-TST-" + uuid.NewString()[:8],
		Status:        status,
		Title:         "Integration",
		Description:   "Created by integration test",
		Location:      "Kharadi",
		Priority:      entity.PriorityLow,
		CreatedByID:   uuid.New(),
		CreatedByRole: entity.RoleAdmin,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestSequenceRepository_NextValue_Concurrent(t *testing.T) {
	db := openTestDB(t)
	repo := NewSequenceRepository(db)
	key := "T" + uuid.NewString()[:6]

	const callers = 40
	values := make([]int64, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.NextValue(t.Context(), key)
			assert.NoError(t, err)
			values[i] = v
		}()
	}
	wg.Wait()

	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	for i, v := range values {
		assert.Equal(t, int64(i+1), v, "values must be 1..n with no gaps or duplicates")
	}
}

func TestComplaintRepository_ApplyStatusChange_Conditional(t *testing.T) {
	db := openTestDB(t)
	repo := NewComplaintRepository(db)
	ctx := t.Context()

	complaint := newTestComplaint(entity.ComplaintStatusPending)
	complaint.Photos = []entity.Photo{{URL: "https://cdn.test/a", StorageKey: "complaints/a"}}
	require.NoError(t, repo.Create(ctx, complaint))

	technicianID, adminID := uuid.New(), uuid.New()
	change := &entity.StatusChange{
		From:                 entity.ComplaintStatusPending,
		To:                   entity.ComplaintStatusAssigned,
		AssignedTechnicianID: &technicianID,
		AssignedBy:           &adminID,
		At:                   time.Now().UTC(),
	}
	require.NoError(t, repo.ApplyStatusChange(ctx, complaint.ID, change))
	assert.ErrorIs(t, repo.ApplyStatusChange(ctx, complaint.ID, change), repository.ErrStatusPreconditionFailed)
	assert.ErrorIs(t, repo.ApplyStatusChange(ctx, uuid.New(), change), repository.ErrComplaintNotFound)

	stored, err := repo.FindByID(ctx, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusAssigned, stored.Status)
	assert.True(t, stored.IsAssignedTo(technicianID))
	assert.NotNil(t, stored.AssignedAt)
	require.Len(t, stored.Photos, 1)
	assert.Equal(t, "complaints/a", stored.Photos[0].StorageKey)

	assert.ErrorIs(t, repo.DeletePending(ctx, complaint.ID), repository.ErrStatusPreconditionFailed)
}

func TestComplaintRepository_CreateDuplicateIdentifier(t *testing.T) {
	db := openTestDB(t)
	repo := NewComplaintRepository(db)

	first := newTestComplaint(entity.ComplaintStatusPending)
	require.NoError(t, repo.Create(t.Context(), first))

	second := newTestComplaint(entity.ComplaintStatusPending)
	second.ComplaintID = first.ComplaintID
	assert.ErrorIs(t, repo.Create(t.Context(), second), repository.ErrComplaintIDTaken)
}

func TestBillingRepository_OnePerComplaint(t *testing.T) {
	db := openTestDB(t)
	repo := NewBillingRepository(db)
	ctx := t.Context()
	complaintID := uuid.New()

	record := func() *entity.BillingRecord {
		return &entity.BillingRecord{
			ID:            uuid.New(),
			ComplaintID:   complaintID,
			TechnicianID:  uuid.New(),
			MaterialsUsed: true,
			Materials: []entity.Material{{
				ID:       uuid.New(),
				Name:     "Pipe",
				Quantity: decimal.RequireFromString("1.5"),
				Price:    decimal.RequireFromString("120.40"),
			}},
		}
	}

	first := record()
	require.NoError(t, repo.Create(ctx, first))
	assert.ErrorIs(t, repo.Create(ctx, record()), repository.ErrBillingRecordExists)

	exists, err := repo.ExistsForComplaint(ctx, complaintID)
	require.NoError(t, err)
	assert.True(t, exists)

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, stored.Materials, 1)
	assert.True(t, stored.Total().Equal(decimal.RequireFromString("180.6")))
}

func TestDirectoryRepository_FindActiveTechnicianByPhone(t *testing.T) {
	db := openTestDB(t)
	repo := NewDirectoryRepository(db)
	suffix := fmt.Sprintf("%04d", time.Now().UnixNano()%10000)

	active := &model.TechnicianModel{ID: uuid.New(), Name: "Asha", Phone: "+91 98111-1" + suffix, IsActive: true}
	require.NoError(t, db.Create(active).Error)
	// GORM skips zero values on insert, so deactivate explicitly.
	inactive := &model.TechnicianModel{ID: uuid.New(), Name: "Old", Phone: "98222 2" + suffix, IsActive: true}
	require.NoError(t, db.Create(inactive).Error)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	found, err := repo.FindActiveTechnicianByPhone(t.Context(), "981111"+suffix)
	require.NoError(t, err)
	assert.Equal(t, active.ID, found.ID)

	_, err = repo.FindActiveTechnicianByPhone(t.Context(), "982222"+suffix)
	assert.ErrorIs(t, err, repository.ErrTechnicianNotFound)
}
