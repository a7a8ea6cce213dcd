package impl

import (
	"testing"

	"servicedesk/internal/domain/entity"
	"servicedesk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoAssignmentPolicy_Apply(t *testing.T) {
	tests := []struct {
		name     string
		opts     []harnessOption
		status   entity.ComplaintStatus
		setup    func(h *harness)
		assigned bool
		reason   usecase.AutoAssignReason
	}{
		{
			name:     "assigns pending complaint to default technician",
			status:   entity.ComplaintStatusPending,
			assigned: true,
			reason:   usecase.AutoAssignReasonAssigned,
		},
		{
			name:   "already assigned",
			status: entity.ComplaintStatusAssigned,
			reason: usecase.AutoAssignReasonAlreadyAssigned,
		},
		{
			name:   "blank default phone",
			opts:   []harnessOption{withDefaultPhone("  ")},
			status: entity.ComplaintStatusPending,
			reason: usecase.AutoAssignReasonMissingDefaultPhone,
		},
		{
			name:   "default phone too short to normalize",
			opts:   []harnessOption{withDefaultPhone("12345")},
			status: entity.ComplaintStatusPending,
			reason: usecase.AutoAssignReasonMissingDefaultPhone,
		},
		{
			name:   "no technician with that phone",
			opts:   []harnessOption{withDefaultPhone("9123456780")},
			status: entity.ComplaintStatusPending,
			reason: usecase.AutoAssignReasonTechnicianNotFound,
		},
		{
			name:   "default technician inactive",
			status: entity.ComplaintStatusPending,
			setup:  func(h *harness) { h.technician.IsActive = false },
			reason: usecase.AutoAssignReasonTechnicianNotFound,
		},
		{
			name:   "directory lookup fails",
			status: entity.ComplaintStatusPending,
			setup:  func(h *harness) { h.directory.findErr = errors.New("directory offline") },
			reason: usecase.AutoAssignReasonAssignmentFailed,
		},
		{
			name:   "lost race with an admin assignment",
			status: entity.ComplaintStatusPending,
			setup: func(h *harness) {
				h.complaints.beforeWrite = func(c *entity.Complaint) { c.Status = entity.ComplaintStatusAssigned }
			},
			reason: usecase.AutoAssignReasonAssignmentFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.opts...)
			complaint := h.seed(t, tt.status)
			if tt.setup != nil {
				tt.setup(h)
			}

			result := h.policy.Apply(t.Context(), complaint, h.technicianActor())

			require.NotNil(t, result)
			assert.Equal(t, tt.assigned, result.Assigned)
			assert.Equal(t, tt.reason, result.Reason)

			if tt.assigned {
				require.NotNil(t, result.TechnicianID)
				assert.Equal(t, h.technician.ID, *result.TechnicianID)
				require.NotNil(t, result.Complaint)
				assert.Equal(t, entity.ComplaintStatusAssigned, result.Complaint.Status)
				require.NotNil(t, result.Complaint.AssignedBy)
				assert.Equal(t, h.technician.ID, *result.Complaint.AssignedBy)
				assert.Len(t, h.channel.messages(), 1)

				return
			}

			assert.Nil(t, result.TechnicianID)
			assert.Empty(t, h.channel.messages())
		})
	}
}
