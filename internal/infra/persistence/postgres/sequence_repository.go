package postgres

import (
	"context"

	"servicedesk/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// nextValueSQL increments the series in one statement; concurrent callers
// serialize on the row lock taken by the upsert.
const nextValueSQL = `
INSERT INTO sequence_counters (series_key, seq, updated_at)
VALUES (?, 1, NOW())
ON CONFLICT (series_key)
DO UPDATE SET seq = sequence_counters.seq + 1, updated_at = NOW()
RETURNING seq`

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository is the constructor for sequenceRepository.
func NewSequenceRepository(db *gorm.DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

// NextValue atomically allocates the next value of the series.
func (repo *sequenceRepository) NextValue(ctx context.Context, key string) (int64, error) {
	var seq int64
	if err := repo.db.WithContext(ctx).Raw(nextValueSQL, key).Scan(&seq).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to allocate next value for series %s", key)
	}
	if seq == 0 {
		return 0, errors.Errorf("sequence for series %s returned no value", key)
	}

	return seq, nil
}
