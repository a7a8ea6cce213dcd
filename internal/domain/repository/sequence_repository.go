// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
)

// SequenceRepository allocates monotonically increasing values per keyed series.
type SequenceRepository interface {
	// NextValue atomically increments the counter for key and returns the new value.
	// The first call for an unseen key returns 1.
	NextValue(ctx context.Context, key string) (int64, error)
}
