package impl

import (
	"context"
	"fmt"
	"strings"

	"servicedesk/internal/domain/repository"
	"servicedesk/internal/domain/service"
	"servicedesk/internal/usecase"

	"github.com/pkg/errors"
)

const complaintIDPrefix = "CMP"

type identifierService struct {
	directory    service.StoreDirectory
	sequenceRepo repository.SequenceRepository
}

// NewIdentifierService creates the complaint identifier composer.
func NewIdentifierService(directory service.StoreDirectory, sequenceRepo repository.SequenceRepository) usecase.IdentifierComposer {
	return &identifierService{
		directory:    directory,
		sequenceRepo: sequenceRepo,
	}
}

// Compose maps the location to its store code and appends the next value of that store's series.
func (s *identifierService) Compose(ctx context.Context, location string) (string, error) {
	code := s.directory.CodeFor(location)

	seq, err := s.sequenceRepo.NextValue(ctx, code)
	if err != nil {
		return "", errors.Wrapf(err, "failed to allocate sequence for store code %s", code)
	}

	return FormatComplaintID(code, seq), nil
}

// FormatComplaintID renders CMP-<CODE>-<NNNNNN>.
func FormatComplaintID(code string, seq int64) string {
	return fmt.Sprintf("%s-%s-%06d", complaintIDPrefix, code, seq)
}

// storeCodeOf extracts the store code from a complaint identifier.
func storeCodeOf(complaintID string) string {
	parts := strings.Split(complaintID, "-")
	if len(parts) != 3 || parts[0] != complaintIDPrefix {
		return ""
	}

	return parts[1]
}
