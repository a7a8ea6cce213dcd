package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "servicedesk/internal/delivery/context"
	"servicedesk/internal/domain/entity"
	domainerrors "servicedesk/internal/domain/errors"
	"servicedesk/internal/domain/service"
	"servicedesk/internal/util"

	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
)

const (
	complaintPhotoFolder  = "complaints"
	resolutionPhotoFolder = "resolutions"
	billPhotoFolder       = "billing"
)

// photoUploader stores batches of photos all-or-nothing.
type photoUploader struct {
	storage      service.PhotoStorage
	maxPhotoSize int64
	logger       *slog.Logger
}

func newPhotoUploader(storage service.PhotoStorage, maxPhotoSize string, logger *slog.Logger) (*photoUploader, error) {
	var limit int64
	if maxPhotoSize != "" {
		parsed, err := bytes.Parse(maxPhotoSize)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid max photo size %q", maxPhotoSize)
		}
		limit = parsed
	}

	return &photoUploader{
		storage:      storage,
		maxPhotoSize: limit,
		logger:       logger,
	}, nil
}

func (u *photoUploader) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, u.logger)
}

// validate rejects oversized files before anything is uploaded.
func (u *photoUploader) validate(files []*service.FileUpload) error {
	if u.maxPhotoSize <= 0 {
		return nil
	}
	for _, f := range files {
		if f.Size > u.maxPhotoSize {
			return domainerrors.NewValidationError("photo %q exceeds the %s limit", f.FileName, util.FormatBytes(u.maxPhotoSize))
		}
	}

	return nil
}

// uploadAll stores every file under folder. If any upload fails, the files
// already stored by this call are deleted and no photos are returned.
func (u *photoUploader) uploadAll(ctx context.Context, files []*service.FileUpload, folder string) ([]entity.Photo, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if err := u.validate(files); err != nil {
		return nil, err
	}

	uploaded := make([]entity.Photo, 0, len(files))
	for i, f := range files {
		stored, err := u.storage.Upload(ctx, f, folder)
		if err != nil {
			u.log(ctx).Error("Photo upload failed, rolling back batch",
				slog.String("folder", folder),
				slog.String("file", f.FileName),
				slog.Int("position", i+1),
				slog.Int("rolled_back", len(uploaded)),
				slog.Any("error", err),
			)
			u.deleteAll(ctx, photoKeys(uploaded))

			return nil, domainerrors.ErrPhotoUploadFailed.WithDetails(fmt.Sprintf("photo %d of %d (%s)", i+1, len(files), f.FileName))
		}

		uploaded = append(uploaded, entity.Photo{
			URL:          stored.URL,
			StorageKey:   stored.StorageKey,
			OriginalName: stored.OriginalName,
		})
	}

	return uploaded, nil
}

// deleteAll removes stored files; failures are logged and otherwise ignored.
func (u *photoUploader) deleteAll(ctx context.Context, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := u.storage.Delete(ctx, key); err != nil {
			u.log(ctx).Warn("Failed to delete photo from storage",
				slog.String("storage_key", key),
				slog.Any("error", err),
			)
		}
	}
}

func photoKeys(photos []entity.Photo) []string {
	keys := make([]string, 0, len(photos))
	for _, p := range photos {
		keys = append(keys, p.StorageKey)
	}

	return keys
}
