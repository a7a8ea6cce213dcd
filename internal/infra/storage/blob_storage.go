// Package storage keeps uploaded photos in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"servicedesk/config"
	"servicedesk/internal/domain/lifecycle"
	"servicedesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const (
	defaultBucketURL   = "mem://"
	defaultContentType = "application/octet-stream"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the blob photo storage.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.PhotoStorage, error) {
	bucketURL := params.Config.Storage.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("No storage bucket configured, photos are kept in memory")
		bucketURL = defaultBucketURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", bucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Photo storage ready", slog.String("bucket", redactBucketURL(bucketURL)))

	return NewBlobStorage(bucket, params.Config.Storage.PublicBaseURL), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.PhotoStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload writes the file under folder with a random name that keeps the original extension.
func (s *blobStorage) Upload(ctx context.Context, file *service.FileUpload, folder string) (*service.StoredFile, error) {
	if file == nil || file.Content == nil {
		return nil, errors.New("file content is required")
	}

	ext := strings.ToLower(filepath.Ext(file.FileName))
	key := path.Join(folder, uuid.NewString()+ext)

	opts := &blob.WriterOptions{
		ContentType: contentType(file.ContentType, ext),
		Metadata: map[string]string{
			"original_name": file.FileName,
		},
	}
	if err := s.bucket.Upload(ctx, key, file.Content, opts); err != nil {
		return nil, errors.Wrapf(err, "failed to upload %q", file.FileName)
	}

	return &service.StoredFile{
		URL:          s.publicURL(key),
		StorageKey:   key,
		OriginalName: file.FileName,
	}, nil
}

// contentType falls back to the extension, then to octet-stream, since
// Bucket.Upload rejects an empty content type.
func contentType(declared, ext string) string {
	if declared = strings.TrimSpace(declared); declared != "" {
		return declared
	}
	if byExt := mime.TypeByExtension(ext); byExt != "" {
		return byExt
	}

	return defaultContentType
}

// Delete removes the object. A missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return nil
	}

	err := s.bucket.Delete(ctx, storageKey)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %q", storageKey)
	}

	return nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}

// redactBucketURL drops the query string, which may carry credentials.
func redactBucketURL(bucketURL string) string {
	if i := strings.IndexByte(bucketURL, '?'); i >= 0 {
		return bucketURL[:i]
	}

	return bucketURL
}
