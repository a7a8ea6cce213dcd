package storage

import (
	"strings"
	"testing"

	"servicedesk/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, "https://cdn.example.com/photos/")
	ctx := t.Context()

	stored, err := storage.Upload(ctx, &service.FileUpload{
		FieldName:   "photos",
		FileName:    "Leak.JPG",
		ContentType: "image/jpeg",
		Size:        4,
		Content:     strings.NewReader("jpeg"),
	}, "complaints")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.StorageKey, "complaints/"))
	assert.True(t, strings.HasSuffix(stored.StorageKey, ".jpg"))
	assert.Equal(t, "https://cdn.example.com/photos/"+stored.StorageKey, stored.URL)
	assert.Equal(t, "Leak.JPG", stored.OriginalName)

	content, err := bucket.ReadAll(ctx, stored.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(content))

	attrs, err := bucket.Attributes(ctx, stored.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "Leak.JPG", attrs.Metadata["original_name"])

	require.NoError(t, storage.Delete(ctx, stored.StorageKey))
	exists, err := bucket.Exists(ctx, stored.StorageKey)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again is a no-op.
	assert.NoError(t, storage.Delete(ctx, stored.StorageKey))
	assert.NoError(t, storage.Delete(ctx, ""))
}

func TestBlobStorage_DistinctKeys(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, "")
	upload := func() *service.StoredFile {
		stored, err := storage.Upload(t.Context(), &service.FileUpload{
			FileName: "bill.png",
			Content:  strings.NewReader("png"),
		}, "billing")
		require.NoError(t, err)

		return stored
	}

	first, second := upload(), upload()
	assert.NotEqual(t, first.StorageKey, second.StorageKey)
	assert.Equal(t, "/"+first.StorageKey, first.URL)
}

func TestBlobStorage_UploadWithoutDeclaredContentType(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	storage := NewBlobStorage(bucket, "")

	tests := []struct {
		name     string
		fileName string
		declared string
		want     string
	}{
		{name: "declared wins", fileName: "receipt.png", declared: "image/webp", want: "image/webp"},
		{name: "from extension", fileName: "after.PNG", want: "image/png"},
		{name: "unknown extension", fileName: "scan.zzq", want: defaultContentType},
		{name: "no extension", fileName: "photo", want: defaultContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored, err := storage.Upload(t.Context(), &service.FileUpload{
				FieldName:   "resolutionPhotos",
				FileName:    tt.fileName,
				ContentType: tt.declared,
				Content:     strings.NewReader("bytes"),
			}, "resolutions")
			require.NoError(t, err)

			attrs, err := bucket.Attributes(t.Context(), stored.StorageKey)
			require.NoError(t, err)
			assert.Equal(t, tt.want, attrs.ContentType)
		})
	}
}

func TestBlobStorage_RejectsMissingContent(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	_, err := NewBlobStorage(bucket, "").Upload(t.Context(), &service.FileUpload{FileName: "a.jpg"}, "complaints")
	assert.Error(t, err)
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://photos", redactBucketURL("s3://photos?region=ap-south-1&awssdk=v2"))
	assert.Equal(t, "mem://", redactBucketURL("mem://"))
}
