// Package service declares the external collaborators the core calls through narrow interfaces.
package service

import (
	"context"
	"io"
)

// FileUpload is an inbound file handed to the photo storage.
type FileUpload struct {
	FieldName   string    // Multipart field the file arrived under.
	FileName    string    // Original client-side file name.
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredFile describes a file persisted by the photo storage.
type StoredFile struct {
	URL          string
	StorageKey   string
	OriginalName string
}

// PhotoStorage persists evidence photos outside the database.
type PhotoStorage interface {
	// Upload stores the file under folder and returns where it can be fetched.
	Upload(ctx context.Context, file *FileUpload, folder string) (*StoredFile, error)

	// Delete removes a stored file. Callers treat failures as best-effort.
	Delete(ctx context.Context, storageKey string) error
}
