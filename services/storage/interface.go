package storage

import "context"

// StorageService defines the interface for image storage operations. Files are
// addressed by the provider's opaque public ID.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (url, publicID string, err error)
	DeleteFile(ctx context.Context, publicID string) error
}
