package ports

import "context"

// UploadSource is a user-selected file waiting to be read into the vault
type UploadSource interface {
	// Name is the file name shown in the vault
	Name() string

	// ReadAll reads the whole content and reports its MIME type
	ReadAll(ctx context.Context) (mimeType string, content []byte, err error)
}
