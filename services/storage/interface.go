package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"medibook/config"
)

// StorageService stores user-supplied images and returns their public URL.
type StorageService interface {
	// Upload stores the content under folder and returns its public URL.
	Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error)
	// Delete removes a previously uploaded file by its public URL.
	Delete(ctx context.Context, fileURL string) error
}

// NewStorageService selects the implementation configured by STORAGE_DRIVER.
func NewStorageService() (StorageService, error) {
	cfg := config.AppConfig
	switch strings.ToLower(cfg.StorageDriver) {
	case "", "local":
		return NewLocalStorageService(cfg.UploadDir, cfg.PublicBaseURL), nil
	case "cloudinary":
		return NewCloudinaryStorageService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// File is an uploaded file handed to a service.
type File struct {
	Reader   io.Reader
	Filename string
}
