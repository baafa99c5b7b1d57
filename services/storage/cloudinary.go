package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStorageService(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStorageService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStorageService) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	params := uploader.UploadParams{
		Folder:   path.Join(s.folder, folder),
		PublicID: strings.TrimSuffix(path.Base(filename), path.Ext(filename)),
	}
	result, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no url: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

func (s *CloudinaryStorageService) Delete(ctx context.Context, fileURL string) error {
	publicID := publicIDFromURL(fileURL)
	if publicID == "" {
		return fmt.Errorf("cannot derive public id from %s", fileURL)
	}
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// publicIDFromURL turns .../upload/v123/folder/name.jpg into folder/name.
func publicIDFromURL(fileURL string) string {
	const marker = "/upload/"
	idx := strings.Index(fileURL, marker)
	if idx < 0 {
		return ""
	}
	rest := fileURL[idx+len(marker):]
	if seg, tail, ok := strings.Cut(rest, "/"); ok && len(seg) > 1 && seg[0] == 'v' && isDigits(seg[1:]) {
		rest = tail
	}
	return strings.TrimSuffix(rest, path.Ext(rest))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
