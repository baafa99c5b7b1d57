package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// PublicPrefix is the URL path under which local uploads are served.
const PublicPrefix = "/uploads"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// LocalStorageService writes files below a directory served by the HTTP router.
type LocalStorageService struct {
	root    string
	baseURL string
}

func NewLocalStorageService(root, baseURL string) *LocalStorageService {
	return &LocalStorageService{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload writes r to <root>/<folder>/<unixmillis>_<filename>.
func (s *LocalStorageService) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	sub := filepath.Clean("/" + folder)
	dir := filepath.Join(s.root, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), unsafeChars.ReplaceAllString(filepath.Base(filename), "_"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	rel := strings.TrimPrefix(filepath.ToSlash(filepath.Join(sub, name)), "/")
	return fmt.Sprintf("%s%s/%s", s.baseURL, PublicPrefix, rel), nil
}

// Delete removes the file a URL returned by Upload points to.
func (s *LocalStorageService) Delete(ctx context.Context, fileURL string) error {
	idx := strings.Index(fileURL, PublicPrefix+"/")
	if idx < 0 {
		return fmt.Errorf("not a local upload url: %s", fileURL)
	}
	rel := filepath.Clean("/" + fileURL[idx+len(PublicPrefix)+1:])
	if err := os.Remove(filepath.Join(s.root, rel)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
