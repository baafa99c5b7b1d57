package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUploadAndDelete(t *testing.T) {
	root := t.TempDir()
	svc := NewLocalStorageService(root, "http://localhost:8080/")

	url, err := svc.Upload(context.Background(), strings.NewReader("img"), "my photo.png", "services")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/services/"))
	assert.True(t, strings.HasSuffix(url, "_my_photo.png"))

	name := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(root, "services", name))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))

	require.NoError(t, svc.Delete(context.Background(), url))
	_, err = os.Stat(filepath.Join(root, "services", name))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageStaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	svc := NewLocalStorageService(root, "http://x")

	url, err := svc.Upload(context.Background(), strings.NewReader("a"), "../../etc/passwd", "../../up")
	require.NoError(t, err)
	assert.NotContains(t, url, "..")
	assert.True(t, strings.HasPrefix(url, "http://x/uploads/up/"))
}

func TestPublicIDFromURL(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1712/medibook/users/abc.jpg": "medibook/users/abc",
		"https://res.cloudinary.com/demo/image/upload/medibook/x.png":               "medibook/x",
		"https://example.com/other.png":                                             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, publicIDFromURL(in), in)
	}
}
