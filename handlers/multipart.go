package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"medibook/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errMissingDTO = errors.New("missing dto part")

// bindMultipartDTO decodes the JSON `dto` part of a multipart request and runs
// the binding validator on it. Clients send the part either as a plain form
// field or as a file part with a JSON content type.
func bindMultipartDTO(c *gin.Context, dst interface{}) error {
	raw := c.PostForm("dto")
	if raw == "" {
		fh, err := c.FormFile("dto")
		if err != nil {
			return errMissingDTO
		}
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("failed to open dto part: %w", err)
		}
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("failed to read dto part: %w", err)
		}
		raw = string(b)
	}
	if raw == "" {
		return errMissingDTO
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(dst)
}

// optionalFile opens the named file part. It returns a nil file when the part is
// absent; the returned close func is always safe to call.
func optionalFile(c *gin.Context, field string) (*storage.File, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	return &storage.File{Reader: f, Filename: fh.Filename}, func() { f.Close() }, nil
}
