package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// SaveUpload writes a multipart file into dir under the given name,
// creating the directory on first use. The write is synchronous; callers
// surface failures to the client instead of retrying.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return c.SaveUploadedFile(file, filepath.Join(dir, name))
}
