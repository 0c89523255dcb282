package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"schememonitor/internal/constant"
)

// Example output for "site.JPG": ".jpg"
func FileExtension(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}

func IsAllowedImageExtension(fileName string) bool {
	ext := FileExtension(fileName)
	for _, allowed := range constant.ALLOWED_IMAGE_EXTENSIONS {
		if ext == allowed {
			return true
		}
	}

	return false
}

// Stored object names are opaque so that uploads with the same original
// filename never collide. Example output for "site.jpg":
// "7d5c2b1a-....jpg"
func NewImageObjectName(fileName string) string {
	return fmt.Sprintf("%s%s", uuid.NewString(), FileExtension(fileName))
}

func GetTempDir() string {
	return fmt.Sprintf("%s/schememonitor", os.TempDir())
}

func CreateTemp(pattern string) (*os.File, error) {
	tempDir := GetTempDir()
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	return os.CreateTemp(tempDir, pattern)
}
