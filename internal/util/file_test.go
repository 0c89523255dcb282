package util

import (
	"strings"
	"testing"
)

func TestFileExtension(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"site.jpg", ".jpg"},
		{"site.JPG", ".jpg"},
		{"archive.tar.gz", ".gz"},
		{"noext", ""},
	}

	for _, tt := range tests {
		if got := FileExtension(tt.fileName); got != tt.want {
			t.Errorf("FileExtension(%q) = %q, want %q", tt.fileName, got, tt.want)
		}
	}
}

func TestIsAllowedImageExtension(t *testing.T) {
	tests := []struct {
		fileName string
		want     bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"photo.webp", true},
		{"photo.gif", true},
		{"document.pdf", false},
		{"script.sh", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsAllowedImageExtension(tt.fileName); got != tt.want {
			t.Errorf("IsAllowedImageExtension(%q) = %v, want %v", tt.fileName, got, tt.want)
		}
	}
}

func TestNewImageObjectName(t *testing.T) {
	first := NewImageObjectName("site.JPG")
	second := NewImageObjectName("site.JPG")

	if !strings.HasSuffix(first, ".jpg") {
		t.Errorf("Expected lowercased extension suffix, got %s", first)
	}
	if first == second {
		t.Errorf("Expected unique object names, got %s twice", first)
	}
}
