package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	appcontext "schememonitor/internal/app_context"
	"schememonitor/internal/constant"
	"schememonitor/internal/util"
)

func newUploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	app := &appcontext.Application{Logger: util.NewLogger("development")}
	uc := UploadController{baseController: newBaseController(app)}

	r := gin.New()
	r.POST("/api/upload/before", uc.Before)
	return r
}

func multipartFile(t *testing.T, fileName string, size int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("a"), size)); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	return &buf, writer.FormDataContentType()
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	r := newUploadRouter()
	body, contentType := multipartFile(t, "report.pdf", 16)

	req := httptest.NewRequest(http.MethodPost, "/api/upload/before", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	want := "Invalid file type. Allowed types: png, jpg, jpeg, gif, webp"
	if !strings.Contains(w.Body.String(), want) {
		t.Errorf("body = %s, want %q", w.Body.String(), want)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	r := newUploadRouter()
	body, contentType := multipartFile(t, "site.jpg", constant.MAX_UPLOAD_SIZE+1)

	req := httptest.NewRequest(http.MethodPost, "/api/upload/before", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	want := "File size exceeds maximum allowed size of 10MB"
	if !strings.Contains(w.Body.String(), want) {
		t.Errorf("body = %s, want %q", w.Body.String(), want)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	r := newUploadRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/upload/before", strings.NewReader(""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No file provided") {
		t.Errorf("body = %s, want no-file error", w.Body.String())
	}
}
