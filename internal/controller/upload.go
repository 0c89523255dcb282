package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"schememonitor/internal/constant"
	"schememonitor/internal/util"
)

type UploadController struct {
	*baseController
}

func (uc UploadController) Before(ctx *gin.Context) {
	uc.upload(ctx, constant.BUCKET_BEFORE, "Before image uploaded successfully")
}

func (uc UploadController) After(ctx *gin.Context) {
	uc.upload(ctx, constant.BUCKET_AFTER, "After image uploaded successfully")
}

// upload validates the multipart file and stores it under a fresh uuid
// object name so repeated uploads of the same filename never collide.
func (uc UploadController) upload(ctx *gin.Context, bucket string, successMessage string) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	if !util.IsAllowedImageExtension(fileHeader.Filename) {
		allowed := make([]string, 0, len(constant.ALLOWED_IMAGE_EXTENSIONS))
		for _, ext := range constant.ALLOWED_IMAGE_EXTENSIONS {
			allowed = append(allowed, strings.TrimPrefix(ext, "."))
		}
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid file type. Allowed types: %s", strings.Join(allowed, ", ")),
		})
		return
	}

	if fileHeader.Size > constant.MAX_UPLOAD_SIZE {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size exceeds maximum allowed size of %dMB", constant.MAX_UPLOAD_SIZE/(1024*1024)),
		})
		return
	}

	objectName := util.NewImageObjectName(fileHeader.Filename)
	if _, err := util.UploadImageToS3(fileHeader, uc.app.S3, bucket, objectName); err != nil {
		uc.app.Logger.Errorf("Error uploading file to bucket %s: %v", bucket, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error uploading file: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  successMessage,
		"filename": objectName,
		"url":      fmt.Sprintf("/uploads/%s/%s", bucket, objectName),
	})
}
