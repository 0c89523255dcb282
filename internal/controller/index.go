package controller

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"

	"schememonitor/internal/constant"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Scheme Monitor API",
		"version": "1.0.0",
	})
}

// Uploads streams a stored site photograph back to the browser. The bucket
// segment must be one of the image buckets; the filename is reduced to its
// base to keep path traversal out of the object key.
func (ic IndexController) Uploads(ctx *gin.Context) {
	bucket := ctx.Param("bucket")
	filename := filepath.Base(ctx.Param("filename"))

	if !constant.IsImageBucket(bucket) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	object, err := ic.app.S3.GetObject(context.Background(), bucket, filename, minio.GetObjectOptions{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting object"})
		return
	}
	defer object.Close()

	info, err := object.Stat()
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	ctx.Header("Content-Type", info.ContentType)
	ctx.Header("Content-Length", fmt.Sprintf("%d", info.Size))
	io.Copy(ctx.Writer, object)
}
