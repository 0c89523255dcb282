package util

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

func createBucketIfNotExists(s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(context.Background(), bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err = s3.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

// UploadImageToS3 stores the multipart file under objectName in the given
// bucket, creating the bucket on first use.
func UploadImageToS3(fileHeader *multipart.FileHeader, s3 *minio.Client, bucket string, objectName string) (minio.UploadInfo, error) {
	if err := createBucketIfNotExists(s3, bucket); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(objectName))
	}

	info, err := s3.PutObject(
		context.Background(),
		bucket,
		objectName,
		file,
		fileHeader.Size,
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return info, nil
}

func RemoveImageFromS3(ctx context.Context, s3 *minio.Client, bucket string, objectName string) error {
	return s3.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}

// DownloadImageToLocal fetches the stored blob to a local path, used when
// rendering reports that embed images by file path.
func DownloadImageToLocal(ctx context.Context, s3 *minio.Client, bucket string, objectName string, localPath string) error {
	return s3.FGetObject(ctx, bucket, objectName, localPath, minio.GetObjectOptions{})
}
