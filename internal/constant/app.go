package constant

import "time"

const (
	QUERY_TIMEOUT_DURATION = 5 * time.Second

	// Storage buckets for site photographs. The bucket determines the
	// retrieval URL prefix: /uploads/<bucket>/<filename>.
	BUCKET_BEFORE = "before"
	BUCKET_AFTER  = "after"

	// 10MB per image.
	MAX_UPLOAD_SIZE = 10 << 20
)

var ALLOWED_IMAGE_EXTENSIONS = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

func IsImageBucket(bucket string) bool {
	return bucket == BUCKET_BEFORE || bucket == BUCKET_AFTER
}
