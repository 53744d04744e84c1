package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeImage = "image/"

	// 课程封面上传大小上限
	MaxImageSize = 5 << 20
)

// 身份上下文键与请求头
const (
	LearnerKey       = "learner"
	InstructorKey    = "instructor"
	RequestIDKey     = "request_id"
	LearnerHeader    = "X-Learner-Name"
	InstructorHeader = "X-Instructor-Name"
	RequestIDHeader  = "X-Request-ID"
)
