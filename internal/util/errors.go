package util

import (
	"errors"
	"fmt"
)

var (
	ErrCourseNotFound     = errors.New("Course not found")
	ErrEnrollmentNotFound = errors.New("Enrollment not found")
	ErrCourseNotPublished = errors.New("Course is not published")
	ErrInvalidStatus      = errors.New("status must be 'draft' or 'published'")
	ErrInvalidURL         = errors.New("course_url must be a valid http(s) URL")
	ErrInvalidImage       = errors.New("file must be an image")
	ErrTestExists         = errors.New("Test already exists for this course")
	ErrTestIncomplete     = errors.New("Test not found or incomplete")
	ErrAlreadyAttempted   = errors.New("Already attempted. No retakes.")
)

// ValidationError 请求内容不合法，Message 直接返回给调用方
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
