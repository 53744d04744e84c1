package service

import (
	"bytes"
	"context"
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"strings"
	"testing"
)

func TestCourseService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	course, err := env.Courses.Create(ctx, "Instructor Doe", CreateCourseRequest{Title: "  Go Basics  "})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if course.ID == 0 || course.Title != "Go Basics" || course.Status != model.CourseDraft {
		t.Errorf("Create() = %+v", course)
	}
	if course.Rating != 0 || course.InstructorName != "Instructor Doe" || course.CourseURL != nil {
		t.Errorf("Create() defaults = %+v", course)
	}

	if _, err := env.Courses.Create(ctx, "Instructor Doe", CreateCourseRequest{Title: "   "}); err == nil {
		t.Error("Create() with blank title should fail")
	}

	bad := "not a url"
	if _, err := env.Courses.Create(ctx, "Instructor Doe", CreateCourseRequest{Title: "x", CourseURL: &bad}); !errors.Is(err, util.ErrInvalidURL) {
		t.Errorf("Create() with bad url error = %v, want ErrInvalidURL", err)
	}
}

func TestCourseService_ListStatusFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft, _ := env.Courses.Create(ctx, "Instructor Doe", CreateCourseRequest{Title: "Draft"})
	pub, _ := env.Courses.Create(ctx, "Instructor Doe", CreateCourseRequest{Title: "Published"})
	if _, err := env.Courses.Publish(ctx, pub.ID); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	tests := []struct {
		status  string
		wantIDs []uint
		wantErr error
	}{
		{"", []uint{draft.ID, pub.ID}, nil},
		{"draft", []uint{draft.ID}, nil},
		{"published", []uint{pub.ID}, nil},
		{"archived", nil, util.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run("status="+tt.status, func(t *testing.T) {
			got, err := env.Courses.List(ctx, tt.status)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("List(%q) error = %v, want %v", tt.status, err, tt.wantErr)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("List(%q) returned %d courses, want %d", tt.status, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("List(%q)[%d].ID = %d, want %d", tt.status, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestCourseService_PublishUnpublish(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c, _ := env.Courses.Create(ctx, "Instructor Doe", CreateCourseRequest{Title: "Go"})

	got, err := env.Courses.Publish(ctx, c.ID)
	if err != nil || got.Status != model.CoursePublished {
		t.Fatalf("Publish() = %+v, %v", got, err)
	}
	got, err = env.Courses.Unpublish(ctx, c.ID)
	if err != nil || got.Status != model.CourseDraft {
		t.Fatalf("Unpublish() = %+v, %v", got, err)
	}

	if _, err := env.Courses.Publish(ctx, 999); !errors.Is(err, util.ErrCourseNotFound) {
		t.Errorf("Publish(missing) error = %v", err)
	}
	if _, err := env.Courses.Unpublish(ctx, 999); !errors.Is(err, util.ErrCourseNotFound) {
		t.Errorf("Unpublish(missing) error = %v", err)
	}
}

func TestCourseService_UpdateURL(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c, _ := env.Courses.Create(ctx, "Instructor Doe", CreateCourseRequest{Title: "Go"})

	tests := []struct {
		name    string
		id      uint
		url     string
		wantErr error
	}{
		{"valid https", c.ID, "https://example.com/course", nil},
		{"valid http", c.ID, "http://localhost:8080/x", nil},
		{"relative", c.ID, "/course", util.ErrInvalidURL},
		{"ftp scheme", c.ID, "ftp://example.com/file", util.ErrInvalidURL},
		{"empty", c.ID, "", util.ErrInvalidURL},
		{"missing course", 999, "https://example.com", util.ErrCourseNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := env.Courses.UpdateURL(ctx, tt.id, tt.url)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UpdateURL() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && (res.CourseURL != tt.url || res.CourseID != tt.id || res.Message != "Course URL updated successfully") {
				t.Errorf("UpdateURL() = %+v", res)
			}
		})
	}
}

func TestCourseService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c, _ := env.Courses.Create(ctx, "Instructor Doe", CreateCourseRequest{Title: "Go"})

	if err := env.Courses.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := env.Courses.Delete(ctx, c.ID); !errors.Is(err, util.ErrCourseNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrCourseNotFound", err)
	}
}

func TestCourseService_UploadImage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c, _ := env.Courses.Create(ctx, "Instructor Doe", CreateCourseRequest{Title: "Go"})

	png := append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)
	got, err := env.Courses.UploadImage(ctx, c.ID, bytes.NewReader(png), int64(len(png)))
	if err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}
	if !strings.HasPrefix(got.ImageURL, "/uploads/courses/") || !strings.HasSuffix(got.ImageURL, ".png") {
		t.Errorf("ImageURL = %q", got.ImageURL)
	}

	text := []byte("plain text, not an image")
	if _, err := env.Courses.UploadImage(ctx, c.ID, bytes.NewReader(text), int64(len(text))); !errors.Is(err, util.ErrInvalidImage) {
		t.Errorf("UploadImage(text) error = %v, want ErrInvalidImage", err)
	}

	if _, err := env.Courses.UploadImage(ctx, 999, bytes.NewReader(png), int64(len(png))); !errors.Is(err, util.ErrCourseNotFound) {
		t.Errorf("UploadImage(missing) error = %v, want ErrCourseNotFound", err)
	}

	var ve *util.ValidationError
	if _, err := env.Courses.UploadImage(ctx, c.ID, bytes.NewReader(png), util.MaxImageSize+1); !errors.As(err, &ve) {
		t.Errorf("UploadImage(oversized) error = %v, want ValidationError", err)
	}
}
