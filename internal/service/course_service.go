package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var validate = validator.New()

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Storage    *StorageService
	Catalog    *CatalogCache
}

func NewCourseService(courseRepo *repository.CourseRepository, storage *StorageService, catalog *CatalogCache) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		Storage:    storage,
		Catalog:    catalog,
	}
}

type CreateCourseRequest struct {
	Title     string  `json:"title" binding:"required,max=255"`
	ImageURL  string  `json:"image_url"`
	CourseURL *string `json:"course_url"`
}

type UpdateCourseURLRequest struct {
	CourseURL string `json:"course_url" binding:"required"`
}

type CourseURLResult struct {
	Message   string `json:"message"`
	CourseID  uint   `json:"course_id"`
	CourseURL string `json:"course_url"`
}

// findCourse 课程不存在时返回 util.ErrCourseNotFound
func findCourse(ctx context.Context, repo *repository.CourseRepository, id uint) (*model.Course, error) {
	course, err := repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find course %d: %w", id, err)
	}
	return course, nil
}

// normalizeCourseURL 只接受带主机名的 http/https 绝对地址
func normalizeCourseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if err := validate.Var(raw, "required,http_url"); err != nil {
		return "", util.ErrInvalidURL
	}
	return raw, nil
}

func (s *CourseService) Create(ctx context.Context, instructor string, req CreateCourseRequest) (*model.Course, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, util.NewValidationError("title is required")
	}

	course := &model.Course{
		Title:          title,
		Status:         model.CourseDraft,
		ImageURL:       strings.TrimSpace(req.ImageURL),
		Rating:         0,
		InstructorName: instructor,
	}
	if req.CourseURL != nil && strings.TrimSpace(*req.CourseURL) != "" {
		u, err := normalizeCourseURL(*req.CourseURL)
		if err != nil {
			return nil, err
		}
		course.CourseURL = &u
	}

	if err := s.CourseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	monitoring.CourseEvents.WithLabelValues("created").Inc()
	logger.Log.Info("course created",
		zap.Uint("course_id", course.ID),
		zap.String("instructor", instructor))
	return course, nil
}

// List status 为空返回全部课程
func (s *CourseService) List(ctx context.Context, status string) ([]model.CourseWithTest, error) {
	var filter model.CourseStatus
	if status != "" {
		st, ok := model.ParseCourseStatus(status)
		if !ok {
			return nil, util.ErrInvalidStatus
		}
		filter = st
	}

	courses, err := s.CourseRepo.ListWithQuestionCount(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *CourseService) Publish(ctx context.Context, id uint) (*model.Course, error) {
	return s.setStatus(ctx, id, model.CoursePublished, "published")
}

func (s *CourseService) Unpublish(ctx context.Context, id uint) (*model.Course, error) {
	return s.setStatus(ctx, id, model.CourseDraft, "unpublished")
}

func (s *CourseService) setStatus(ctx context.Context, id uint, status model.CourseStatus, event string) (*model.Course, error) {
	course, err := findCourse(ctx, s.CourseRepo, id)
	if err != nil {
		return nil, err
	}
	if err := s.CourseRepo.UpdateStatus(ctx, course, status); err != nil {
		return nil, fmt.Errorf("update course status: %w", err)
	}

	s.Catalog.Invalidate(ctx)
	monitoring.CourseEvents.WithLabelValues(event).Inc()
	return course, nil
}

// Delete 连同报名、题目和测试记录一并删除
func (s *CourseService) Delete(ctx context.Context, id uint) error {
	err := s.CourseRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	}
	if err != nil {
		return fmt.Errorf("delete course %d: %w", id, err)
	}

	s.Catalog.Invalidate(ctx)
	monitoring.CourseEvents.WithLabelValues("deleted").Inc()
	logger.Log.Info("course deleted", zap.Uint("course_id", id))
	return nil
}

func (s *CourseService) UpdateURL(ctx context.Context, id uint, rawURL string) (*CourseURLResult, error) {
	course, err := findCourse(ctx, s.CourseRepo, id)
	if err != nil {
		return nil, err
	}
	u, err := normalizeCourseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if err := s.CourseRepo.UpdateCourseURL(ctx, course, u); err != nil {
		return nil, fmt.Errorf("update course url: %w", err)
	}

	s.Catalog.Invalidate(ctx)
	return &CourseURLResult{
		Message:   "Course URL updated successfully",
		CourseID:  course.ID,
		CourseURL: u,
	}, nil
}

// UploadImage 按文件内容识别类型，仅接受图片
func (s *CourseService) UploadImage(ctx context.Context, id uint, file io.ReadSeeker, size int64) (*model.Course, error) {
	course, err := findCourse(ctx, s.CourseRepo, id)
	if err != nil {
		return nil, err
	}
	if size > util.MaxImageSize {
		return nil, util.NewValidationError("file must not exceed %d MB", util.MaxImageSize>>20)
	}

	mtype, err := util.DetectImage(file)
	if err != nil {
		return nil, util.ErrInvalidImage
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	key := fmt.Sprintf("courses/%d/%s%s", course.ID, uuid.NewString(), mtype.Extension())
	url, err := s.Storage.Upload(ctx, key, file, size, mtype.String())
	if err != nil {
		return nil, fmt.Errorf("store course image: %w", err)
	}

	if err := s.CourseRepo.UpdateImageURL(ctx, course, url); err != nil {
		if delErr := s.Storage.Delete(ctx, key); delErr != nil {
			logger.Log.Warn("remove orphaned course image failed", zap.String("key", key), zap.Error(delErr))
		}
		return nil, fmt.Errorf("update course image: %w", err)
	}

	s.Catalog.Invalidate(ctx)
	monitoring.CourseEvents.WithLabelValues("image_uploaded").Inc()
	return course, nil
}
