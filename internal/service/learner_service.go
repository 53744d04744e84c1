package service

import (
	"context"
	"errors"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LearnerService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	AttemptRepo    *repository.AttemptRepository
	Catalog        *CatalogCache

	now func() time.Time
}

func NewLearnerService(
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	attemptRepo *repository.AttemptRepository,
	catalog *CatalogCache,
) *LearnerService {
	return &LearnerService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		AttemptRepo:    attemptRepo,
		Catalog:        catalog,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

type EnrollResult struct {
	Enrolled     bool `json:"enrolled"`
	EnrollmentID uint `json:"enrollment_id"`
}

type ProgressResult struct {
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

func (s *LearnerService) PublishedCourses(ctx context.Context) ([]model.CourseWithTest, error) {
	courses, err := s.Catalog.GetOrLoad(ctx, func() ([]model.CourseWithTest, error) {
		return s.CourseRepo.ListWithQuestionCount(ctx, model.CoursePublished)
	})
	if err != nil {
		return nil, fmt.Errorf("list published courses: %w", err)
	}
	return courses, nil
}

// Enroll 重复报名返回已有记录
func (s *LearnerService) Enroll(ctx context.Context, learner string, courseID uint) (*EnrollResult, error) {
	course, err := findCourse(ctx, s.CourseRepo, courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished() {
		return nil, util.ErrCourseNotPublished
	}

	existing, err := s.EnrollmentRepo.FindByCourseAndLearner(ctx, courseID, learner)
	if err == nil {
		return &EnrollResult{Enrolled: true, EnrollmentID: existing.ID}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find enrollment: %w", err)
	}

	// 报名即记一次活动，新报名以进度 0 出现在讲师动态中
	now := s.now()
	enrollment := &model.Enrollment{
		CourseID:       courseID,
		LearnerName:    learner,
		LastActivityAt: &now,
	}
	if err := s.EnrollmentRepo.Create(ctx, enrollment); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("create enrollment: %w", err)
		}
		// 并发请求已插入同一报名
		winner, findErr := s.EnrollmentRepo.FindByCourseAndLearner(ctx, courseID, learner)
		if findErr != nil {
			return nil, fmt.Errorf("reload enrollment: %w", findErr)
		}
		return &EnrollResult{Enrolled: true, EnrollmentID: winner.ID}, nil
	}

	monitoring.Enrollments.Inc()
	logger.Log.Info("learner enrolled",
		zap.Uint("course_id", courseID),
		zap.String("learner", learner),
		zap.Uint("enrollment_id", enrollment.ID))
	return &EnrollResult{Enrolled: true, EnrollmentID: enrollment.ID}, nil
}

func (s *LearnerService) AdvanceProgress(ctx context.Context, learner string, courseID uint) (*ProgressResult, error) {
	enrollment, err := s.EnrollmentRepo.FindByCourseAndLearner(ctx, courseID, learner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find enrollment: %w", err)
	}

	enrollment.Advance(s.now())
	if err := s.EnrollmentRepo.SaveProgress(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	monitoring.ProgressUpdates.WithLabelValues(strconv.FormatBool(enrollment.Completed)).Inc()
	return &ProgressResult{Progress: enrollment.Progress, Completed: enrollment.Completed}, nil
}

func (s *LearnerService) MyCourses(ctx context.Context, learner string) ([]model.MyCourse, error) {
	rows, err := s.EnrollmentRepo.ListMyCourses(ctx, learner)
	if err != nil {
		return nil, fmt.Errorf("list my courses: %w", err)
	}

	courses := make([]model.MyCourse, 0, len(rows))
	for _, r := range rows {
		mc := model.MyCourse{
			ID:             r.ID,
			Title:          r.Title,
			Status:         r.Status,
			ImageURL:       r.ImageURL,
			CourseURL:      r.CourseURL,
			Rating:         r.Rating,
			InstructorName: r.InstructorName,
			Progress:       r.Progress,
			Completed:      r.Completed,
			HasTest:        r.QuestionCount == model.QuestionsPerTest,
			TestAttempted:  r.AttemptID != nil,
		}
		if r.AttemptID != nil {
			mc.TestResult = &model.TestResult{
				CorrectCount: derefInt(r.CorrectCount),
				Points:       derefInt(r.Points),
				Badge:        derefString(r.Badge),
			}
		}
		courses = append(courses, mc)
	}
	return courses, nil
}

// Achievements 按测试时间倒序
func (s *LearnerService) Achievements(ctx context.Context, learner string) ([]model.Achievement, error) {
	rows, err := s.AttemptRepo.ListByLearner(ctx, learner)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	achievements := make([]model.Achievement, 0, len(rows))
	for _, r := range rows {
		title := model.UnknownCourseTitle
		if r.CourseTitle != nil {
			title = *r.CourseTitle
		}
		achievements = append(achievements, model.Achievement{
			Badge:       r.Badge,
			Points:      r.Points,
			CourseTitle: title,
			AttemptedAt: r.AttemptedAt,
		})
	}
	return achievements, nil
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
