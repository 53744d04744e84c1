package service

import (
	"context"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"sort"
)

const RecentActivityLimit = 5

type ActivityService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	AttemptRepo    *repository.AttemptRepository
}

func NewActivityService(enrollmentRepo *repository.EnrollmentRepository, attemptRepo *repository.AttemptRepository) *ActivityService {
	return &ActivityService{
		EnrollmentRepo: enrollmentRepo,
		AttemptRepo:    attemptRepo,
	}
}

// RecentActivities 合并报名进度和测试完成两类事件，按时间倒序取前 5 条
func (s *ActivityService) RecentActivities(ctx context.Context, instructor string) ([]model.RecentActivity, error) {
	enrollments, err := s.EnrollmentRepo.ListRecentActivity(ctx, instructor, RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("list enrollment activity: %w", err)
	}
	attempts, err := s.AttemptRepo.ListRecentActivity(ctx, instructor, RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("list test activity: %w", err)
	}

	items := make([]model.RecentActivity, 0, len(enrollments)+len(attempts))
	for _, e := range enrollments {
		progress := e.Progress
		items = append(items, model.RecentActivity{
			ActivityType: model.ActivityEnrollment,
			LearnerName:  e.LearnerName,
			CourseTitle:  e.CourseTitle,
			Progress:     &progress,
			UpdatedAt:    e.UpdatedAt,
		})
	}
	for _, a := range attempts {
		score, points, badge := a.CorrectCount, a.Points, a.Badge
		items = append(items, model.RecentActivity{
			ActivityType: model.ActivityTest,
			LearnerName:  a.LearnerName,
			CourseTitle:  a.CourseTitle,
			Score:        &score,
			Points:       &points,
			Badge:        &badge,
			UpdatedAt:    a.AttemptedAt,
		})
	}

	// 时间相同时保持报名事件在前
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
	if len(items) > RecentActivityLimit {
		items = items[:RecentActivityLimit]
	}
	return items, nil
}
