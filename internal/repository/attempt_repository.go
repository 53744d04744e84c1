package repository

import (
	"context"
	"lms_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) FindByCourseAndLearner(ctx context.Context, courseID uint, learner string) (*model.TestAttempt, error) {
	var a model.TestAttempt
	err := r.DB.WithContext(ctx).
		Where("course_id = ? AND learner_name = ?", courseID, learner).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttemptRepository) Create(ctx context.Context, a *model.TestAttempt) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

type AchievementRow struct {
	Badge       string    `gorm:"column:badge"`
	Points      int       `gorm:"column:points"`
	CourseTitle *string   `gorm:"column:course_title"`
	AttemptedAt time.Time `gorm:"column:attempted_at"`
}

func (r *AttemptRepository) ListByLearner(ctx context.Context, learner string) ([]AchievementRow, error) {
	var rows []AchievementRow
	err := r.DB.WithContext(ctx).Table("test_attempts a").
		Select("a.badge, a.points, c.title AS course_title, a.attempted_at").
		Joins("LEFT JOIN courses c ON c.id = a.course_id").
		Where("a.learner_name = ?", learner).
		Order("a.attempted_at desc, a.id desc").
		Scan(&rows).Error
	return rows, err
}

type AttemptActivityRow struct {
	LearnerName  string    `gorm:"column:learner_name"`
	CourseTitle  string    `gorm:"column:course_title"`
	CorrectCount int       `gorm:"column:correct_count"`
	Points       int       `gorm:"column:points"`
	Badge        string    `gorm:"column:badge"`
	AttemptedAt  time.Time `gorm:"column:attempted_at"`
}

// ListRecentActivity 讲师课程下最近完成的测试
func (r *AttemptRepository) ListRecentActivity(ctx context.Context, instructor string, limit int) ([]AttemptActivityRow, error) {
	var rows []AttemptActivityRow
	err := r.DB.WithContext(ctx).Table("test_attempts a").
		Select("a.learner_name, c.title AS course_title, a.correct_count, a.points, a.badge, a.attempted_at").
		Joins("JOIN courses c ON c.id = a.course_id").
		Where("c.instructor_name = ?", instructor).
		Order("a.attempted_at desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
