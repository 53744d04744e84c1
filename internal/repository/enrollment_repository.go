package repository

import (
	"context"
	"lms_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) FindByCourseAndLearner(ctx context.Context, courseID uint, learner string) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.DB.WithContext(ctx).
		Where("course_id = ? AND learner_name = ?", courseID, learner).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

func (r *EnrollmentRepository) SaveProgress(ctx context.Context, e *model.Enrollment) error {
	return r.DB.WithContext(ctx).Model(e).Updates(map[string]interface{}{
		"progress":   e.Progress,
		"completed":  e.Completed,
		"updated_at": e.LastActivityAt,
	}).Error
}

// MyCourseRow 报名 + 课程 + 题目数 + 测试记录的联合查询结果
type MyCourseRow struct {
	ID             uint               `gorm:"column:id"`
	Title          string             `gorm:"column:title"`
	Status         model.CourseStatus `gorm:"column:status"`
	ImageURL       string             `gorm:"column:image_url"`
	CourseURL      *string            `gorm:"column:course_url"`
	Rating         float64            `gorm:"column:rating"`
	InstructorName string             `gorm:"column:instructor_name"`
	Progress       int                `gorm:"column:progress"`
	Completed      bool               `gorm:"column:completed"`
	QuestionCount  int                `gorm:"column:question_count"`
	AttemptID      *uint              `gorm:"column:attempt_id"`
	CorrectCount   *int               `gorm:"column:correct_count"`
	Points         *int               `gorm:"column:points"`
	Badge          *string            `gorm:"column:badge"`
}

const myCourseColumns = "c.id, c.title, c.status, c.image_url, c.course_url, c.rating, c.instructor_name, " +
	"e.progress, e.completed, " +
	"(SELECT COUNT(*) FROM test_questions q WHERE q.course_id = c.id) AS question_count, " +
	"a.id AS attempt_id, a.correct_count, a.points, a.badge"

func (r *EnrollmentRepository) ListMyCourses(ctx context.Context, learner string) ([]MyCourseRow, error) {
	var rows []MyCourseRow
	err := r.DB.WithContext(ctx).Table("enrollments e").
		Select(myCourseColumns).
		Joins("JOIN courses c ON c.id = e.course_id").
		Joins("LEFT JOIN test_attempts a ON a.course_id = e.course_id AND a.learner_name = e.learner_name").
		Where("e.learner_name = ?", learner).
		Order("e.id asc").
		Scan(&rows).Error
	return rows, err
}

type EnrollmentActivityRow struct {
	LearnerName string    `gorm:"column:learner_name"`
	CourseTitle string    `gorm:"column:course_title"`
	Progress    int       `gorm:"column:progress"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// ListRecentActivity 讲师已发布课程下最近有进度变动的报名
func (r *EnrollmentRepository) ListRecentActivity(ctx context.Context, instructor string, limit int) ([]EnrollmentActivityRow, error) {
	var rows []EnrollmentActivityRow
	err := r.DB.WithContext(ctx).Table("enrollments e").
		Select("e.learner_name, c.title AS course_title, e.progress, e.updated_at").
		Joins("JOIN courses c ON c.id = e.course_id").
		Where("c.status = ? AND c.instructor_name = ? AND e.updated_at IS NOT NULL", model.CoursePublished, instructor).
		Order("e.updated_at desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
