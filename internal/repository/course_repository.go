package repository

import (
	"context"
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

const questionCountSelect = "(SELECT COUNT(*) FROM test_questions q WHERE q.course_id = courses.id) AS question_count"

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.DB.WithContext(ctx).Create(course).Error
}

func (r *CourseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.WithContext(ctx).First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// ListWithQuestionCount status 为空时返回全部课程，按 id 升序
func (r *CourseRepository) ListWithQuestionCount(ctx context.Context, status model.CourseStatus) ([]model.CourseWithTest, error) {
	var rows []model.CourseWithTest
	query := r.DB.WithContext(ctx).Model(&model.Course{}).
		Select("courses.*, " + questionCountSelect)
	if status != "" {
		query = query.Where("courses.status = ?", status)
	}
	if err := query.Order("courses.id asc").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].HasTest = rows[i].QuestionCount == model.QuestionsPerTest
	}
	return rows, nil
}

func (r *CourseRepository) UpdateStatus(ctx context.Context, course *model.Course, status model.CourseStatus) error {
	if err := r.DB.WithContext(ctx).Model(course).Update("status", status).Error; err != nil {
		return err
	}
	course.Status = status
	return nil
}

func (r *CourseRepository) UpdateCourseURL(ctx context.Context, course *model.Course, url string) error {
	if err := r.DB.WithContext(ctx).Model(course).Update("course_url", url).Error; err != nil {
		return err
	}
	course.CourseURL = &url
	return nil
}

func (r *CourseRepository) UpdateImageURL(ctx context.Context, course *model.Course, url string) error {
	if err := r.DB.WithContext(ctx).Model(course).Update("image_url", url).Error; err != nil {
		return err
	}
	course.ImageURL = url
	return nil
}

// Delete 在同一事务中级联删除课程的报名、题目和测试记录
func (r *CourseRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&model.TestAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.TestQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Course{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
