package repository

import (
	"context"
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) CountQuestions(ctx context.Context, courseID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.TestQuestion{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

// CreateQuestionSet 整套题目在一个事务内写入，已有题目时返回 util.ErrTestExists
func (r *TestRepository) CreateQuestionSet(ctx context.Context, courseID uint, questions []model.TestQuestion) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.TestQuestion{}).Where("course_id = ?", courseID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return util.ErrTestExists
		}
		for i := range questions {
			questions[i].CourseID = courseID
			questions[i].Position = i + 1
		}
		return tx.Create(&questions).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrTestExists
	}
	return err
}

func (r *TestRepository) ListQuestions(ctx context.Context, courseID uint) ([]model.TestQuestion, error) {
	var qs []model.TestQuestion
	err := r.DB.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("position asc, id asc").
		Find(&qs).Error
	return qs, err
}
