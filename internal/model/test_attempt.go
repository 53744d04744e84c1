package model

import "time"

// swagger:model TestAttempt
type TestAttempt struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID     uint      `gorm:"not null;uniqueIndex:idx_attempt_course_learner" json:"course_id"`
	LearnerName  string    `gorm:"size:100;not null;uniqueIndex:idx_attempt_course_learner" json:"learner_name"`
	CorrectCount int       `gorm:"not null" json:"correct_count"`
	Points       int       `gorm:"not null" json:"points"`
	Badge        string    `gorm:"size:50;not null" json:"badge"`
	AttemptedAt  time.Time `gorm:"not null;index" json:"attempted_at"`
}

func (TestAttempt) TableName() string {
	return "test_attempts"
}

type TestResult struct {
	CorrectCount int    `json:"correct_count"`
	Points       int    `json:"points"`
	Badge        string `json:"badge"`
}

func (a *TestAttempt) Result() TestResult {
	return TestResult{CorrectCount: a.CorrectCount, Points: a.Points, Badge: a.Badge}
}
