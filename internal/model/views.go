package model

import "time"

// MyCourse 学员已报名课程视图
type MyCourse struct {
	ID             uint         `json:"id"`
	Title          string       `json:"title"`
	Status         CourseStatus `json:"status"`
	ImageURL       string       `json:"image_url"`
	CourseURL      *string      `json:"course_url"`
	Rating         float64      `json:"rating"`
	InstructorName string       `json:"instructor_name"`
	Progress       int          `json:"progress"`
	Completed      bool         `json:"completed"`
	HasTest        bool         `json:"has_test"`
	TestAttempted  bool         `json:"test_attempted"`
	TestResult     *TestResult  `json:"test_result"`
}

type ActivityType string

const (
	ActivityEnrollment ActivityType = "enrollment"
	ActivityTest       ActivityType = "test"
)

type RecentActivity struct {
	ActivityType ActivityType `json:"activity_type"`
	LearnerName  string       `json:"learner_name"`
	CourseTitle  string       `json:"course_title"`
	Progress     *int         `json:"progress"`
	Score        *int         `json:"score"`
	Points       *int         `json:"points"`
	Badge        *string      `json:"badge"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
