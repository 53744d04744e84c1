package model

import "time"

// UnknownCourseTitle 课程已被删除时成就中显示的标题
const UnknownCourseTitle = "Unknown"

// Achievement 学员通过测试获得的徽章
type Achievement struct {
	Badge       string    `json:"badge"`
	Points      int       `json:"points"`
	CourseTitle string    `json:"course_title"`
	AttemptedAt time.Time `json:"attempted_at"`
}
