package model

type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
)

// ParseCourseStatus 仅接受 draft / published
func ParseCourseStatus(s string) (CourseStatus, bool) {
	switch CourseStatus(s) {
	case CourseDraft, CoursePublished:
		return CourseStatus(s), true
	}
	return "", false
}

// swagger:model Course
type Course struct {
	BaseModel
	Title          string       `gorm:"size:255;not null" json:"title"`
	Status         CourseStatus `gorm:"size:20;not null;default:'draft';index" json:"status"`
	ImageURL       string       `gorm:"type:text" json:"image_url"`
	CourseURL      *string      `gorm:"type:text" json:"course_url"`
	Rating         float64      `gorm:"not null;default:0" json:"rating"`
	InstructorName string       `gorm:"size:100;not null;index" json:"instructor_name"`
}

func (Course) TableName() string {
	return "courses"
}

func (c *Course) IsPublished() bool {
	return c.Status == CoursePublished
}

// CourseWithTest 列表查询结果，HasTest 为读取时计算
type CourseWithTest struct {
	Course
	QuestionCount int  `gorm:"column:question_count" json:"-"`
	HasTest       bool `gorm:"-" json:"has_test"`
}
