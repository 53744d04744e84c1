package model

import "time"

const (
	ProgressStep = 10
	MaxProgress  = 100
)

// swagger:model Enrollment
type Enrollment struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID    uint   `gorm:"not null;uniqueIndex:idx_enrollment_course_learner" json:"course_id"`
	LearnerName string `gorm:"size:100;not null;uniqueIndex:idx_enrollment_course_learner" json:"learner_name"`
	Progress    int    `gorm:"not null;default:0" json:"progress"`
	Completed   bool   `gorm:"not null;default:false" json:"completed"`
	// 报名或最近一次进度变动的时间；旧数据可能为空
	LastActivityAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
	CreatedAt      time.Time  `json:"-"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// Advance 按固定步长推进进度，达到 100 后置为完成且不再回退
func (e *Enrollment) Advance(now time.Time) {
	e.Progress += ProgressStep
	if e.Progress >= MaxProgress {
		e.Progress = MaxProgress
		e.Completed = true
	}
	e.LastActivityAt = &now
}
