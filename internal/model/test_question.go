package model

const QuestionsPerTest = 5

var OptionLetters = [4]string{"A", "B", "C", "D"}

// swagger:model TestQuestion
type TestQuestion struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID      uint   `gorm:"not null;uniqueIndex:idx_question_course_position" json:"course_id"`
	Position      int    `gorm:"not null;uniqueIndex:idx_question_course_position" json:"-"`
	Question      string `gorm:"type:text;not null" json:"question"`
	OptionA       string `gorm:"size:500;not null" json:"option_a"`
	OptionB       string `gorm:"size:500;not null" json:"option_b"`
	OptionC       string `gorm:"size:500;not null" json:"option_c"`
	OptionD       string `gorm:"size:500;not null" json:"option_d"`
	CorrectOption string `gorm:"size:1;not null" json:"-"`
}

func (TestQuestion) TableName() string {
	return "test_questions"
}

// PublicQuestion 学员可见的题目，不含正确答案
type PublicQuestion struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
}

func (q TestQuestion) Public() PublicQuestion {
	return PublicQuestion{
		ID:       q.ID,
		Question: q.Question,
		OptionA:  q.OptionA,
		OptionB:  q.OptionB,
		OptionC:  q.OptionC,
		OptionD:  q.OptionD,
	}
}
