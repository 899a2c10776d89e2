package model

import "time"

type TestType string

const (
	TestTypeAssessment TestType = "assessment"
	TestTypeAdaptive   TestType = "adaptive"
)

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionShortAnswer    QuestionType = "short_answer"
)

// swagger:model Test
type Test struct {
	TestID      uint      `gorm:"column:test_id;primaryKey;autoIncrement" json:"test_id"`
	TestName    string    `gorm:"size:255;not null" json:"test_name"`
	Description string    `gorm:"type:text" json:"description"`
	TestType    TestType  `gorm:"size:20;default:'assessment'" json:"test_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Test) TableName() string {
	return "tests"
}

// swagger:model Question
type Question struct {
	QuestionID    uint         `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	TestID        uint         `gorm:"index;not null" json:"test_id"`
	QuestionText  string       `gorm:"type:text;not null" json:"question_text"`
	QuestionType  QuestionType `gorm:"size:30;default:'multiple_choice'" json:"question_type"`
	QuestionOrder int          `gorm:"default:0" json:"question_order"`
	CreatedAt     time.Time    `json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Option
type Option struct {
	OptionID    uint      `gorm:"column:option_id;primaryKey;autoIncrement" json:"option_id"`
	QuestionID  uint      `gorm:"index;not null" json:"question_id"`
	OptionText  string    `gorm:"type:text;not null" json:"option_text"`
	IsCorrect   bool      `gorm:"default:false" json:"is_correct"`
	OptionOrder int       `gorm:"default:0" json:"option_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Option) TableName() string {
	return "options"
}

// UserTestAttempt is one completed run of a test. Rows are immutable once
// written; history and analytics read them, nothing updates them.
type UserTestAttempt struct {
	AttemptID      uint      `gorm:"column:attempt_id;primaryKey;autoIncrement" json:"attempt_id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	TestID         uint      `gorm:"index;not null" json:"test_id"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	TimeTaken      *int      `json:"time_taken"`
	AttemptDate    time.Time `json:"attempt_date"`
	CreatedAt      time.Time `json:"created_at"`
}

func (UserTestAttempt) TableName() string {
	return "user_test_attempts"
}

// Percentage of correct answers, 0 when the attempt had no questions.
func (a *UserTestAttempt) Percentage() float64 {
	if a.TotalQuestions <= 0 {
		return 0
	}
	return float64(a.Score) / float64(a.TotalQuestions) * 100
}
