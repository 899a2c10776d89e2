package repository

import (
	"time"

	"coursepro_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.Where("test_id = ?", id).First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *TestRepository) List(p Pagination, search string) ([]model.Test, int64, error) {
	base := func() *gorm.DB {
		return r.DB.Model(&model.Test{}).Scopes(Search(search, "test_name"))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tests []model.Test
	err := base().
		Order("test_id DESC").
		Scopes(p.Scope()).
		Find(&tests).Error
	return tests, total, err
}

// CreateWithQuestions inserts the test and its nested questions/options in
// one transaction, numbering question_order and option_order sequentially.
func (r *TestRepository) CreateWithQuestions(test *model.Test, questions []model.Question, options [][]model.Option) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(test).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].TestID = test.TestID
			questions[i].QuestionOrder = i + 1
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
			for j := range options[i] {
				options[i][j].QuestionID = questions[i].QuestionID
				options[i][j].OptionOrder = j + 1
				if err := tx.Create(&options[i][j]).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *TestRepository) Update(id uint, fields map[string]interface{}) (int64, error) {
	res := r.DB.Model(&model.Test{}).Where("test_id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete removes options, questions, and attempts before the test itself.
func (r *TestRepository) Delete(id uint) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&model.Question{}).Select("question_id").Where("test_id = ?", id)
		if err := tx.Where("question_id IN (?)", sub).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.UserTestAttempt{}).Error; err != nil {
			return err
		}
		res := tx.Where("test_id = ?", id).Delete(&model.Test{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *TestRepository) QuestionsForTest(testID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("test_id = ?", testID).
		Order("question_order").
		Find(&questions).Error
	return questions, err
}

func (r *TestRepository) OptionsForQuestion(questionID uint) ([]model.Option, error) {
	var options []model.Option
	err := r.DB.Where("question_id = ?", questionID).
		Order("option_order").
		Find(&options).Error
	return options, err
}

func (r *TestRepository) FindQuestion(questionID uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Where("question_id = ?", questionID).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// AddQuestion appends a question at MAX(question_order)+1 with its options,
// all in one transaction.
func (r *TestRepository) AddQuestion(question *model.Question, options []model.Option) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var nextOrder int
		err := tx.Model(&model.Question{}).
			Where("test_id = ?", question.TestID).
			Select("COALESCE(MAX(question_order), 0) + 1").
			Scan(&nextOrder).Error
		if err != nil {
			return err
		}
		question.QuestionOrder = nextOrder

		if err := tx.Create(question).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].QuestionID = question.QuestionID
			options[i].OptionOrder = i + 1
			if err := tx.Create(&options[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteQuestion removes the question's options first, then the question.
// Both run in one transaction so no orphaned options survive a failure.
func (r *TestRepository) DeleteQuestion(questionID uint) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		res := tx.Where("question_id = ?", questionID).Delete(&model.Question{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *TestRepository) CreateAttempt(attempt *model.UserTestAttempt) error {
	if attempt.AttemptDate.IsZero() {
		attempt.AttemptDate = time.Now()
	}
	return r.DB.Create(attempt).Error
}

// AttemptRow is an attempt joined with the student who took it.
type AttemptRow struct {
	model.UserTestAttempt
	FirstName string `gorm:"column:first_name" json:"-"`
	LastName  string `gorm:"column:last_name" json:"-"`
	UserEmail string `gorm:"column:user_email" json:"user_email"`
	UserName  string `gorm:"-" json:"user_name"`
}

func (r *TestRepository) AttemptsForTest(testID uint, p Pagination) ([]AttemptRow, int64, error) {
	var total int64
	err := r.DB.Model(&model.UserTestAttempt{}).
		Where("test_id = ?", testID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []AttemptRow
	err = r.DB.Model(&model.UserTestAttempt{}).
		Select("user_test_attempts.*, users.first_name, users.last_name, users.email as user_email").
		Joins("LEFT JOIN users ON users.user_id = user_test_attempts.user_id").
		Where("user_test_attempts.test_id = ?", testID).
		Order("user_test_attempts.attempt_date DESC").
		Scopes(p.Scope()).
		Scan(&rows).Error
	return rows, total, err
}

func (r *TestRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Test{}).Count(&count).Error
	return count, err
}

func (r *TestRepository) CountQuestions() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (r *TestRepository) TypeDistribution() ([]model.StatusCount, error) {
	var rows []model.StatusCount
	err := r.DB.Model(&model.Test{}).
		Select("test_type as status, COUNT(*) as count").
		Group("test_type").
		Scan(&rows).Error
	return rows, err
}

// QuestionCount per test, busiest first.
type QuestionCountRow struct {
	TestID        uint   `json:"test_id"`
	TestName      string `json:"test_name"`
	QuestionCount int64  `json:"question_count"`
}

func (r *TestRepository) QuestionCounts() ([]QuestionCountRow, error) {
	var rows []QuestionCountRow
	err := r.DB.Model(&model.Test{}).
		Select("tests.test_id, tests.test_name, COUNT(questions.question_id) as question_count").
		Joins("LEFT JOIN questions ON questions.test_id = tests.test_id").
		Group("tests.test_id, tests.test_name").
		Order("question_count DESC").
		Scan(&rows).Error
	return rows, err
}
