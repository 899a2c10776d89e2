package service

import (
	"errors"
	"fmt"

	"coursepro_backend/internal/model"
	"coursepro_backend/internal/repository"
	"coursepro_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TestService struct {
	testRepo *repository.TestRepository
	userRepo *repository.UserRepository
	recSvc   *RecommendationService
}

func NewTestService(testRepo *repository.TestRepository, userRepo *repository.UserRepository, recSvc *RecommendationService) *TestService {
	return &TestService{testRepo: testRepo, userRepo: userRepo, recSvc: recSvc}
}

// QuestionView is a question with its ordered options inlined.
type QuestionView struct {
	model.Question
	Options []model.Option `json:"options"`
}

// TestView is the fully assembled test: questions in question_order, options
// in option_order.
type TestView struct {
	model.Test
	Questions []QuestionView `json:"questions"`
}

func (s *TestService) Get(id uint) (*TestView, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionViews(id)
	if err != nil {
		return nil, err
	}
	return &TestView{Test: *test, Questions: questions}, nil
}

func (s *TestService) questionViews(testID uint) ([]QuestionView, error) {
	questions, err := s.testRepo.QuestionsForTest(testID)
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, len(questions))
	for i := range questions {
		options, err := s.testRepo.OptionsForQuestion(questions[i].QuestionID)
		if err != nil {
			return nil, err
		}
		views[i] = QuestionView{Question: questions[i], Options: options}
	}
	return views, nil
}

func (s *TestService) Questions(testID uint) ([]QuestionView, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return nil, err
	}
	return s.questionViews(testID)
}

func (s *TestService) List(p repository.Pagination, search string) ([]model.Test, int64, error) {
	return s.testRepo.List(p, search)
}

type OptionInput struct {
	OptionText string `json:"option_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

type QuestionInput struct {
	QuestionText string        `json:"question_text" binding:"required"`
	QuestionType string        `json:"question_type"`
	Options      []OptionInput `json:"options" binding:"required,min=2,dive"`
}

type CreateTestInput struct {
	TestName    string          `json:"test_name" binding:"required"`
	Description string          `json:"description"`
	TestType    string          `json:"test_type"`
	Questions   []QuestionInput `json:"questions" binding:"required,min=1,dive"`
}

// Create inserts the test and its nested questions/options in one
// transaction.
func (s *TestService) Create(in CreateTestInput) (*model.Test, error) {
	testType := model.TestType(in.TestType)
	if testType == "" {
		testType = model.TestTypeAssessment
	}
	test := &model.Test{
		TestName:    in.TestName,
		Description: in.Description,
		TestType:    testType,
	}

	questions := make([]model.Question, len(in.Questions))
	options := make([][]model.Option, len(in.Questions))
	for i, q := range in.Questions {
		questionType := model.QuestionType(q.QuestionType)
		if questionType == "" {
			questionType = model.QuestionMultipleChoice
		}
		questions[i] = model.Question{
			QuestionText: q.QuestionText,
			QuestionType: questionType,
		}
		options[i] = make([]model.Option, len(q.Options))
		for j, o := range q.Options {
			options[i][j] = model.Option{OptionText: o.OptionText, IsCorrect: o.IsCorrect}
		}
	}

	if err := s.testRepo.CreateWithQuestions(test, questions, options); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *TestService) Update(id uint, fields map[string]interface{}) (*model.Test, error) {
	affected, err := s.testRepo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.testRepo.FindByID(id)
}

func (s *TestService) Delete(id uint) error {
	affected, err := s.testRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddQuestion appends a question to an existing test.
func (s *TestService) AddQuestion(testID uint, in QuestionInput) (*model.Question, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return nil, err
	}

	questionType := model.QuestionType(in.QuestionType)
	if questionType == "" {
		questionType = model.QuestionMultipleChoice
	}
	question := &model.Question{
		TestID:       testID,
		QuestionText: in.QuestionText,
		QuestionType: questionType,
	}

	options := make([]model.Option, len(in.Options))
	for i, o := range in.Options {
		options[i] = model.Option{OptionText: o.OptionText, IsCorrect: o.IsCorrect}
	}

	if err := s.testRepo.AddQuestion(question, options); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *TestService) DeleteQuestion(questionID uint) error {
	affected, err := s.testRepo.DeleteQuestion(questionID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type SubmitAttemptInput struct {
	UserID         uint `json:"user_id" binding:"required"`
	Score          int  `json:"score" binding:"min=0"`
	TotalQuestions int  `json:"total_questions" binding:"required,min=1"`
	TimeTaken      *int `json:"time_taken"`
}

// SubmitAttempt records the attempt and then runs the recommender over the
// student's strand. A recommender failure is logged but never fails the
// submission; the attempt is already durable at that point.
func (s *TestService) SubmitAttempt(testID uint, in SubmitAttemptInput) (*model.UserTestAttempt, error) {
	user, err := s.userRepo.FindByID(in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", gorm.ErrRecordNotFound)
		}
		return nil, err
	}
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("test: %w", gorm.ErrRecordNotFound)
		}
		return nil, err
	}

	attempt := &model.UserTestAttempt{
		UserID:         in.UserID,
		TestID:         testID,
		Score:          in.Score,
		TotalQuestions: in.TotalQuestions,
		TimeTaken:      in.TimeTaken,
	}
	if err := s.testRepo.CreateAttempt(attempt); err != nil {
		return nil, err
	}

	if _, err := s.recSvc.RecommendForAttempt(attempt, user.Strand); err != nil {
		logger.Log.Warn("recommendation generation failed",
			zap.Uint("attempt_id", attempt.AttemptID),
			zap.Uint("user_id", in.UserID),
			zap.Error(err))
	}

	return attempt, nil
}

func (s *TestService) Attempts(testID uint, p repository.Pagination) ([]repository.AttemptRow, int64, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return nil, 0, err
	}
	rows, total, err := s.testRepo.AttemptsForTest(testID, p)
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].UserName = joinName(rows[i].FirstName, rows[i].LastName)
	}
	return rows, total, nil
}

func (s *TestService) StatsOverview() (map[string]interface{}, error) {
	totalTests, err := s.testRepo.Count()
	if err != nil {
		return nil, err
	}
	totalQuestions, err := s.testRepo.CountQuestions()
	if err != nil {
		return nil, err
	}
	types, err := s.testRepo.TypeDistribution()
	if err != nil {
		return nil, err
	}
	perTest, err := s.testRepo.QuestionCounts()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"total_tests":        totalTests,
		"total_questions":    totalQuestions,
		"type_distribution":  types,
		"questions_per_test": perTest,
	}, nil
}
