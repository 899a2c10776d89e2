package controller

import (
	"errors"
	"strings"

	"coursepro_backend/internal/service"
	"coursepro_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TestController struct {
	testService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{testService: testService}
}

// List godoc
// @Summary List tests
// @Tags tests
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Param search query string false "Search test name"
// @Success 200 {object} util.ListResponse
// @Router /api/tests [get]
func (ctl *TestController) List(c *gin.Context) {
	p := pagination(c)

	tests, total, err := ctl.testService.List(p, c.Query("search"))
	if err != nil {
		util.LogInternalError(c, "Failed to list tests", err)
		return
	}
	util.List(c, tests, paginationBlock(p, total))
}

// Create godoc
// @Summary Create a test with nested questions and options
// @Tags tests
// @Accept json
// @Produce json
// @Param test body service.CreateTestInput true "Test to create"
// @Success 201 {object} map[string]interface{}
// @Router /api/tests [post]
func (ctl *TestController) Create(c *gin.Context) {
	var req service.CreateTestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	test, err := ctl.testService.Create(req)
	if err != nil {
		util.LogInternalError(c, "Failed to create test", err)
		return
	}

	util.Created(c, gin.H{
		"message": "Test created successfully",
		"test_id": test.TestID,
	})
}

// Get godoc
// @Summary Get a test with ordered questions and options
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} service.TestView
// @Failure 404 {object} map[string]string
// @Router /api/tests/{id} [get]
func (ctl *TestController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	test, err := ctl.testService.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Test not found")
			return
		}
		util.LogInternalError(c, "Failed to load test", err)
		return
	}
	util.Success(c, test)
}

type updateTestRequest struct {
	TestName    *string `json:"test_name"`
	Description *string `json:"description"`
	TestType    *string `json:"test_type" binding:"omitempty,oneof=assessment adaptive"`
}

// Update godoc
// @Summary Update a test (partial)
// @Tags tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param test body updateTestRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/tests/{id} [put]
func (ctl *TestController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.TestName != nil {
		fields["test_name"] = *req.TestName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.TestType != nil {
		fields["test_type"] = *req.TestType
	}
	if len(fields) == 0 {
		util.BadRequest(c, util.ErrNoFieldsToUpdate.Error())
		return
	}

	test, err := ctl.testService.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Test not found")
			return
		}
		util.LogInternalError(c, "Failed to update test", err)
		return
	}

	util.Success(c, gin.H{
		"message": "Test updated successfully",
		"test":    test,
	})
}

// Delete godoc
// @Summary Delete a test and all dependent records
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tests/{id} [delete]
func (ctl *TestController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.testService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Test not found")
			return
		}
		util.LogInternalError(c, "Failed to delete test", err)
		return
	}
	util.Success(c, gin.H{"message": "Test deleted successfully"})
}

// Questions godoc
// @Summary List a test's questions with options
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/tests/{id}/questions [get]
func (ctl *TestController) Questions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	questions, err := ctl.testService.Questions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Test not found")
			return
		}
		util.LogInternalError(c, "Failed to load questions", err)
		return
	}
	util.Success(c, gin.H{"questions": questions})
}

// AddQuestion godoc
// @Summary Append a question to a test
// @Tags tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param question body service.QuestionInput true "Question to add"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/tests/{id}/questions [post]
func (ctl *TestController) AddQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.QuestionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	question, err := ctl.testService.AddQuestion(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Test not found")
			return
		}
		util.LogInternalError(c, "Failed to add question", err)
		return
	}

	util.Created(c, gin.H{
		"message":     "Question added successfully",
		"question_id": question.QuestionID,
	})
}

// DeleteQuestion godoc
// @Summary Delete a question and its options
// @Tags tests
// @Produce json
// @Param questionId path int true "Question ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tests/questions/{questionId} [delete]
func (ctl *TestController) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c, "questionId")
	if !ok {
		return
	}

	if err := ctl.testService.DeleteQuestion(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Question not found")
			return
		}
		util.LogInternalError(c, "Failed to delete question", err)
		return
	}
	util.Success(c, gin.H{"message": "Question deleted successfully"})
}

// Submit godoc
// @Summary Submit a test attempt
// @Description Records the attempt and generates a course recommendation.
// @Tags tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param attempt body service.SubmitAttemptInput true "Attempt result"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/tests/{id}/submit [post]
func (ctl *TestController) Submit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.SubmitAttemptInput
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	attempt, err := ctl.testService.SubmitAttempt(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			msg := "Test not found"
			if strings.HasPrefix(err.Error(), "user:") {
				msg = "User not found"
			}
			util.NotFound(c, msg)
			return
		}
		util.LogInternalError(c, "Failed to submit attempt", err)
		return
	}

	util.Created(c, gin.H{
		"message":    "Test submitted successfully",
		"attempt_id": attempt.AttemptID,
	})
}

// Attempts godoc
// @Summary List attempts for a test
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} util.ListResponse
// @Failure 404 {object} map[string]string
// @Router /api/tests/{id}/attempts [get]
func (ctl *TestController) Attempts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p := pagination(c)

	rows, total, err := ctl.testService.Attempts(id, p)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Test not found")
			return
		}
		util.LogInternalError(c, "Failed to list attempts", err)
		return
	}
	util.List(c, rows, paginationBlock(p, total))
}

// Stats godoc
// @Summary Test statistics overview
// @Tags tests
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/tests/stats/overview [get]
func (ctl *TestController) Stats(c *gin.Context) {
	stats, err := ctl.testService.StatsOverview()
	if err != nil {
		util.LogInternalError(c, "Failed to load test stats", err)
		return
	}
	util.Success(c, stats)
}
