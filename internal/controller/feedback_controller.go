package controller

import (
	"errors"

	"coursepro_backend/internal/repository"
	"coursepro_backend/internal/service"
	"coursepro_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FeedbackController struct {
	feedbackService *service.FeedbackService
}

func NewFeedbackController(feedbackService *service.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// Submit godoc
// @Summary Submit feedback on a recommendation
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body service.SubmitFeedbackInput true "Feedback entry"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/feedback/submit [post]
func (ctl *FeedbackController) Submit(c *gin.Context) {
	var req service.SubmitFeedbackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, util.ErrRatingOutOfRange.Error())
		return
	}

	fb, err := ctl.feedbackService.Submit(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRatingOutOfRange):
			util.BadRequest(c, util.ErrRatingOutOfRange.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(c, "Recommendation not found")
		default:
			util.LogInternalError(c, "Failed to submit feedback", err)
		}
		return
	}

	util.Created(c, gin.H{
		"message":     "Feedback submitted successfully",
		"feedback_id": fb.FeedbackID,
		"created_at":  fb.CreatedAt,
	})
}

// List godoc
// @Summary List feedback entries
// @Tags feedback
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Param user_id query int false "Filter by user"
// @Param rating query int false "Filter by rating"
// @Param search query string false "Search text or author name"
// @Success 200 {object} util.ListResponse
// @Router /api/feedback [get]
func (ctl *FeedbackController) List(c *gin.Context) {
	p := pagination(c)
	f := repository.FeedbackFilter{
		UserID: queryInt(c, "user_id", 0),
		Rating: queryInt(c, "rating", 0),
		Search: c.Query("search"),
	}

	rows, total, err := ctl.feedbackService.List(p, f)
	if err != nil {
		util.LogInternalError(c, "Failed to list feedback", err)
		return
	}
	util.List(c, rows, paginationBlock(p, total))
}

// Get godoc
// @Summary Get a feedback entry
// @Tags feedback
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} repository.FeedbackRow
// @Failure 404 {object} map[string]string
// @Router /api/feedback/{id} [get]
func (ctl *FeedbackController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	row, err := ctl.feedbackService.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Feedback not found")
			return
		}
		util.LogInternalError(c, "Failed to load feedback", err)
		return
	}
	util.Success(c, row)
}

// Stats godoc
// @Summary Feedback statistics overview
// @Tags feedback
// @Produce json
// @Success 200 {object} model.FeedbackStats
// @Router /api/feedback/stats/overview [get]
func (ctl *FeedbackController) Stats(c *gin.Context) {
	stats, err := ctl.feedbackService.StatsOverview()
	if err != nil {
		util.LogInternalError(c, "Failed to load feedback stats", err)
		return
	}
	util.Success(c, stats)
}
