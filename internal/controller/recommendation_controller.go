package controller

import (
	"errors"
	"strings"

	"coursepro_backend/internal/model"
	"coursepro_backend/internal/repository"
	"coursepro_backend/internal/service"
	"coursepro_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecommendationController struct {
	recService *service.RecommendationService
}

func NewRecommendationController(recService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{recService: recService}
}

// List godoc
// @Summary List recommendations
// @Tags recommendations
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Param status query string false "Filter by status" Enums(pending, accepted, rejected)
// @Param user_id query int false "Filter by user"
// @Param course_id query int false "Filter by course"
// @Success 200 {object} util.ListResponse
// @Router /api/recommendations [get]
func (ctl *RecommendationController) List(c *gin.Context) {
	p := pagination(c)
	f := repository.RecommendationFilter{
		Status:   c.Query("status"),
		UserID:   uint(queryInt(c, "user_id", 0)),
		CourseID: uint(queryInt(c, "course_id", 0)),
	}

	rows, total, err := ctl.recService.List(p, f)
	if err != nil {
		util.LogInternalError(c, "Failed to list recommendations", err)
		return
	}
	util.List(c, rows, paginationBlock(p, total))
}

type createRecommendationRequest struct {
	UserID    uint   `json:"user_id" binding:"required"`
	CourseID  uint   `json:"course_id" binding:"required"`
	AttemptID *uint  `json:"attempt_id"`
	Reasoning string `json:"reasoning"`
	Status    string `json:"status" binding:"omitempty,oneof=pending accepted rejected"`
}

// Create godoc
// @Summary Create a recommendation manually
// @Tags recommendations
// @Accept json
// @Produce json
// @Param recommendation body createRecommendationRequest true "Recommendation to create"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/recommendations [post]
func (ctl *RecommendationController) Create(c *gin.Context) {
	var req createRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	rec := &model.Recommendation{
		UserID:    req.UserID,
		CourseID:  req.CourseID,
		AttemptID: req.AttemptID,
		Reasoning: req.Reasoning,
		Status:    model.RecommendationStatus(req.Status),
	}
	if err := ctl.recService.Create(rec); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			msg := "Course not found"
			if strings.HasPrefix(err.Error(), "user:") {
				msg = "User not found"
			}
			util.NotFound(c, msg)
			return
		}
		util.LogInternalError(c, "Failed to create recommendation", err)
		return
	}

	util.Created(c, gin.H{
		"message":           "Recommendation created successfully",
		"recommendation_id": rec.RecommendationID,
	})
}

// Get godoc
// @Summary Get a recommendation with user and course details
// @Tags recommendations
// @Produce json
// @Param id path int true "Recommendation ID"
// @Success 200 {object} repository.RecommendationRow
// @Failure 404 {object} map[string]string
// @Router /api/recommendations/{id} [get]
func (ctl *RecommendationController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	row, err := ctl.recService.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Recommendation not found")
			return
		}
		util.LogInternalError(c, "Failed to load recommendation", err)
		return
	}
	util.Success(c, row)
}

type recommendationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus godoc
// @Summary Update a recommendation's status
// @Tags recommendations
// @Accept json
// @Produce json
// @Param id path int true "Recommendation ID"
// @Param status body recommendationStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/recommendations/{id}/status [put]
func (ctl *RecommendationController) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req recommendationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "status is required")
		return
	}

	if err := ctl.recService.UpdateStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidStatus):
			util.BadRequest(c, util.ErrInvalidStatus.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(c, "Recommendation not found")
		default:
			util.LogInternalError(c, "Failed to update recommendation status", err)
		}
		return
	}
	util.Success(c, gin.H{"message": "Recommendation status updated successfully"})
}

// Delete godoc
// @Summary Delete a recommendation and its feedback
// @Tags recommendations
// @Produce json
// @Param id path int true "Recommendation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/recommendations/{id} [delete]
func (ctl *RecommendationController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.recService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Recommendation not found")
			return
		}
		util.LogInternalError(c, "Failed to delete recommendation", err)
		return
	}
	util.Success(c, gin.H{"message": "Recommendation deleted successfully"})
}

// Stats godoc
// @Summary Recommendation statistics overview
// @Tags recommendations
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/recommendations/stats/overview [get]
func (ctl *RecommendationController) Stats(c *gin.Context) {
	stats, err := ctl.recService.StatsOverview()
	if err != nil {
		util.LogInternalError(c, "Failed to load recommendation stats", err)
		return
	}
	util.Success(c, stats)
}
