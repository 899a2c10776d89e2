package controller

import (
	"errors"

	"coursepro_backend/internal/model"
	"coursepro_backend/internal/repository"
	"coursepro_backend/internal/service"
	"coursepro_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CourseController struct {
	courseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

type createCourseRequest struct {
	CourseName     string  `json:"course_name" binding:"required"`
	Description    string  `json:"description"`
	RequiredStrand string  `json:"required_strand"`
	MinimumGWA     float64 `json:"minimum_gwa" binding:"required,gte=75,lte=100"`
}

// List godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Param search query string false "Search name or description"
// @Param strand query string false "Filter by required strand"
// @Success 200 {object} util.ListResponse
// @Router /api/courses [get]
func (ctl *CourseController) List(c *gin.Context) {
	p := pagination(c)
	f := repository.CourseFilter{
		Search: c.Query("search"),
		Strand: c.Query("strand"),
	}

	courses, total, err := ctl.courseService.List(p, f)
	if err != nil {
		util.LogInternalError(c, "Failed to list courses", err)
		return
	}
	util.List(c, courses, paginationBlock(p, total))
}

// Create godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body createCourseRequest true "Course to create"
// @Success 201 {object} map[string]interface{}
// @Router /api/courses [post]
func (ctl *CourseController) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	course := &model.Course{
		CourseName:     req.CourseName,
		Description:    req.Description,
		RequiredStrand: req.RequiredStrand,
		MinimumGWA:     req.MinimumGWA,
	}
	if err := ctl.courseService.Create(course); err != nil {
		util.LogInternalError(c, "Failed to create course", err)
		return
	}

	util.Created(c, gin.H{
		"message":   "Course created successfully",
		"course_id": course.CourseID,
	})
}

// Get godoc
// @Summary Get a course by id
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} model.Course
// @Failure 404 {object} map[string]string
// @Router /api/courses/{id} [get]
func (ctl *CourseController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	course, err := ctl.courseService.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Course not found")
			return
		}
		util.LogInternalError(c, "Failed to load course", err)
		return
	}
	util.Success(c, course)
}

type updateCourseRequest struct {
	CourseName     *string  `json:"course_name"`
	Description    *string  `json:"description"`
	RequiredStrand *string  `json:"required_strand"`
	MinimumGWA     *float64 `json:"minimum_gwa" binding:"omitempty,gte=75,lte=100"`
}

// Update godoc
// @Summary Update a course (partial)
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param course body updateCourseRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/courses/{id} [put]
func (ctl *CourseController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.CourseName != nil {
		fields["course_name"] = *req.CourseName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.RequiredStrand != nil {
		fields["required_strand"] = *req.RequiredStrand
	}
	if req.MinimumGWA != nil {
		fields["minimum_gwa"] = *req.MinimumGWA
	}
	if len(fields) == 0 {
		util.BadRequest(c, util.ErrNoFieldsToUpdate.Error())
		return
	}

	course, err := ctl.courseService.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Course not found")
			return
		}
		util.LogInternalError(c, "Failed to update course", err)
		return
	}

	util.Success(c, gin.H{
		"message": "Course updated successfully",
		"course":  course,
	})
}

// Delete godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/courses/{id} [delete]
func (ctl *CourseController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.courseService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "Course not found")
			return
		}
		util.LogInternalError(c, "Failed to delete course", err)
		return
	}
	util.Success(c, gin.H{"message": "Course deleted successfully"})
}
