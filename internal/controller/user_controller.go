package controller

import (
	"errors"

	"coursepro_backend/internal/repository"
	"coursepro_backend/internal/service"
	"coursepro_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

type createUserRequest struct {
	FullName  string   `json:"full_name"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=6"`
	Strand    string   `json:"strand"`
	GWA       *float64 `json:"gwa" binding:"omitempty,gte=75,lte=100"`
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Param search query string false "Search name or email"
// @Param strand query string false "Filter by strand"
// @Success 200 {object} util.ListResponse
// @Router /api/users [get]
func (ctl *UserController) List(c *gin.Context) {
	p := pagination(c)
	f := repository.UserFilter{
		Search: c.Query("search"),
		Strand: c.Query("strand"),
	}

	users, total, err := ctl.userService.List(p, f)
	if err != nil {
		util.LogInternalError(c, "Failed to list users", err)
		return
	}
	util.List(c, users, paginationBlock(p, total))
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body createUserRequest true "User to create"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Router /api/users [post]
func (ctl *UserController) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	if req.FullName == "" && req.FirstName == "" {
		util.BadRequest(c, "full_name or first_name is required")
		return
	}

	user, err := ctl.userService.Create(service.CreateUserInput{
		FullName:  req.FullName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Strand:    req.Strand,
		GWA:       req.GWA,
	})
	if err != nil {
		if errors.Is(err, util.ErrEmailExists) {
			util.Conflict(c, util.ErrEmailExists.Error())
			return
		}
		util.LogInternalError(c, "Failed to create user", err)
		return
	}

	util.Created(c, gin.H{
		"message": "User created successfully",
		"user_id": user.UserID,
	})
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} service.UserView
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [get]
func (ctl *UserController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := ctl.userService.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "User not found")
			return
		}
		util.LogInternalError(c, "Failed to load user", err)
		return
	}
	util.Success(c, service.NewUserView(user))
}

type updateUserRequest struct {
	FullName  *string  `json:"full_name"`
	FirstName *string  `json:"first_name"`
	LastName  *string  `json:"last_name"`
	Email     *string  `json:"email" binding:"omitempty,email"`
	Password  *string  `json:"password" binding:"omitempty,min=6"`
	Strand    *string  `json:"strand"`
	GWA       *float64 `json:"gwa" binding:"omitempty,gte=75,lte=100"`
	IsActive  *bool    `json:"is_active"`
}

// Update godoc
// @Summary Update a user (partial)
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body updateUserRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/users/{id} [put]
func (ctl *UserController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.userService.Update(id, service.UpdateUserInput{
		FullName:  req.FullName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Strand:    req.Strand,
		GWA:       req.GWA,
		IsActive:  req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoFieldsToUpdate):
			util.BadRequest(c, util.ErrNoFieldsToUpdate.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(c, "User not found")
		case errors.Is(err, util.ErrEmailExists):
			util.Conflict(c, util.ErrEmailExists.Error())
		default:
			util.LogInternalError(c, "Failed to update user", err)
		}
		return
	}

	util.Success(c, gin.H{
		"message": "User updated successfully",
		"user":    service.NewUserView(user),
	})
}

type userStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetStatus godoc
// @Summary Activate or deactivate a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param status body userStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/{id}/status [patch]
func (ctl *UserController) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req userStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "is_active is required")
		return
	}

	if err := ctl.userService.SetActive(id, *req.IsActive); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "User not found")
			return
		}
		util.LogInternalError(c, "Failed to update user status", err)
		return
	}

	message := "User activated successfully"
	if !*req.IsActive {
		message = "User deactivated successfully"
	}
	util.Success(c, gin.H{"message": message})
}

// Delete godoc
// @Summary Delete a user and all dependent records
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [delete]
func (ctl *UserController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.userService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(c, "User not found")
			return
		}
		util.LogInternalError(c, "Failed to delete user", err)
		return
	}
	util.Success(c, gin.H{"message": "User deleted successfully"})
}

// Stats godoc
// @Summary User statistics overview
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/users/stats/overview [get]
func (ctl *UserController) Stats(c *gin.Context) {
	stats, err := ctl.userService.StatsOverview()
	if err != nil {
		util.LogInternalError(c, "Failed to load user stats", err)
		return
	}
	util.Success(c, stats)
}
