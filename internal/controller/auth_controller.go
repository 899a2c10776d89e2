package controller

import (
	"errors"
	"strings"

	"coursepro_backend/internal/service"
	"coursepro_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Email and password are required")
		return
	}

	result, err := ctl.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Unauthorized(c, util.ErrInvalidCredentials.Error())
		case errors.Is(err, util.ErrAccountDeactivated):
			util.Forbidden(c, util.ErrAccountDeactivated.Error())
		default:
			util.LogInternalError(c, "Login failed", err)
		}
		return
	}

	util.Success(c, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    service.NewUserView(result.User),
	})
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/auth/logout [post]
func (ctl *AuthController) Logout(c *gin.Context) {
	// Tokens are stateless; the client discards its copy.
	util.Success(c, gin.H{"message": "Logout successful"})
}

// Profile godoc
// @Summary Current user from the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.UserView
// @Failure 401 {object} map[string]string
// @Router /api/auth/profile [get]
func (ctl *AuthController) Profile(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		util.Unauthorized(c, "Authorization token required")
		return
	}

	user, err := ctl.authService.Profile(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(c, "Invalid or expired token")
			return
		}
		util.LogInternalError(c, "Failed to load profile", err)
		return
	}

	util.Success(c, service.NewUserView(user))
}
