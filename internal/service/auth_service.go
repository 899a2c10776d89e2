package service

import (
	"errors"
	"time"

	"coursepro_backend/internal/config"
	"coursepro_backend/internal/model"
	"coursepro_backend/internal/repository"
	"coursepro_backend/internal/util"
	"coursepro_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo *repository.UserRepository
	jwtCfg   *config.JWTConfig
}

func NewAuthService(userRepo *repository.UserRepository, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{userRepo: userRepo, jwtCfg: jwtCfg}
}

// HashPassword digests the first 72 bytes of the password. bcrypt rejects
// longer inputs outright, so truncation has to happen here and in
// VerifyPassword identically or long passwords could never log in.
func HashPassword(password string) (string, error) {
	raw := []byte(password)
	if len(raw) > 72 {
		raw = raw[:72]
	}
	digest, err := bcrypt.GenerateFromPassword(raw, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether the password matches the digest. A malformed
// digest reads as a mismatch, never an error.
func VerifyPassword(digest, password string) bool {
	raw := []byte(password)
	if len(raw) > 72 {
		raw = raw[:72]
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), raw) == nil
}

type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login checks credentials and issues a JWT. Unknown email and wrong password
// return the same error so the endpoint cannot be used to probe accounts.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return nil, util.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, util.ErrAccountDeactivated
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.UserID, now); err != nil {
		logger.Log.Warn("failed to update last_login", zap.Uint("user_id", user.UserID), zap.Error(err))
	} else {
		user.LastLogin = &now
	}

	token, err := util.GenerateJWT(user, s.jwtCfg.Secret, s.jwtCfg.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Profile resolves the bearer token back to its user.
func (s *AuthService) Profile(tokenString string) (*model.User, error) {
	claims, err := util.ParseJWT(tokenString, s.jwtCfg.Secret)
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return s.userRepo.FindByID(claims.UserID)
}
