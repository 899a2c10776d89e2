package service

import (
	"errors"
	"strings"
	"time"

	"coursepro_backend/internal/model"
	"coursepro_backend/internal/repository"
	"coursepro_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UserView is the sanitized user shape for responses. full_name is derived,
// the password hash never leaves the model.
type UserView struct {
	UserID    uint       `json:"user_id"`
	Username  string     `json:"username"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Strand    string     `json:"strand"`
	GWA       *float64   `json:"gwa"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewUserView(u *model.User) UserView {
	return UserView{
		UserID:    u.UserID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Email:     u.Email,
		Strand:    u.Strand,
		GWA:       u.GWA,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type CreateUserInput struct {
	FullName  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Strand    string
	GWA       *float64
}

// Create accepts either a full name or a first/last split. The username
// defaults to the email local part, matching how the signup flow named
// accounts.
func (s *UserService) Create(in CreateUserInput) (*model.User, error) {
	first, last := in.FirstName, in.LastName
	if first == "" && last == "" && in.FullName != "" {
		first, last = model.SplitFullName(in.FullName)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	username := in.Email
	if at := strings.Index(in.Email, "@"); at > 0 {
		username = in.Email[:at]
	}

	user := &model.User{
		Username:     username,
		FirstName:    first,
		LastName:     last,
		Email:        in.Email,
		PasswordHash: hash,
		Strand:       in.Strand,
		GWA:          in.GWA,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(id uint) (*model.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *UserService) List(p repository.Pagination, f repository.UserFilter) ([]UserView, int64, error) {
	users, total, err := s.userRepo.List(p, f)
	if err != nil {
		return nil, 0, err
	}
	views := make([]UserView, len(users))
	for i := range users {
		views[i] = NewUserView(&users[i])
	}
	return views, total, nil
}

type UpdateUserInput struct {
	FullName  *string
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Strand    *string
	GWA       *float64
	IsActive  *bool
}

// Update applies only the supplied fields. An empty input is a 400 at the
// controller; here it surfaces as ErrNoFieldsToUpdate.
func (s *UserService) Update(id uint, in UpdateUserInput) (*model.User, error) {
	fields := map[string]interface{}{}

	if in.FullName != nil {
		first, last := model.SplitFullName(*in.FullName)
		fields["first_name"] = first
		fields["last_name"] = last
	}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Password != nil {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}
	if in.Strand != nil {
		fields["strand"] = *in.Strand
	}
	if in.GWA != nil {
		fields["gwa"] = *in.GWA
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) == 0 {
		return nil, util.ErrNoFieldsToUpdate
	}

	affected, err := s.userRepo.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEmailExists
		}
		return nil, err
	}
	if affected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.userRepo.FindByID(id)
}

func (s *UserService) SetActive(id uint, active bool) error {
	affected, err := s.userRepo.SetActive(id, active)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *UserService) Delete(id uint) error {
	affected, err := s.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *UserService) StatsOverview() (map[string]interface{}, error) {
	total, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	recent, err := s.userRepo.CountSince(time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	strands, err := s.userRepo.StrandDistribution()
	if err != nil {
		return nil, err
	}
	gwa, err := s.userRepo.GWAStats()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"total_users":         total,
		"new_users_30d":       recent,
		"strand_distribution": strands,
		"gwa_stats":           gwa,
	}, nil
}
