package repository

import (
	"time"

	"coursepro_backend/internal/model"

	"gorm.io/gorm"
)

type UserFilter struct {
	Search string
	Strand string
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Where("user_id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) filtered(f UserFilter) *gorm.DB {
	q := r.DB.Model(&model.User{}).
		Scopes(Search(f.Search, "first_name", "last_name", "email"))
	if f.Strand != "" {
		q = q.Where("strand = ?", f.Strand)
	}
	return q
}

// List returns one page of users plus the total matching count, filters
// applied identically to both queries.
func (r *UserRepository) List(p Pagination, f UserFilter) ([]model.User, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := r.filtered(f).
		Order("created_at DESC").
		Scopes(p.Scope()).
		Find(&users).Error
	return users, total, err
}

// Update applies only the supplied columns.
func (r *UserRepository) Update(id uint, fields map[string]interface{}) (int64, error) {
	res := r.DB.Model(&model.User{}).Where("user_id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) SetActive(id uint, active bool) (int64, error) {
	res := r.DB.Model(&model.User{}).Where("user_id = ?", id).Update("is_active", active)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.DB.Model(&model.User{}).Where("user_id = ?", id).Update("last_login", at).Error
}

// Delete removes the user and everything hanging off it. The cascade is
// explicit and ordered; the transaction keeps a half-deleted user from ever
// being observable.
func (r *UserRepository) Delete(id uint) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Recommendation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.UserTestAttempt{}).Error; err != nil {
			return err
		}
		res := tx.Where("user_id = ?", id).Delete(&model.User{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountSince(cutoff time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("created_at >= ?", cutoff).Count(&count).Error
	return count, err
}

func (r *UserRepository) StrandDistribution() ([]model.StrandCount, error) {
	var rows []model.StrandCount
	err := r.DB.Model(&model.User{}).
		Select("strand, COUNT(*) as count").
		Where("strand <> ''").
		Group("strand").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *UserRepository) GWAStats() (*model.GWAStats, error) {
	var stats model.GWAStats
	err := r.DB.Model(&model.User{}).
		Select("COALESCE(AVG(gwa), 0) as average, COALESCE(MIN(gwa), 0) as minimum, COALESCE(MAX(gwa), 0) as maximum, COUNT(CASE WHEN gwa >= 95 THEN 1 END) as high_achievers").
		Where("gwa IS NOT NULL").
		Scan(&stats).Error
	return &stats, err
}

// GWAValues returns all non-null averages; the analytics service buckets
// them into the fixed 75-100 ranges in Go.
func (r *UserRepository) GWAValues() ([]float64, error) {
	var values []float64
	err := r.DB.Model(&model.User{}).
		Where("gwa IS NOT NULL").
		Pluck("gwa", &values).Error
	return values, err
}

func (r *UserRepository) Recent(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}

// CreatedSince returns registration timestamps newer than the cutoff; the
// analytics service buckets them by month in Go to keep the SQL portable.
func (r *UserRepository) CreatedSince(cutoff time.Time) ([]time.Time, error) {
	var stamps []time.Time
	err := r.DB.Model(&model.User{}).
		Where("created_at >= ?", cutoff).
		Order("created_at").
		Pluck("created_at", &stamps).Error
	return stamps, err
}
