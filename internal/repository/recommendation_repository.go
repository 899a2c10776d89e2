package repository

import (
	"time"

	"coursepro_backend/internal/model"

	"gorm.io/gorm"
)

type RecommendationFilter struct {
	Status   string
	UserID   uint
	CourseID uint
}

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

// RecommendationRow is a recommendation joined with its student and course.
type RecommendationRow struct {
	model.Recommendation
	FirstName  string `gorm:"column:first_name" json:"-"`
	LastName   string `gorm:"column:last_name" json:"-"`
	UserEmail  string `gorm:"column:user_email" json:"user_email"`
	UserName   string `gorm:"-" json:"user_name"`
	CourseName string `gorm:"column:course_name" json:"course_name"`
}

func (r *RecommendationRepository) Create(rec *model.Recommendation) error {
	if rec.RecommendedAt.IsZero() {
		rec.RecommendedAt = time.Now()
	}
	return r.DB.Create(rec).Error
}

func (r *RecommendationRepository) FindByID(id uint) (*model.Recommendation, error) {
	var rec model.Recommendation
	err := r.DB.Where("recommendation_id = ?", id).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecommendationRepository) joined() *gorm.DB {
	return r.DB.Model(&model.Recommendation{}).
		Select("recommendations.*, users.first_name, users.last_name, users.email as user_email, courses.course_name").
		Joins("LEFT JOIN users ON users.user_id = recommendations.user_id").
		Joins("LEFT JOIN courses ON courses.course_id = recommendations.course_id")
}

func applyRecommendationFilter(q *gorm.DB, f RecommendationFilter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("recommendations.status = ?", f.Status)
	}
	if f.UserID != 0 {
		q = q.Where("recommendations.user_id = ?", f.UserID)
	}
	if f.CourseID != 0 {
		q = q.Where("recommendations.course_id = ?", f.CourseID)
	}
	return q
}

func (r *RecommendationRepository) List(p Pagination, f RecommendationFilter) ([]RecommendationRow, int64, error) {
	var total int64
	count := applyRecommendationFilter(r.DB.Model(&model.Recommendation{}), f)
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []RecommendationRow
	err := applyRecommendationFilter(r.joined(), f).
		Order("recommendations.recommended_at DESC").
		Scopes(p.Scope()).
		Scan(&rows).Error
	return rows, total, err
}

func (r *RecommendationRepository) GetRow(id uint) (*RecommendationRow, error) {
	var row RecommendationRow
	res := r.joined().Where("recommendations.recommendation_id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *RecommendationRepository) UpdateStatus(id uint, status string) (int64, error) {
	res := r.DB.Model(&model.Recommendation{}).
		Where("recommendation_id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// Delete removes feedback tied to the recommendation before the row itself.
func (r *RecommendationRepository) Delete(id uint) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recommendation_id = ?", id).Delete(&model.Feedback{}).Error; err != nil {
			return err
		}
		res := tx.Where("recommendation_id = ?", id).Delete(&model.Recommendation{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *RecommendationRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Recommendation{}).Count(&count).Error
	return count, err
}

func (r *RecommendationRepository) CountSince(cutoff time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Recommendation{}).
		Where("recommended_at >= ?", cutoff).
		Count(&count).Error
	return count, err
}

func (r *RecommendationRepository) StatusDistribution() ([]model.StatusCount, error) {
	var rows []model.StatusCount
	err := r.DB.Model(&model.Recommendation{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

// TopCourses ranks courses by how often they were recommended. The
// acceptance rate is derived in the service from the two counts.
func (r *RecommendationRepository) TopCourses(limit int) ([]model.CoursePopularity, error) {
	var rows []model.CoursePopularity
	err := r.DB.Model(&model.Recommendation{}).
		Select("recommendations.course_id, courses.course_name, courses.required_strand, COUNT(*) as recommendation_count, COUNT(CASE WHEN recommendations.status = 'accepted' THEN 1 END) as accepted_count").
		Joins("LEFT JOIN courses ON courses.course_id = recommendations.course_id").
		Group("recommendations.course_id, courses.course_name, courses.required_strand").
		Order("recommendation_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// RecommendedSince returns timestamps for Go-side month bucketing.
func (r *RecommendationRepository) RecommendedSince(cutoff time.Time) ([]time.Time, error) {
	var stamps []time.Time
	err := r.DB.Model(&model.Recommendation{}).
		Where("recommended_at >= ?", cutoff).
		Order("recommended_at").
		Pluck("recommended_at", &stamps).Error
	return stamps, err
}

func (r *RecommendationRepository) Recent(limit int) ([]RecommendationRow, error) {
	var rows []RecommendationRow
	err := r.joined().
		Order("recommendations.recommended_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
