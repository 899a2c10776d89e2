package repository

import (
	"coursepro_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackFilter struct {
	UserID int
	Rating int
	Search string
}

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

// FeedbackRow is a feedback entry joined with its author and, through the
// recommendation, the course it concerns.
type FeedbackRow struct {
	model.Feedback
	FirstName  string `gorm:"column:first_name" json:"-"`
	LastName   string `gorm:"column:last_name" json:"-"`
	UserEmail  string `gorm:"column:user_email" json:"user_email"`
	UserName   string `gorm:"-" json:"user_name"`
	CourseName string `gorm:"column:course_name" json:"course_name"`
}

func (r *FeedbackRepository) Create(fb *model.Feedback) error {
	return r.DB.Create(fb).Error
}

func (r *FeedbackRepository) joined() *gorm.DB {
	return r.DB.Model(&model.Feedback{}).
		Select("recommendation_feedback.*, users.first_name, users.last_name, users.email as user_email, courses.course_name").
		Joins("LEFT JOIN users ON users.user_id = recommendation_feedback.user_id").
		Joins("LEFT JOIN recommendations ON recommendations.recommendation_id = recommendation_feedback.recommendation_id").
		Joins("LEFT JOIN courses ON courses.course_id = recommendations.course_id")
}

// applyFilter needs the joined query because search covers the author's name
// as well as the feedback text.
func (r *FeedbackRepository) applyFilter(q *gorm.DB, f FeedbackFilter) *gorm.DB {
	if f.UserID != 0 {
		q = q.Where("recommendation_feedback.user_id = ?", f.UserID)
	}
	if f.Rating != 0 {
		q = q.Where("recommendation_feedback.rating = ?", f.Rating)
	}
	q = q.Scopes(Search(f.Search,
		"recommendation_feedback.feedback_text", "users.first_name", "users.last_name"))
	return q
}

func (r *FeedbackRepository) List(p Pagination, f FeedbackFilter) ([]FeedbackRow, int64, error) {
	var total int64
	if err := r.applyFilter(r.joined(), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []FeedbackRow
	err := r.applyFilter(r.joined(), f).
		Order("recommendation_feedback.created_at DESC").
		Scopes(p.Scope()).
		Scan(&rows).Error
	return rows, total, err
}

func (r *FeedbackRepository) GetRow(id uint) (*FeedbackRow, error) {
	var row FeedbackRow
	res := r.joined().Where("recommendation_feedback.feedback_id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *FeedbackRepository) Delete(id uint) (int64, error) {
	res := r.DB.Where("feedback_id = ?", id).Delete(&model.Feedback{})
	return res.RowsAffected, res.Error
}

func (r *FeedbackRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Feedback{}).Count(&count).Error
	return count, err
}

// Stats buckets ratings as positive (4-5), neutral (3), negative (1-2).
func (r *FeedbackRepository) Stats() (*model.FeedbackStats, error) {
	var stats model.FeedbackStats
	err := r.DB.Model(&model.Feedback{}).
		Select("COUNT(*) as total_feedback, " +
			"COALESCE(AVG(rating), 0) as average_rating, " +
			"COUNT(CASE WHEN rating >= 4 THEN 1 END) as positive_feedback, " +
			"COUNT(CASE WHEN rating = 3 THEN 1 END) as neutral_feedback, " +
			"COUNT(CASE WHEN rating <= 2 THEN 1 END) as negative_feedback, " +
			"COUNT(CASE WHEN feedback_text IS NOT NULL AND feedback_text <> '' THEN 1 END) as feedback_with_comments").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
