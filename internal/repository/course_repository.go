package repository

import (
	"coursepro_backend/internal/model"

	"gorm.io/gorm"
)

type CourseFilter struct {
	Search string
	Strand string
}

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("course_id = ?", id).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) filtered(f CourseFilter) *gorm.DB {
	q := r.DB.Model(&model.Course{}).
		Scopes(Search(f.Search, "course_name", "description"))
	if f.Strand != "" {
		q = q.Where("required_strand = ?", f.Strand)
	}
	return q
}

func (r *CourseRepository) List(p Pagination, f CourseFilter) ([]model.Course, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []model.Course
	err := r.filtered(f).
		Order("course_id DESC").
		Scopes(p.Scope()).
		Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) Update(id uint, fields map[string]interface{}) (int64, error) {
	res := r.DB.Model(&model.Course{}).Where("course_id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *CourseRepository) Delete(id uint) (int64, error) {
	res := r.DB.Where("course_id = ?", id).Delete(&model.Course{})
	return res.RowsAffected, res.Error
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

// Candidates fetches up to limit courses for the recommender: the student's
// strand first, any courses when the strand has none. Order is stable
// (course_id) so repeated submissions bucket identically.
func (r *CourseRepository) Candidates(strand string, limit int) ([]model.Course, error) {
	var courses []model.Course
	if strand != "" {
		err := r.DB.Where("required_strand = ?", strand).
			Order("course_id").
			Limit(limit).
			Find(&courses).Error
		if err != nil {
			return nil, err
		}
	}
	if len(courses) == 0 {
		if err := r.DB.Order("course_id").Limit(limit).Find(&courses).Error; err != nil {
			return nil, err
		}
	}
	return courses, nil
}

func (r *CourseRepository) StrandDistribution() ([]model.StrandCount, error) {
	var rows []model.StrandCount
	err := r.DB.Model(&model.Course{}).
		Select("required_strand as strand, COUNT(*) as count").
		Group("required_strand").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}
