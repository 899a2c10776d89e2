package service

import (
	"coursepro_backend/internal/model"
	"coursepro_backend/internal/repository"

	"gorm.io/gorm"
)

type CourseService struct {
	courseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

func (s *CourseService) Create(course *model.Course) error {
	return s.courseRepo.Create(course)
}

func (s *CourseService) Get(id uint) (*model.Course, error) {
	return s.courseRepo.FindByID(id)
}

func (s *CourseService) List(p repository.Pagination, f repository.CourseFilter) ([]model.Course, int64, error) {
	return s.courseRepo.List(p, f)
}

func (s *CourseService) Update(id uint, fields map[string]interface{}) (*model.Course, error) {
	affected, err := s.courseRepo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.courseRepo.FindByID(id)
}

func (s *CourseService) Delete(id uint) error {
	affected, err := s.courseRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
