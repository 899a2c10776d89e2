package service

import (
	"errors"
	"fmt"

	"coursepro_backend/internal/model"
	"coursepro_backend/internal/repository"
	"coursepro_backend/internal/util"

	"gorm.io/gorm"
)

type FeedbackService struct {
	feedbackRepo *repository.FeedbackRepository
	recRepo      *repository.RecommendationRepository
}

func NewFeedbackService(feedbackRepo *repository.FeedbackRepository, recRepo *repository.RecommendationRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo, recRepo: recRepo}
}

type SubmitFeedbackInput struct {
	RecommendationID *uint  `json:"recommendation_id"`
	UserID           *uint  `json:"user_id"`
	Rating           int    `json:"rating" binding:"required"`
	FeedbackText     string `json:"feedback_text"`
}

// Submit validates the rating range and, when a recommendation is referenced,
// its existence.
func (s *FeedbackService) Submit(in SubmitFeedbackInput) (*model.Feedback, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, util.ErrRatingOutOfRange
	}

	if in.RecommendationID != nil {
		if _, err := s.recRepo.FindByID(*in.RecommendationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("recommendation: %w", gorm.ErrRecordNotFound)
			}
			return nil, err
		}
	}

	fb := &model.Feedback{
		RecommendationID: in.RecommendationID,
		UserID:           in.UserID,
		Rating:           in.Rating,
		FeedbackText:     in.FeedbackText,
	}
	if err := s.feedbackRepo.Create(fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *FeedbackService) List(p repository.Pagination, f repository.FeedbackFilter) ([]repository.FeedbackRow, int64, error) {
	rows, total, err := s.feedbackRepo.List(p, f)
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].UserName = joinName(rows[i].FirstName, rows[i].LastName)
	}
	return rows, total, nil
}

func (s *FeedbackService) Get(id uint) (*repository.FeedbackRow, error) {
	row, err := s.feedbackRepo.GetRow(id)
	if err != nil {
		return nil, err
	}
	row.UserName = joinName(row.FirstName, row.LastName)
	return row, nil
}

func (s *FeedbackService) StatsOverview() (*model.FeedbackStats, error) {
	return s.feedbackRepo.Stats()
}
