package service

import (
	"errors"
	"fmt"
	"math"

	"coursepro_backend/internal/model"
	"coursepro_backend/internal/repository"
	"coursepro_backend/internal/util"

	"gorm.io/gorm"
)

// candidateLimit caps how many courses the recommender buckets over.
const candidateLimit = 3

type RecommendationService struct {
	recRepo    *repository.RecommendationRepository
	userRepo   *repository.UserRepository
	courseRepo *repository.CourseRepository
}

func NewRecommendationService(
	recRepo *repository.RecommendationRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
) *RecommendationService {
	return &RecommendationService{recRepo: recRepo, userRepo: userRepo, courseRepo: courseRepo}
}

// SelectCourse buckets the score into one of the candidates. First match
// wins: 80+ takes the strongest candidate, 60+ the second, everything else
// the third, with the index wrapped when fewer candidates exist.
func SelectCourse(score, totalQuestions int, candidates []model.Course) (model.Course, string, error) {
	if len(candidates) == 0 {
		return model.Course{}, "", util.ErrNoCandidateCourse
	}

	var percentage float64
	if totalQuestions > 0 {
		percentage = float64(score) / float64(totalQuestions) * 100
	}

	var idx int
	switch {
	case percentage >= 80:
		idx = 0
	case percentage >= 60:
		idx = 1 % len(candidates)
	default:
		idx = 2 % len(candidates)
	}

	course := candidates[idx]
	reasoning := fmt.Sprintf("Based on your %.0f%% score, we recommend %s",
		math.Round(percentage), course.CourseName)
	return course, reasoning, nil
}

// RecommendForAttempt runs the recommender for a freshly submitted attempt
// and stores the resulting pending recommendation.
func (s *RecommendationService) RecommendForAttempt(attempt *model.UserTestAttempt, strand string) (*model.Recommendation, error) {
	candidates, err := s.courseRepo.Candidates(strand, candidateLimit)
	if err != nil {
		return nil, err
	}

	course, reasoning, err := SelectCourse(attempt.Score, attempt.TotalQuestions, candidates)
	if err != nil {
		return nil, err
	}

	rec := &model.Recommendation{
		AttemptID: &attempt.AttemptID,
		UserID:    attempt.UserID,
		CourseID:  course.CourseID,
		Reasoning: reasoning,
		Status:    model.RecommendationPending,
	}
	if err := s.recRepo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecommendationService) List(p repository.Pagination, f repository.RecommendationFilter) ([]repository.RecommendationRow, int64, error) {
	rows, total, err := s.recRepo.List(p, f)
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].UserName = joinName(rows[i].FirstName, rows[i].LastName)
	}
	return rows, total, nil
}

func (s *RecommendationService) Get(id uint) (*repository.RecommendationRow, error) {
	row, err := s.recRepo.GetRow(id)
	if err != nil {
		return nil, err
	}
	row.UserName = joinName(row.FirstName, row.LastName)
	return row, nil
}

// Create validates both foreign keys before inserting so a dangling user or
// course surfaces as a 404, not a constraint error.
func (s *RecommendationService) Create(rec *model.Recommendation) error {
	if _, err := s.userRepo.FindByID(rec.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user: %w", gorm.ErrRecordNotFound)
		}
		return err
	}
	if _, err := s.courseRepo.FindByID(rec.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("course: %w", gorm.ErrRecordNotFound)
		}
		return err
	}
	if rec.Status == "" {
		rec.Status = model.RecommendationPending
	}
	return s.recRepo.Create(rec)
}

func (s *RecommendationService) UpdateStatus(id uint, status string) error {
	if !model.RecommendationStatus(status).Valid() {
		return util.ErrInvalidStatus
	}
	affected, err := s.recRepo.UpdateStatus(id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *RecommendationService) Delete(id uint) error {
	affected, err := s.recRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// StatsOverview is the per-resource stats payload for recommendations.
func (s *RecommendationService) StatsOverview() (map[string]interface{}, error) {
	total, err := s.recRepo.Count()
	if err != nil {
		return nil, err
	}
	dist, err := s.recRepo.StatusDistribution()
	if err != nil {
		return nil, err
	}
	perf := statusPerformance(total, dist)
	return map[string]interface{}{
		"total_recommendations": total,
		"status_distribution":   dist,
		"acceptance_rate":       perf.AcceptanceRate,
	}, nil
}

// statusPerformance folds a status distribution into the performance block.
// The acceptance rate only counts decided recommendations.
func statusPerformance(total int64, dist []model.StatusCount) model.RecommendationPerformance {
	perf := model.RecommendationPerformance{Total: total}
	for _, row := range dist {
		switch model.RecommendationStatus(row.Status) {
		case model.RecommendationAccepted:
			perf.Accepted = row.Count
		case model.RecommendationRejected:
			perf.Rejected = row.Count
		case model.RecommendationPending:
			perf.Pending = row.Count
		}
	}
	if decided := perf.Accepted + perf.Rejected; decided > 0 {
		perf.AcceptanceRate = roundRate(float64(perf.Accepted) / float64(decided) * 100)
	}
	return perf
}

func roundRate(v float64) float64 {
	return math.Round(v*100) / 100
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
