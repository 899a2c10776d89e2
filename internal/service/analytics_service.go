package service

import (
	"sort"
	"time"

	"coursepro_backend/internal/model"
	"coursepro_backend/internal/repository"
)

type AnalyticsService struct {
	userRepo   *repository.UserRepository
	courseRepo *repository.CourseRepository
	testRepo   *repository.TestRepository
	recRepo    *repository.RecommendationRepository
}

func NewAnalyticsService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	testRepo *repository.TestRepository,
	recRepo *repository.RecommendationRepository,
) *AnalyticsService {
	return &AnalyticsService{userRepo: userRepo, courseRepo: courseRepo, testRepo: testRepo, recRepo: recRepo}
}

// SystemOverview aggregates entity counts, 30-day activity, and the
// recommendation performance block.
func (s *AnalyticsService) SystemOverview() (map[string]interface{}, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	totalCourses, err := s.courseRepo.Count()
	if err != nil {
		return nil, err
	}
	totalTests, err := s.testRepo.Count()
	if err != nil {
		return nil, err
	}
	totalQuestions, err := s.testRepo.CountQuestions()
	if err != nil {
		return nil, err
	}
	totalRecs, err := s.recRepo.Count()
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -30)
	newUsers, err := s.userRepo.CountSince(cutoff)
	if err != nil {
		return nil, err
	}
	newRecs, err := s.recRepo.CountSince(cutoff)
	if err != nil {
		return nil, err
	}

	dist, err := s.recRepo.StatusDistribution()
	if err != nil {
		return nil, err
	}
	perf := statusPerformance(totalRecs, dist)

	return map[string]interface{}{
		"overview": model.SystemOverview{
			TotalUsers:           totalUsers,
			TotalCourses:         totalCourses,
			TotalTests:           totalTests,
			TotalQuestions:       totalQuestions,
			TotalRecommendations: totalRecs,
		},
		"recent_activity": model.RecentActivity{
			NewUsers30d:           newUsers,
			NewRecommendations30d: newRecs,
		},
		"recommendation_performance": perf,
	}, nil
}

// gwaRanges are the fixed reporting buckets, highest first. Bounds are
// inclusive; values below 75 fall outside every bucket.
var gwaRanges = []struct {
	label     string
	low, high float64
}{
	{"95-100", 95, 100},
	{"90-94", 90, 94.9999},
	{"85-89", 85, 89.9999},
	{"80-84", 80, 84.9999},
	{"75-79", 75, 79.9999},
}

func (s *AnalyticsService) UserAnalytics() (map[string]interface{}, error) {
	strands, err := s.userRepo.StrandDistribution()
	if err != nil {
		return nil, err
	}

	values, err := s.userRepo.GWAValues()
	if err != nil {
		return nil, err
	}
	ranges := make([]model.GWARangeCount, len(gwaRanges))
	for i, r := range gwaRanges {
		ranges[i] = model.GWARangeCount{GWARange: r.label}
		for _, v := range values {
			if v >= r.low && v <= r.high {
				ranges[i].Count++
			}
		}
	}

	stamps, err := s.userRepo.CreatedSince(monthsAgo(12))
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"strand_distribution": strands,
		"gwa_distribution":    ranges,
		"registration_trend":  bucketByMonth(stamps),
	}, nil
}

func (s *AnalyticsService) CourseAnalytics() (map[string]interface{}, error) {
	popularity, err := s.recRepo.TopCourses(20)
	if err != nil {
		return nil, err
	}
	for i := range popularity {
		if popularity[i].RecommendationCount > 0 {
			popularity[i].AcceptanceRate = roundRate(
				float64(popularity[i].AcceptedCount) / float64(popularity[i].RecommendationCount) * 100)
		}
	}

	strands, err := s.courseRepo.StrandDistribution()
	if err != nil {
		return nil, err
	}

	stamps, err := s.recRepo.RecommendedSince(monthsAgo(6))
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"course_popularity":    popularity,
		"strand_distribution":  strands,
		"recommendation_trend": bucketByMonth(stamps),
	}, nil
}

func (s *AnalyticsService) RecommendationAnalytics() (map[string]interface{}, error) {
	dist, err := s.recRepo.StatusDistribution()
	if err != nil {
		return nil, err
	}

	stamps, err := s.recRepo.RecommendedSince(monthsAgo(6))
	if err != nil {
		return nil, err
	}

	top, err := s.recRepo.TopCourses(5)
	if err != nil {
		return nil, err
	}
	for i := range top {
		if top[i].RecommendationCount > 0 {
			top[i].AcceptanceRate = roundRate(
				float64(top[i].AcceptedCount) / float64(top[i].RecommendationCount) * 100)
		}
	}

	return map[string]interface{}{
		"status_distribution":  dist,
		"recommendation_trend": bucketByMonth(stamps),
		"top_courses":          top,
	}, nil
}

func monthsAgo(n int) time.Time {
	return time.Now().AddDate(0, -n, 0)
}

// bucketByMonth groups timestamps into YYYY-MM counts, oldest first. Done in
// Go so the same code runs against postgres and the sqlite test database.
func bucketByMonth(stamps []time.Time) []model.MonthCount {
	counts := map[string]int64{}
	for _, t := range stamps {
		counts[t.Format("2006-01")]++
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]model.MonthCount, len(months))
	for i, m := range months {
		out[i] = model.MonthCount{Month: m, Count: counts[m]}
	}
	return out
}
