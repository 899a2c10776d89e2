package model

// Aggregate row shapes returned by the analytics endpoints. These are
// response types, not tables.

type SystemOverview struct {
	TotalUsers           int64 `json:"total_users"`
	TotalCourses         int64 `json:"total_courses"`
	TotalTests           int64 `json:"total_tests"`
	TotalQuestions       int64 `json:"total_questions"`
	TotalRecommendations int64 `json:"total_recommendations"`
}

type RecentActivity struct {
	NewUsers30d           int64 `json:"new_users_30d"`
	NewRecommendations30d int64 `json:"new_recommendations_30d"`
}

type RecommendationPerformance struct {
	Total          int64   `json:"total"`
	Accepted       int64   `json:"accepted"`
	Rejected       int64   `json:"rejected"`
	Pending        int64   `json:"pending"`
	AcceptanceRate float64 `json:"acceptance_rate"`
}

type StrandCount struct {
	Strand string `json:"strand"`
	Count  int64  `json:"count"`
}

type GWARangeCount struct {
	GWARange string `json:"gwa_range"`
	Count    int64  `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type CoursePopularity struct {
	CourseID            uint    `json:"course_id"`
	CourseName          string  `json:"course_name"`
	RequiredStrand      string  `json:"required_strand"`
	RecommendationCount int64   `json:"recommendation_count"`
	AcceptedCount       int64   `json:"accepted_count"`
	AcceptanceRate      float64 `json:"acceptance_rate"`
}

type CourseMonthCount struct {
	Month           string `json:"month"`
	CourseName      string `json:"course_name"`
	Recommendations int64  `json:"recommendations"`
}

type GWAStats struct {
	Average       float64 `json:"average"`
	Minimum       float64 `json:"minimum"`
	Maximum       float64 `json:"maximum"`
	HighAchievers int64   `json:"high_achievers"`
}

type FeedbackStats struct {
	TotalFeedback        int64   `json:"total_feedback"`
	AverageRating        float64 `json:"average_rating"`
	PositiveFeedback     int64   `json:"positive_feedback"`
	NeutralFeedback      int64   `json:"neutral_feedback"`
	NegativeFeedback     int64   `json:"negative_feedback"`
	FeedbackWithComments int64   `json:"feedback_with_comments"`
}
