package model

import "time"

// Feedback is append-only. recommendation_id is null for overall (not
// recommendation-specific) feedback; user_id is null for anonymous entries.
// swagger:model Feedback
type Feedback struct {
	FeedbackID       uint      `gorm:"column:feedback_id;primaryKey;autoIncrement" json:"feedback_id"`
	RecommendationID *uint     `gorm:"index" json:"recommendation_id"`
	UserID           *uint     `gorm:"index" json:"user_id"`
	Rating           int       `gorm:"not null" json:"rating"`
	FeedbackText     string    `gorm:"type:text" json:"feedback_text"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "recommendation_feedback"
}
