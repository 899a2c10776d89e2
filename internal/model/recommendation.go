package model

import "time"

type RecommendationStatus string

const (
	RecommendationPending  RecommendationStatus = "pending"
	RecommendationAccepted RecommendationStatus = "accepted"
	RecommendationRejected RecommendationStatus = "rejected"
)

func (s RecommendationStatus) Valid() bool {
	switch s {
	case RecommendationPending, RecommendationAccepted, RecommendationRejected:
		return true
	}
	return false
}

// swagger:model Recommendation
type Recommendation struct {
	RecommendationID uint                 `gorm:"column:recommendation_id;primaryKey;autoIncrement" json:"recommendation_id"`
	AttemptID        *uint                `gorm:"index" json:"attempt_id"`
	UserID           uint                 `gorm:"index;not null" json:"user_id"`
	CourseID         uint                 `gorm:"index;not null" json:"course_id"`
	Reasoning        string               `gorm:"type:text" json:"reasoning"`
	Status           RecommendationStatus `gorm:"size:20;default:'pending'" json:"status"`
	RecommendedAt    time.Time            `json:"recommended_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
