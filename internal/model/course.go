package model

import "time"

// swagger:model Course
type Course struct {
	CourseID       uint      `gorm:"column:course_id;primaryKey;autoIncrement" json:"course_id"`
	CourseName     string    `gorm:"size:255;not null" json:"course_name"`
	Description    string    `gorm:"type:text" json:"description"`
	RequiredStrand string    `gorm:"size:20;not null" json:"required_strand"`
	MinimumGWA     float64   `gorm:"column:minimum_gwa;not null" json:"minimum_gwa"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}
