package models

import "time"

// Annotation is a typed note attached to a time range of a video
type Annotation struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	VideoID        uint      `json:"videoId" gorm:"not null;index"`
	StartTimeInSec int       `json:"startTimeInSec" gorm:"not null"`
	EndTimeInSec   int       `json:"endTimeInSec" gorm:"not null"`
	Type           string    `json:"type" gorm:"not null"`
	Notes          *string   `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName returns the table name for the Annotation model
func (Annotation) TableName() string {
	return "annotations"
}
