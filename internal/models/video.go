package models

import "time"

// Video describes a media asset and the duration its annotations are bounded by
type Video struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Link          string    `json:"link" gorm:"not null"`
	DurationInSec int       `json:"durationInSec" gorm:"not null"`
	Description   *string   `json:"description" gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Relationship, only populated when preloaded
	Annotations []Annotation `json:"annotations,omitempty" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the Video model
func (Video) TableName() string {
	return "videos"
}
