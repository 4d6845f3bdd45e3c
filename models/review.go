package models

import "time"

// Review represents a customer review, optionally imported from Google
type Review struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	GoogleReviewID *string   `gorm:"size:100;uniqueIndex" json:"google_review_id"` // nullable, unique when set
	Rating         int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Text           string    `gorm:"type:text" json:"text"`
	CuratorID      *uint     `gorm:"index" json:"curator_id"` // nullable, staff member who curated the review
	Curator        *User     `gorm:"foreignKey:CuratorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"curator,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}
