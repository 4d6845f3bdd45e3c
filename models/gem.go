package models

import "time"

// Gem represents a gemstone type set into products
type Gem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	KaratRate float64   `gorm:"type:decimal(10,2);not null" json:"karat_rate"` // rate per karat
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Gem model
func (Gem) TableName() string {
	return "gems"
}
