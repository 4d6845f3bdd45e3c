package models

import "time"

// MaterialRate records the per-gram rate of a metal on a given date.
// Exactly one rate may exist per (metal, date) pair.
type MaterialRate struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MetalID     uint      `gorm:"not null;uniqueIndex:idx_rates_metal_date" json:"metal_id"`
	Metal       Metal     `gorm:"foreignKey:MetalID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"metal,omitempty"`
	RatePerGram float64   `gorm:"type:decimal(10,2);not null" json:"rate_per_gram"`
	RateDate    time.Time `gorm:"type:date;not null;uniqueIndex:idx_rates_metal_date" json:"rate_date"`
	UpdatedByID *uint     `gorm:"index" json:"updated_by_id"` // nullable, staff member who entered the rate
	UpdatedBy   *User     `gorm:"foreignKey:UpdatedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"updated_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the MaterialRate model
func (MaterialRate) TableName() string {
	return "material_rates"
}
