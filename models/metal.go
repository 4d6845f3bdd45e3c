package models

import "time"

// MetalType enumerates the metals the business trades in
type MetalType string

const (
	MetalGold     MetalType = "GOLD"
	MetalSilver   MetalType = "SILVER"
	MetalRoseGold MetalType = "ROSE_GOLD"
)

// IsValid reports whether the metal type is one of the known values
func (m MetalType) IsValid() bool {
	switch m {
	case MetalGold, MetalSilver, MetalRoseGold:
		return true
	}
	return false
}

// Metal represents a metal/purity combination (e.g. GOLD 22K)
type Metal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      MetalType `gorm:"type:varchar(20);not null;uniqueIndex:idx_metals_type_purity;check:type IN ('GOLD','SILVER','ROSE_GOLD')" json:"type"`
	Purity    string    `gorm:"size:20;not null;uniqueIndex:idx_metals_type_purity" json:"purity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Metal model
func (Metal) TableName() string {
	return "metals"
}
