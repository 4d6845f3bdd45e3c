package models

import "time"

// DesignStatus enumerates the lifecycle states of a custom-design request
type DesignStatus string

const (
	DesignNew        DesignStatus = "NEW"
	DesignReviewed   DesignStatus = "REVIEWED"
	DesignInProgress DesignStatus = "IN_PROGRESS"
	DesignQuoted     DesignStatus = "QUOTED"
	DesignClosed     DesignStatus = "CLOSED"
)

// IsValid reports whether the design status is one of the known values
func (s DesignStatus) IsValid() bool {
	switch s {
	case DesignNew, DesignReviewed, DesignInProgress, DesignQuoted, DesignClosed:
		return true
	}
	return false
}

// CustomDesign represents a bespoke jewellery request from a customer
type CustomDesign struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	CustomerName     string       `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone    string       `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail    string       `gorm:"size:150" json:"customer_email"`
	Budget           *float64     `gorm:"type:decimal(12,2)" json:"budget"` // nullable
	ImageURL         string       `gorm:"size:500;not null" json:"image_url"` // reference sketch/photo
	Description      string       `gorm:"type:text" json:"description"`
	Status           DesignStatus `gorm:"type:varchar(20);not null;default:'NEW';check:status IN ('NEW','REVIEWED','IN_PROGRESS','QUOTED','CLOSED')" json:"status"`
	AssigneeID       *uint        `gorm:"index" json:"assignee_id"`
	Assignee         *User        `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"assignee,omitempty"`
	PreferredMetalID *uint        `gorm:"index" json:"preferred_metal_id"`
	PreferredMetal   *Metal       `gorm:"foreignKey:PreferredMetalID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"preferred_metal,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// TableName specifies the table name for the CustomDesign model
func (CustomDesign) TableName() string {
	return "custom_designs"
}
