package models

import "time"

// SeasonalOffer represents a time-bounded promotion applied to products
type SeasonalOffer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	StartsAt  time.Time `gorm:"not null" json:"starts_at"`
	EndsAt    time.Time `gorm:"not null" json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the SeasonalOffer model
func (SeasonalOffer) TableName() string {
	return "seasonal_offers"
}

// ProductOffer is the join row linking a product to a seasonal offer
type ProductOffer struct {
	ProductID       uint           `gorm:"primaryKey" json:"product_id"`
	Product         *Product       `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	SeasonalOfferID uint           `gorm:"primaryKey" json:"seasonal_offer_id"`
	SeasonalOffer   *SeasonalOffer `gorm:"foreignKey:SeasonalOfferID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time      `json:"created_at"`
}

// TableName specifies the table name for the ProductOffer join model
func (ProductOffer) TableName() string {
	return "product_offers"
}
