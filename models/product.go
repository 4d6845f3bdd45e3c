package models

import "time"

// Product represents a jewellery item in the catalogue
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Category    Category       `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	MetalID     uint           `gorm:"not null;index" json:"metal_id"`
	Metal       Metal          `gorm:"foreignKey:MetalID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"metal,omitempty"`
	Name        string         `gorm:"size:150;not null" json:"name"`
	Size        *string        `gorm:"size:30" json:"size"` // nullable, ring size / chain length
	Weight      float64        `gorm:"type:decimal(8,3);not null" json:"weight"` // grams
	HasGemstone bool           `gorm:"not null;default:false" json:"has_gemstone"`
	Cost        float64        `gorm:"type:decimal(12,2);not null" json:"cost"`
	Quantity    int            `gorm:"not null;default:0" json:"quantity"`
	Description string         `gorm:"type:text" json:"description"`
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Gems        []Gem          `gorm:"many2many:product_gems" json:"gems,omitempty"`
	Offers      []SeasonalOffer `gorm:"many2many:product_offers" json:"offers,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ProductImage represents a catalogue photo of a product.
// An image may be tagged with the gem it showcases.
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	URL       string    `gorm:"size:500;uniqueIndex;not null" json:"url"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	GemID     *uint     `gorm:"index" json:"gem_id"`
	Gem       *Gem      `gorm:"foreignKey:GemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"gem,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the ProductImage model
func (ProductImage) TableName() string {
	return "product_images"
}

// ProductGem is the join row linking a product to a gem set into it
type ProductGem struct {
	ProductID uint      `gorm:"primaryKey" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	GemID     uint      `gorm:"primaryKey" json:"gem_id"`
	Gem       *Gem      `gorm:"foreignKey:GemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the ProductGem join model
func (ProductGem) TableName() string {
	return "product_gems"
}
