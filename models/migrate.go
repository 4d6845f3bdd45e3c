package models

import "gorm.io/gorm"

// MigrateAll registers the join tables and migrates every model.
// Order matters: parents before dependents so foreign keys resolve.
func MigrateAll(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Product{}, "Gems", &ProductGem{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&Product{}, "Offers", &ProductOffer{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&Role{},
		&Branch{},
		&User{},
		&Category{},
		&Metal{},
		&Gem{},
		&Product{},
		&ProductImage{},
		&MaterialRate{},
		&ServiceTicket{},
		&CustomDesign{},
		&Review{},
		&SeasonalOffer{},
		&Book{},
	)
}
