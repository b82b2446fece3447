package config

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"p9e.in/marinereport/models"
)

// SeedCompanies inserts the two issuing entities if they are not
// already present. Safe to run on every startup.
func SeedCompanies(db *gorm.DB) error {
	for _, c := range models.DefaultCompanies() {
		var existing models.Company
		err := db.Where("code = ?", c.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&c).Error; err != nil {
			return err
		}
		log.Printf("Seeded company %s (%s)", c.Code, c.Name)
	}
	return nil
}
