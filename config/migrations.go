package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"p9e.in/marinereport/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "12052026_create_report_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.ReportRecord{}, &models.Company{})
			},
		},
		{
			ID: "03072026_add_record_query_columns",
			Migrate: func(tx *gorm.DB) error {
				// Vessel and service_types were added after the first
				// release; AutoMigrate backfills the columns, existing
				// rows keep them empty until re-saved.
				return tx.AutoMigrate(&models.ReportRecord{})
			},
		},
	})
	return m.Migrate()
}
