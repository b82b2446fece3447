package reportstore

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"p9e.in/marinereport/models"
)

// GormKV backs the KV capability with the report_records table.
// Read-after-write holds because every call goes straight to the
// database; there is no cache in front.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (g *GormKV) Put(key, value string) error {
	rec := models.ReportRecord{
		Key:   key,
		Value: []byte(value),
	}

	// Denormalize vessel and service types for ad-hoc SQL over saved
	// reports. Best effort: an unparseable value still persists.
	var snap models.Snapshot
	if err := json.Unmarshal([]byte(value), &snap); err == nil {
		rec.Vessel = snap.Form.VesselName
		rec.ServiceTypes = snap.Form.ServiceTypes.Display()
	}

	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&rec).Error
}

func (g *GormKV) Get(key string) (string, bool, error) {
	var rec models.ReportRecord
	err := g.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(rec.Value), true, nil
}

func (g *GormKV) Keys() ([]string, error) {
	var keys []string
	if err := g.db.Model(&models.ReportRecord{}).Order("key").Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func (g *GormKV) Delete(key string) error {
	return g.db.Delete(&models.ReportRecord{}, "key = ?", key).Error
}
