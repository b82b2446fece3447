package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ReportRecord is the database row behind one saved snapshot. Key is
// the derived persistence key; Value is the serialized snapshot exactly
// as the store wrote it. Vessel and ServiceTypes are denormalized from
// the snapshot at write time so saved reports can be queried with
// plain SQL; they are never read back into the snapshot.
type ReportRecord struct {
	Key          string         `gorm:"size:64;primaryKey" json:"key"`
	Value        datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	Vessel       string         `gorm:"size:255;index" json:"vessel"`
	ServiceTypes pq.StringArray `gorm:"type:text[]" json:"serviceTypes"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
