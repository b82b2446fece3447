package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyCode identifies one of the issuing entities a report can be
// raised under.
type CompanyCode string

const (
	CompanyPoseidon CompanyCode = "PMES"
	CompanyTriton   CompanyCode = "TESR"
)

// Company is an issuing entity whose letterhead appears on the printed
// report. The registry is fixed: exactly two entities, seeded into the
// database at startup and compiled in as the fallback when no database
// is configured.
type Company struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code      CompanyCode    `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address   string         `gorm:"type:text;not null" json:"address"`
	Phone     string         `gorm:"size:50" json:"phone"`
	Email     string         `gorm:"size:255" json:"email"`
	LogoURL   string         `gorm:"size:512" json:"logoUrl"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// DefaultCompanies returns the built-in issuing entity registry.
func DefaultCompanies() []Company {
	return []Company{
		{
			Code:    CompanyPoseidon,
			Name:    "Poseidon Marine Engineering Services Pte Ltd",
			Address: "21 Tuas Crescent, #04-12, Singapore 638710",
			Phone:   "+65 6861 4420",
			Email:   "service@poseidonmarine.sg",
			LogoURL: "/assets/logo-pmes.png",
		},
		{
			Code:    CompanyTriton,
			Name:    "Triton Engineering & Ship Repair LLC",
			Address: "Dock Road 7, Port Rashid, Dubai, UAE",
			Phone:   "+971 4 345 9981",
			Email:   "ops@tritonshiprepair.ae",
			LogoURL: "/assets/logo-tesr.png",
		},
	}
}

// CompanyByCode looks a company up in the built-in registry.
func CompanyByCode(code CompanyCode) (Company, bool) {
	for _, c := range DefaultCompanies() {
		if c.Code == code {
			return c, true
		}
	}
	return Company{}, false
}
