package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"p9e.in/marinereport/pkg/reportstore"
)

var DB *gorm.DB

// Store is the record store every handler goes through. Backed by
// Postgres when DB_DSN is set; otherwise by the in-memory session
// store, which behaves like the browser storage it stands in for.
var Store *reportstore.Store

func Connect() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Println("DB_DSN not set, using in-memory record store")
		Store = reportstore.New(reportstore.NewMemory())
		return
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := Migrations(DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Seed the issuing-company registry
	if err := SeedCompanies(DB); err != nil {
		log.Fatal("Failed to seed companies:", err)
	}

	Store = reportstore.New(reportstore.NewGormKV(DB))
}
