package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tambolahq/tambola-backend/models"
)

// SetupDatabase connects to Postgres and migrates the archive schema.
// Returns nil when no DSN is configured; the caller treats that as
// "archive disabled".
func SetupDatabase(dsn string) *gorm.DB {
	if dsn == "" {
		log.Println("[INFO] DATABASE_URL not set, round archive disabled")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to DB: %v", err)
	}

	if err := db.AutoMigrate(&models.Round{}); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}

	log.Println("Database migration completed")
	return db
}
