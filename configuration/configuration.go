package configuration

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"clinic-connect/models"
)

// ConfigDB opens the postgres connection and migrates the schema. The handle
// is returned to the caller rather than kept as a package global.
func ConfigDB() (*gorm.DB, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	dsn := os.Getenv("DB")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
