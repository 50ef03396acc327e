package database

import (
	"fmt"
	"log"
	"os"

	"stayhub/config"
	"stayhub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDb establishes a connection to PostgreSQL, runs migrations and
// returns the handle. Services receive it explicitly instead of reading a
// package global.
func ConnectDb() *gorm.DB {
	cfg := config.AppConfig

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey,
	// which the repository maps to a Conflict.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	return db
}

// Migrate performs database migrations. Exported so tests can run the same
// schema against an in-memory database.
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Place{},
		&models.Review{},
		&models.Amenity{},
	)
	if err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}
