package config

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"fleachain_backend/models"
)

// OpenDatabase opens the volatile in-memory SQLite database backing one
// session. Every process start begins from an empty schema; nothing survives
// a restart.
func OpenDatabase() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// A single connection keeps all gorm sessions on the same in-memory
	// database; a second connection would see an empty one.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Review{},
		&models.Message{},
	)

	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database Migrations completed succesfully...")
	return nil
}
