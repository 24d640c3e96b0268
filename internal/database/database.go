package database

import (
	"house-rental/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens the local sqlite store at path (":memory:" for tests).
// Foreign keys are enforced so booking rows cascade with their listing.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	// Single connection: keeps the pragma in force on every statement and
	// gives :memory: stores one shared database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate runs migrations for all models. Integrity rules (non-empty
// text, positive price, valid status, start_date <= end_date) live in
// CHECK constraints declared on the models, so the storage engine itself
// rejects violating writes.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Listing{}, &domain.Booking{}, &domain.BookingEvent{})
}

// Reset drops and recreates all tables.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&domain.BookingEvent{}, &domain.Booking{}, &domain.Listing{}); err != nil {
		return err
	}
	return AutoMigrate(db)
}
