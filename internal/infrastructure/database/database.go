package database

import (
	"stockfolio/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Open opens a GORM DB over a local SQLite file. The driver is pure Go
// (glebarez/sqlite), so the store stays entirely on the client device with
// no cgo and no external service.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// AutoMigrate runs migrations for all portfolio models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Account{},
		&domain.Stock{},
		&domain.Holding{},
		&domain.Tag{},
		&domain.StockTag{},
	)
}
