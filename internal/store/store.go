package store

import (
	"time"

	"gorm.io/gorm"
)

// Store is the single entry point for all entity persistence. It is
// constructed once per session and passed by reference to every component
// that reads or mutates portfolio data; cascade rules and uniqueness
// constraints are enforced here, never at call sites.
type Store struct {
	DB *gorm.DB
}

// New wraps an open GORM DB in a Store.
func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// now returns the current time as epoch milliseconds, the timestamp unit
// used throughout the schema and the export document.
func now() int64 {
	return time.Now().UnixMilli()
}
