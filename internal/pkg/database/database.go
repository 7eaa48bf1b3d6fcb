package database

import "gorm.io/gorm"

var DB *gorm.DB

// GetDB returns the global database handle.
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the global database handle. Used by tests to point the
// application at an in-memory database.
func SetDB(db *gorm.DB) {
	DB = db
}
