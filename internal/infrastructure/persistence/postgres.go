package persistence

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresDB opens the reference-data database
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
