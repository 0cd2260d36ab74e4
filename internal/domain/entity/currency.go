package entity

import (
	"time"

	"gorm.io/gorm"
)

// Currency is a reference row used to validate foreign exchange entries.
type Currency struct {
	ID        uint
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
