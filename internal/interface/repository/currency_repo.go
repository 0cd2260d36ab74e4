package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travelledger-service/internal/domain/entity"
	"travelledger-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormCurrencyRepository implements the CurrencyRepository interface
type GormCurrencyRepository struct {
	db *gorm.DB
}

// NewGormCurrencyRepository creates a new GORM currency repository
func NewGormCurrencyRepository(db *gorm.DB) repository.CurrencyRepository {
	return &GormCurrencyRepository{
		db: db,
	}
}

// Currencies GORM model for database mapping
type Currencies struct {
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;unique"`
	Name      string         `gorm:"column:name"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Currencies) TableName() string {
	return "m_currencies"
}

// GetByCode finds a currency by its ISO code
func (r *GormCurrencyRepository) GetByCode(ctx context.Context, code string) (*entity.Currency, error) {
	var currency Currencies
	result := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).First(&currency)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("currency %s: %w", code, repository.ErrNotFound)
		}
		return nil, result.Error
	}

	return toCurrencyEntity(&currency), nil
}

// List returns every known currency ordered by code
func (r *GormCurrencyRepository) List(ctx context.Context) ([]entity.Currency, error) {
	var rows []Currencies
	result := r.db.WithContext(ctx).Order("code asc").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	currencies := make([]entity.Currency, 0, len(rows))
	for i := range rows {
		currencies = append(currencies, *toCurrencyEntity(&rows[i]))
	}
	return currencies, nil
}

func toCurrencyEntity(row *Currencies) *entity.Currency {
	return &entity.Currency{
		ID:        row.ID,
		Code:      row.Code,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		DeletedAt: row.DeletedAt,
	}
}
