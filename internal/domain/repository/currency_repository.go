package repository

import (
	"context"

	"travelledger-service/internal/domain/entity"
)

// CurrencyRepository provides currency reference data for validating
// foreign exchange records.
type CurrencyRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Currency, error)
	List(ctx context.Context) ([]entity.Currency, error)
}
