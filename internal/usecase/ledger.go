package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travelledger-service/internal/domain/entity"
	"travelledger-service/internal/domain/registry"
	"travelledger-service/internal/domain/repository"
	"travelledger-service/pkg/logger"
)

// Ledger handles single-record operations against the document store.
// Writes do not touch the published snapshot; callers trigger a full
// Refresh afterward to re-synchronize.
type Ledger struct {
	store      repository.DocumentStore
	currencies repository.CurrencyRepository
	logger     logger.Logger
}

// NewLedger creates a new ledger. currencies may be nil when no currency
// reference database is configured; foreign exchange codes are then accepted
// as entered.
func NewLedger(store repository.DocumentStore, currencies repository.CurrencyRepository, log logger.Logger) *Ledger {
	return &Ledger{
		store:      store,
		currencies: currencies,
		logger:     log,
	}
}

// Create validates and stores a new record, returning the assigned id.
func (l *Ledger) Create(ctx context.Context, rec entity.ServiceRecord) (string, error) {
	if err := l.validate(ctx, rec); err != nil {
		return "", err
	}

	collection := registry.CollectionOf(rec.Category())
	id, err := l.store.Create(ctx, collection, rec)
	if err != nil {
		return "", err
	}

	l.logger.Info("Record created", "category", rec.Category(), "id", id)
	return id, nil
}

// Update validates rec and overwrites the document with the given id.
func (l *Ledger) Update(ctx context.Context, tag entity.CategoryTag, id string, rec entity.ServiceRecord) error {
	if rec.Category() != tag {
		return fmt.Errorf("record category %s does not match %s", rec.Category(), tag)
	}
	if err := l.validate(ctx, rec); err != nil {
		return err
	}

	if err := l.store.Update(ctx, registry.CollectionOf(tag), id, rec); err != nil {
		return err
	}

	l.logger.Info("Record updated", "category", tag, "id", id)
	return nil
}

// Delete removes the document with the given id.
func (l *Ledger) Delete(ctx context.Context, tag entity.CategoryTag, id string) error {
	if err := l.store.Delete(ctx, registry.CollectionOf(tag), id); err != nil {
		return err
	}

	l.logger.Info("Record deleted", "category", tag, "id", id)
	return nil
}

// Find decodes the document with the given id into out.
func (l *Ledger) Find(ctx context.Context, tag entity.CategoryTag, id string, out interface{}) error {
	return l.store.GetByID(ctx, registry.CollectionOf(tag), id, out)
}

// DateRange decodes the category's records whose date field lies within
// [start, end] into out, most recent first.
func (l *Ledger) DateRange(ctx context.Context, tag entity.CategoryTag, start, end time.Time, out interface{}) error {
	return l.store.GetByDateRange(ctx, registry.CollectionOf(tag), registry.DateFieldOf(tag), start, end, out)
}

// CurrentMonth decodes the category's records for the calendar month of now.
func (l *Ledger) CurrentMonth(ctx context.Context, tag entity.CategoryTag, now time.Time, out interface{}) error {
	start, end := MonthBounds(now)
	return l.DateRange(ctx, tag, start, end, out)
}

// MonthBounds returns the first and last instant of t's calendar month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func (l *Ledger) validate(ctx context.Context, rec entity.ServiceRecord) error {
	if err := registry.Validate(rec); err != nil {
		return err
	}

	fx, ok := rec.(*entity.ForeignExchange)
	if !ok || l.currencies == nil {
		return nil
	}

	fx.Currency = strings.ToUpper(strings.TrimSpace(fx.Currency))
	if _, err := l.currencies.GetByCode(ctx, fx.Currency); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &registry.ValidationError{Tag: fx.Category(), Fields: []string{"currency"}}
		}
		return fmt.Errorf("currency lookup: %w", err)
	}
	return nil
}
