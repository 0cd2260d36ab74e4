package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"travelledger-service/internal/domain/entity"
	"travelledger-service/internal/domain/repository"
)

// fakeStore is an in-memory DocumentStore with per-collection data and
// error injection.
type fakeStore struct {
	mu      sync.Mutex
	data    map[string]interface{}
	errs    map[string]error
	created map[string][]interface{}
	updated map[string]interface{}
	deleted []string
	nextID  string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data:    make(map[string]interface{}),
		errs:    make(map[string]error),
		created: make(map[string][]interface{}),
		updated: make(map[string]interface{}),
		nextID:  "6650c4a9e6a1b2c3d4e5f601",
	}
}

func (s *fakeStore) Create(ctx context.Context, collection string, record interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errs[collection]; err != nil {
		return "", err
	}
	s.created[collection] = append(s.created[collection], record)
	return s.nextID, nil
}

func (s *fakeStore) Update(ctx context.Context, collection, id string, patch interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errs[collection]; err != nil {
		return err
	}
	s.updated[collection+"/"+id] = patch
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errs[collection]; err != nil {
		return err
	}
	s.deleted = append(s.deleted, collection+"/"+id)
	return nil
}

func (s *fakeStore) GetAll(ctx context.Context, collection string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.errs[collection]; err != nil {
		return err
	}
	src, ok := s.data[collection]
	if !ok {
		return nil
	}
	switch dst := out.(type) {
	case *[]entity.FlightBooking:
		*dst = append(*dst, src.([]entity.FlightBooking)...)
	case *[]entity.HotelReservation:
		*dst = append(*dst, src.([]entity.HotelReservation)...)
	case *[]entity.CarRental:
		*dst = append(*dst, src.([]entity.CarRental)...)
	case *[]entity.VisaApplication:
		*dst = append(*dst, src.([]entity.VisaApplication)...)
	case *[]entity.ForeignExchange:
		*dst = append(*dst, src.([]entity.ForeignExchange)...)
	case *[]entity.TourPackage:
		*dst = append(*dst, src.([]entity.TourPackage)...)
	case *[]entity.TrainBooking:
		*dst = append(*dst, src.([]entity.TrainBooking)...)
	case *[]entity.Vajabhat:
		*dst = append(*dst, src.([]entity.Vajabhat)...)
	default:
		return fmt.Errorf("unexpected decode target %T", out)
	}
	return nil
}

func (s *fakeStore) GetByID(ctx context.Context, collection, id string, out interface{}) error {
	return repository.ErrNotFound
}

func (s *fakeStore) GetByDateRange(ctx context.Context, collection, dateField string, start, end time.Time, out interface{}) error {
	return s.GetAll(ctx, collection, out)
}

// fakeCurrencies knows a fixed set of currency codes.
type fakeCurrencies struct {
	codes map[string]string
}

func (f *fakeCurrencies) GetByCode(ctx context.Context, code string) (*entity.Currency, error) {
	name, ok := f.codes[code]
	if !ok {
		return nil, fmt.Errorf("currency %s: %w", code, repository.ErrNotFound)
	}
	return &entity.Currency{Code: code, Name: name}, nil
}

func (f *fakeCurrencies) List(ctx context.Context) ([]entity.Currency, error) {
	out := make([]entity.Currency, 0, len(f.codes))
	for code, name := range f.codes {
		out = append(out, entity.Currency{Code: code, Name: name})
	}
	return out, nil
}
