package entity

import (
	"time"
)

// TaggedRecord pairs a record with its category. The tag is attached when a
// snapshot is assembled, so downstream views never have to guess a record's
// category from its shape.
type TaggedRecord struct {
	Tag    CategoryTag
	Record ServiceRecord
}

// Snapshot is the full in-memory copy of every collection, fetched in one
// refresh. It is published wholesale and never patched in place; one typed
// slice per category keeps the set of categories closed at compile time.
type Snapshot struct {
	Flights          []FlightBooking
	Hotels           []HotelReservation
	Cars             []CarRental
	Visas            []VisaApplication
	ForeignExchanges []ForeignExchange
	TourPackages     []TourPackage
	Trains           []TrainBooking
	Vajabhats        []Vajabhat

	FetchedAt time.Time
}

// Count returns how many records the snapshot holds for one category.
func (s *Snapshot) Count(tag CategoryTag) int {
	switch tag {
	case CategoryFlight:
		return len(s.Flights)
	case CategoryHotel:
		return len(s.Hotels)
	case CategoryCar:
		return len(s.Cars)
	case CategoryVisa:
		return len(s.Visas)
	case CategoryForeignExchange:
		return len(s.ForeignExchanges)
	case CategoryTourPackage:
		return len(s.TourPackages)
	case CategoryTrain:
		return len(s.Trains)
	case CategoryVajabhat:
		return len(s.Vajabhats)
	}
	return 0
}

// TotalCount returns the number of records across all categories.
func (s *Snapshot) TotalCount() int {
	total := 0
	for _, tag := range Categories() {
		total += s.Count(tag)
	}
	return total
}

// Records returns one category's records behind the ServiceRecord interface,
// in the store's native order.
func (s *Snapshot) Records(tag CategoryTag) []ServiceRecord {
	out := make([]ServiceRecord, 0, s.Count(tag))
	switch tag {
	case CategoryFlight:
		for i := range s.Flights {
			out = append(out, &s.Flights[i])
		}
	case CategoryHotel:
		for i := range s.Hotels {
			out = append(out, &s.Hotels[i])
		}
	case CategoryCar:
		for i := range s.Cars {
			out = append(out, &s.Cars[i])
		}
	case CategoryVisa:
		for i := range s.Visas {
			out = append(out, &s.Visas[i])
		}
	case CategoryForeignExchange:
		for i := range s.ForeignExchanges {
			out = append(out, &s.ForeignExchanges[i])
		}
	case CategoryTourPackage:
		for i := range s.TourPackages {
			out = append(out, &s.TourPackages[i])
		}
	case CategoryTrain:
		for i := range s.Trains {
			out = append(out, &s.Trains[i])
		}
	case CategoryVajabhat:
		for i := range s.Vajabhats {
			out = append(out, &s.Vajabhats[i])
		}
	}
	return out
}

// Tagged flattens the snapshot into one sequence, category order first, each
// category keeping the store's native order.
func (s *Snapshot) Tagged() []TaggedRecord {
	out := make([]TaggedRecord, 0, s.TotalCount())
	for _, tag := range Categories() {
		for _, rec := range s.Records(tag) {
			out = append(out, TaggedRecord{Tag: tag, Record: rec})
		}
	}
	return out
}
