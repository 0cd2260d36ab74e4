// Package registry holds the fixed table describing the eight service
// categories: which collection stores each one, how it is labelled, which of
// its fields carries the transaction date, and how it renders as a table row.
// The table is total and closed; there are no dynamic categories.
package registry

import (
	"strconv"
	"time"

	"travelledger-service/internal/domain/entity"
)

const displayDateLayout = "02 Jan 2006"

// Definition describes one service category.
type Definition struct {
	Tag        entity.CategoryTag
	Collection string
	Label      string
	// DateField is the stored field name used for chronological queries.
	DateField string
	// Required lists the category-specific fields a record must carry.
	Required []string
	// Columns are the category's display column headers, amounts excluded.
	Columns []string
	// Row renders a record of this category into cells matching Columns.
	Row func(entity.ServiceRecord) []string
}

var definitions = []Definition{
	{
		Tag:        entity.CategoryFlight,
		Collection: "flightBookings",
		Label:      "Flight Booking",
		DateField:  "flightDate",
		Required:   []string{"fromLocation", "toLocation", "flightDate"},
		Columns:    []string{"From", "To", "Date", "Sector"},
		Row: func(rec entity.ServiceRecord) []string {
			f := rec.(*entity.FlightBooking)
			return []string{f.FromLocation, f.ToLocation, displayDate(f.FlightDate), f.Sector}
		},
	},
	{
		Tag:        entity.CategoryHotel,
		Collection: "hotelReservations",
		Label:      "Hotel Reservation",
		DateField:  "checkInDate",
		Required:   []string{"hotelName", "checkInDate"},
		Columns:    []string{"Hotel Name", "Check-in Date", "Check-out Date"},
		Row: func(rec entity.ServiceRecord) []string {
			h := rec.(*entity.HotelReservation)
			return []string{h.HotelName, displayDate(h.CheckInDate), displayDate(h.CheckOutDate)}
		},
	},
	{
		Tag:        entity.CategoryCar,
		Collection: "carRentals",
		Label:      "Car Rental",
		DateField:  "rentalDate",
		Required:   []string{"destination", "rentalDate"},
		Columns:    []string{"Destination", "Date", "Seaters"},
		Row: func(rec entity.ServiceRecord) []string {
			c := rec.(*entity.CarRental)
			return []string{c.Destination, displayDate(c.RentalDate), strconv.Itoa(c.Seaters)}
		},
	},
	{
		Tag:        entity.CategoryVisa,
		Collection: "visaApplications",
		Label:      "Visa",
		DateField:  "applicationDate",
		Required:   []string{"country", "applicationDate"},
		Columns:    []string{"Country", "Application Date"},
		Row: func(rec entity.ServiceRecord) []string {
			v := rec.(*entity.VisaApplication)
			return []string{v.Country, displayDate(v.ApplicationDate)}
		},
	},
	{
		Tag:        entity.CategoryForeignExchange,
		Collection: "foreignExchanges",
		Label:      "Foreign Exchange",
		DateField:  "createdAt",
		Required:   []string{"currency"},
		Columns:    []string{"Currency", "Rate"},
		Row: func(rec entity.ServiceRecord) []string {
			f := rec.(*entity.ForeignExchange)
			return []string{f.Currency, strconv.FormatFloat(f.Rate, 'f', -1, 64)}
		},
	},
	{
		Tag:        entity.CategoryTourPackage,
		Collection: "tourPackages",
		Label:      "Tour Package",
		DateField:  "startDate",
		Required:   []string{"destination", "startDate", "endDate"},
		Columns:    []string{"Destination", "Start Date", "End Date", "Total Cost"},
		Row: func(rec entity.ServiceRecord) []string {
			t := rec.(*entity.TourPackage)
			return []string{t.Destination, displayDate(t.StartDate), displayDate(t.EndDate), amountCell(t.TotalCost)}
		},
	},
	{
		Tag:        entity.CategoryTrain,
		Collection: "trainBookings",
		Label:      "Train Booking",
		DateField:  "trainDate",
		Required:   []string{"fromLocation", "toLocation", "trainDate"},
		Columns:    []string{"From", "To", "Date"},
		Row: func(rec entity.ServiceRecord) []string {
			t := rec.(*entity.TrainBooking)
			return []string{t.FromLocation, t.ToLocation, displayDate(t.TrainDate)}
		},
	},
	{
		Tag:        entity.CategoryVajabhat,
		Collection: "vajabhats",
		Label:      "Vajabhat",
		DateField:  "paymentDate",
		Required:   []string{"amount", "paymentDate"},
		Columns:    []string{"Amount", "Payment Date"},
		Row: func(rec entity.ServiceRecord) []string {
			v := rec.(*entity.Vajabhat)
			return []string{amountCell(v.Amount), displayDate(v.PaymentDate)}
		},
	},
}

var byTag = func() map[entity.CategoryTag]Definition {
	m := make(map[entity.CategoryTag]Definition, len(definitions))
	for _, d := range definitions {
		m[d.Tag] = d
	}
	return m
}()

// All returns every definition in canonical category order.
func All() []Definition {
	return definitions
}

// Lookup returns the definition for tag. The table is total over the
// CategoryTag constants; an unknown tag yields a zero Definition.
func Lookup(tag entity.CategoryTag) Definition {
	return byTag[tag]
}

// Known reports whether tag is one of the eight categories.
func Known(tag entity.CategoryTag) bool {
	_, ok := byTag[tag]
	return ok
}

// CollectionOf returns the storage collection name for tag.
func CollectionOf(tag entity.CategoryTag) string {
	return byTag[tag].Collection
}

// LabelOf returns the human-readable category label for tag.
func LabelOf(tag entity.CategoryTag) string {
	return byTag[tag].Label
}

// DateFieldOf returns the stored field name used for chronological sorting.
func DateFieldOf(tag entity.CategoryTag) string {
	return byTag[tag].DateField
}

// NewRecord returns a zero-value record of the given category, suitable as a
// decode target for caller-supplied payloads.
func NewRecord(tag entity.CategoryTag) entity.ServiceRecord {
	switch tag {
	case entity.CategoryFlight:
		return &entity.FlightBooking{}
	case entity.CategoryHotel:
		return &entity.HotelReservation{}
	case entity.CategoryCar:
		return &entity.CarRental{}
	case entity.CategoryVisa:
		return &entity.VisaApplication{}
	case entity.CategoryForeignExchange:
		return &entity.ForeignExchange{}
	case entity.CategoryTourPackage:
		return &entity.TourPackage{}
	case entity.CategoryTrain:
		return &entity.TrainBooking{}
	case entity.CategoryVajabhat:
		return &entity.Vajabhat{}
	}
	return nil
}

func displayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(displayDateLayout)
}

func amountCell(a entity.Amount) string {
	if !a.Valid {
		return ""
	}
	return strconv.FormatInt(a.Value, 10)
}
