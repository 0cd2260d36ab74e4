package entity

import (
	"time"
)

// CategoryTag identifies one of the eight service categories the business
// records. The set is closed; adding a category means adding a variant here
// and a registry definition, nothing else.
type CategoryTag string

const (
	CategoryFlight          CategoryTag = "flight"
	CategoryHotel           CategoryTag = "hotel"
	CategoryCar             CategoryTag = "car"
	CategoryVisa            CategoryTag = "visa"
	CategoryForeignExchange CategoryTag = "foreignExchange"
	CategoryTourPackage     CategoryTag = "tourPackage"
	CategoryTrain           CategoryTag = "train"
	CategoryVajabhat        CategoryTag = "vajabhat"
)

// Categories returns every category tag in canonical order. Feeds, exports
// and breakdowns all follow this order.
func Categories() []CategoryTag {
	return []CategoryTag{
		CategoryFlight,
		CategoryHotel,
		CategoryCar,
		CategoryVisa,
		CategoryForeignExchange,
		CategoryTourPackage,
		CategoryTrain,
		CategoryVajabhat,
	}
}

// ServiceRecord is one persisted transaction of any category.
type ServiceRecord interface {
	Category() CategoryTag
	// EventDate is the category's own transaction date. Foreign exchange has
	// no intrinsic one and falls back to the creation timestamp.
	EventDate() time.Time
	Created() time.Time
	// Revenue is the amount charged to the customer.
	Revenue() Amount
	// Cost is the supplier-side amount used in profit math.
	Cost() Amount
	Profit() int64
}

// ServiceBase carries the fields every variant shares. IDs and timestamps are
// assigned by the store; callers never set them.
type ServiceBase struct {
	ID             string    `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerAmount Amount    `bson:"customerAmount" json:"customerAmount"`
	SupplierAmount Amount    `bson:"supplierAmount" json:"supplierAmount"`
	CreatedAt      time.Time `bson:"createdAt,omitempty" json:"createdAt,omitzero"`
	UpdatedAt      time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}

func (b *ServiceBase) Created() time.Time { return b.CreatedAt }
func (b *ServiceBase) Revenue() Amount    { return b.CustomerAmount }
func (b *ServiceBase) Cost() Amount       { return b.SupplierAmount }

func (b *ServiceBase) Profit() int64 {
	return b.CustomerAmount.Or(0) - b.SupplierAmount.Or(0)
}

type FlightBooking struct {
	ServiceBase       `bson:",inline"`
	FromLocation      string    `bson:"fromLocation" json:"fromLocation"`
	ToLocation        string    `bson:"toLocation" json:"toLocation"`
	FlightDate        time.Time `bson:"flightDate,omitempty" json:"flightDate,omitzero"`
	Sector            string    `bson:"sector" json:"sector"`
	TourManagerAmount Amount    `bson:"tourManagerAmount" json:"tourManagerAmount"`
	CarAmount         Amount    `bson:"carAmount" json:"carAmount"`
}

func (f *FlightBooking) Category() CategoryTag { return CategoryFlight }
func (f *FlightBooking) EventDate() time.Time  { return f.FlightDate }

type HotelReservation struct {
	ServiceBase  `bson:",inline"`
	HotelName    string    `bson:"hotelName" json:"hotelName"`
	CheckInDate  time.Time `bson:"checkInDate,omitempty" json:"checkInDate,omitzero"`
	CheckOutDate time.Time `bson:"checkOutDate,omitempty" json:"checkOutDate,omitzero"`
}

func (h *HotelReservation) Category() CategoryTag { return CategoryHotel }
func (h *HotelReservation) EventDate() time.Time  { return h.CheckInDate }

type CarRental struct {
	ServiceBase `bson:",inline"`
	Destination string    `bson:"destination" json:"destination"`
	RentalDate  time.Time `bson:"rentalDate,omitempty" json:"rentalDate,omitzero"`
	Seaters     int       `bson:"seaters" json:"seaters"`
}

func (c *CarRental) Category() CategoryTag { return CategoryCar }
func (c *CarRental) EventDate() time.Time  { return c.RentalDate }

type VisaApplication struct {
	ServiceBase     `bson:",inline"`
	Country         string    `bson:"country" json:"country"`
	ApplicationDate time.Time `bson:"applicationDate,omitempty" json:"applicationDate,omitzero"`
}

func (v *VisaApplication) Category() CategoryTag { return CategoryVisa }
func (v *VisaApplication) EventDate() time.Time  { return v.ApplicationDate }

type ForeignExchange struct {
	ServiceBase `bson:",inline"`
	Currency    string  `bson:"currency" json:"currency"`
	Rate        float64 `bson:"rate" json:"rate"`
}

func (f *ForeignExchange) Category() CategoryTag { return CategoryForeignExchange }

// EventDate falls back to the creation timestamp; exchanges carry no
// transaction date of their own.
func (f *ForeignExchange) EventDate() time.Time { return f.CreatedAt }

type TourPackage struct {
	ServiceBase       `bson:",inline"`
	Destination       string    `bson:"destination" json:"destination"`
	StartDate         time.Time `bson:"startDate,omitempty" json:"startDate,omitzero"`
	EndDate           time.Time `bson:"endDate,omitempty" json:"endDate,omitzero"`
	FlightAmount      Amount    `bson:"flightAmount" json:"flightAmount"`
	CarAmount         Amount    `bson:"carAmount" json:"carAmount"`
	TourManagerAmount Amount    `bson:"tourManagerAmount" json:"tourManagerAmount"`
	TotalCost         Amount    `bson:"totalCost" json:"totalCost"`
}

func (t *TourPackage) Category() CategoryTag { return CategoryTourPackage }
func (t *TourPackage) EventDate() time.Time  { return t.StartDate }

// Cost is the supplier amount when one was recorded, otherwise the package's
// all-in total cost. Tour packages are the one category where the data entry
// flow fills totalCost instead of supplierAmount.
func (t *TourPackage) Cost() Amount {
	if t.SupplierAmount.Valid {
		return t.SupplierAmount
	}
	return t.TotalCost
}

func (t *TourPackage) Profit() int64 {
	return t.CustomerAmount.Or(0) - t.Cost().Or(0)
}

type TrainBooking struct {
	ServiceBase  `bson:",inline"`
	FromLocation string    `bson:"fromLocation" json:"fromLocation"`
	ToLocation   string    `bson:"toLocation" json:"toLocation"`
	TrainDate    time.Time `bson:"trainDate,omitempty" json:"trainDate,omitzero"`
}

func (t *TrainBooking) Category() CategoryTag { return CategoryTrain }
func (t *TrainBooking) EventDate() time.Time  { return t.TrainDate }

type Vajabhat struct {
	ServiceBase `bson:",inline"`
	Amount      Amount    `bson:"amount" json:"amount"`
	PaymentDate time.Time `bson:"paymentDate,omitempty" json:"paymentDate,omitzero"`
}

func (v *Vajabhat) Category() CategoryTag { return CategoryVajabhat }
func (v *Vajabhat) EventDate() time.Time  { return v.PaymentDate }
