package usecase_test

import (
	"testing"
	"time"

	"travelledger-service/internal/domain/entity"
	"travelledger-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(v int64) entity.Amount {
	return entity.AmountOf(v)
}

func TestSummarize_ExampleScenario(t *testing.T) {
	d1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	snap := &entity.Snapshot{
		Flights: []entity.FlightBooking{
			{
				ServiceBase:  entity.ServiceBase{CustomerAmount: amt(10000), SupplierAmount: amt(7000)},
				FromLocation: "DEL",
				ToLocation:   "BOM",
				FlightDate:   d1,
			},
		},
		Hotels: []entity.HotelReservation{
			{
				ServiceBase: entity.ServiceBase{CustomerAmount: amt(5000), SupplierAmount: amt(4000)},
				HotelName:   "X",
				CheckInDate: d2,
			},
		},
	}

	summary := usecase.Summarize(snap)

	assert.Equal(t, 2, summary.TotalServices)
	assert.Equal(t, int64(15000), summary.TotalCustomerAmount)
	assert.Equal(t, int64(11000), summary.TotalSupplierAmount)
	assert.Equal(t, int64(4000), summary.TotalProfit)
	assert.Equal(t, 1, summary.ServiceBreakdown[entity.CategoryFlight])
	assert.Equal(t, 1, summary.ServiceBreakdown[entity.CategoryHotel])
	assert.Equal(t, 0, summary.ServiceBreakdown[entity.CategoryCar])
	assert.Equal(t, 0, summary.ServiceBreakdown[entity.CategoryVajabhat])
	assert.Zero(t, summary.CoercedAmounts)
}

func TestSummarize_EmptySnapshot(t *testing.T) {
	summary := usecase.Summarize(&entity.Snapshot{})

	assert.Zero(t, summary.TotalServices)
	assert.Zero(t, summary.TotalCustomerAmount)
	assert.Zero(t, summary.TotalSupplierAmount)
	assert.Zero(t, summary.TotalProfit)
	require.Len(t, summary.ServiceBreakdown, 8)
	for tag, count := range summary.ServiceBreakdown {
		assert.Zero(t, count, "category %s", tag)
	}
}

func TestSummarize_TotalsMatchBreakdown(t *testing.T) {
	snap := mixedSnapshot()

	summary := usecase.Summarize(snap)

	breakdownSum := 0
	for _, count := range summary.ServiceBreakdown {
		breakdownSum += count
	}
	assert.Equal(t, summary.TotalServices, breakdownSum)
	assert.Equal(t, summary.TotalProfit, summary.TotalCustomerAmount-summary.TotalSupplierAmount)
}

func TestSummarize_MissingAmountsCountZero(t *testing.T) {
	snap := &entity.Snapshot{
		Visas: []entity.VisaApplication{
			{
				// customerAmount null in the store, supplierAmount present
				ServiceBase: entity.ServiceBase{SupplierAmount: amt(1200)},
				Country:     "Japan",
			},
		},
	}

	summary := usecase.Summarize(snap)

	assert.Equal(t, 1, summary.TotalServices)
	assert.Equal(t, int64(0), summary.TotalCustomerAmount)
	assert.Equal(t, int64(1200), summary.TotalSupplierAmount)
	assert.Equal(t, int64(-1200), summary.TotalProfit)
	assert.Equal(t, 1, summary.CoercedAmounts)
}

func TestSummarize_PureAndIdempotent(t *testing.T) {
	snap := mixedSnapshot()

	first := usecase.Summarize(snap)
	second := usecase.Summarize(snap)

	assert.Equal(t, first, second)
	// the input snapshot is untouched
	assert.Equal(t, mixedSnapshot(), snap)
}

func TestSummarize_TourPackageCostFallsBackToTotalCost(t *testing.T) {
	snap := &entity.Snapshot{
		TourPackages: []entity.TourPackage{
			{
				ServiceBase: entity.ServiceBase{CustomerAmount: amt(90000)},
				Destination: "Kerala",
				TotalCost:   amt(72000),
			},
		},
	}

	summary := usecase.Summarize(snap)

	assert.Equal(t, int64(72000), summary.TotalSupplierAmount)
	assert.Equal(t, int64(18000), summary.TotalProfit)
	assert.Zero(t, summary.CoercedAmounts)
}

func TestSummarize_TourPackagePrefersSupplierAmount(t *testing.T) {
	pkg := &entity.TourPackage{
		ServiceBase: entity.ServiceBase{CustomerAmount: amt(90000), SupplierAmount: amt(65000)},
		TotalCost:   amt(72000),
	}

	assert.Equal(t, int64(65000), pkg.Cost().Or(0))
	assert.Equal(t, int64(25000), pkg.Profit())
}

func mixedSnapshot() *entity.Snapshot {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &entity.Snapshot{
		Flights: []entity.FlightBooking{
			{
				ServiceBase:  entity.ServiceBase{CustomerAmount: amt(18000), SupplierAmount: amt(15000), CreatedAt: base},
				FromLocation: "BOM",
				ToLocation:   "DXB",
				FlightDate:   base.AddDate(0, 0, 14),
			},
		},
		Cars: []entity.CarRental{
			{
				ServiceBase: entity.ServiceBase{CustomerAmount: amt(4500), SupplierAmount: amt(3000), CreatedAt: base.Add(time.Hour)},
				Destination: "Shirdi",
				RentalDate:  base.AddDate(0, 0, 2),
				Seaters:     7,
			},
		},
		ForeignExchanges: []entity.ForeignExchange{
			{
				ServiceBase: entity.ServiceBase{CustomerAmount: amt(84000), SupplierAmount: amt(83000), CreatedAt: base.Add(2 * time.Hour)},
				Currency:    "USD",
				Rate:        83.2,
			},
		},
		Vajabhats: []entity.Vajabhat{
			{
				ServiceBase: entity.ServiceBase{CustomerAmount: amt(2000), SupplierAmount: amt(2000), CreatedAt: base.Add(3 * time.Hour)},
				Amount:      amt(2000),
				PaymentDate: base.AddDate(0, 0, 1),
			},
		},
	}
}
