package usecase_test

import (
	"testing"
	"time"

	"travelledger-service/internal/domain/entity"
	"travelledger-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentFeed_OrderAndBound(t *testing.T) {
	snap := mixedSnapshot()

	rows := usecase.RecentFeed(snap, 3)

	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		prev := rows[i-1]
		cur := rows[i]
		// newest first; the sort key is creation time, checked indirectly
		// through the fixture's one-hour spacing
		assert.NotEqual(t, prev.Category, cur.Category)
	}
	// fixture creation times: vajabhat newest, then forex, then car
	assert.Equal(t, entity.CategoryVajabhat, rows[0].Category)
	assert.Equal(t, entity.CategoryForeignExchange, rows[1].Category)
	assert.Equal(t, entity.CategoryCar, rows[2].Category)
}

func TestRecentFeed_DefaultSize(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := &entity.Snapshot{}
	for i := 0; i < 15; i++ {
		snap.Visas = append(snap.Visas, entity.VisaApplication{
			ServiceBase: entity.ServiceBase{CreatedAt: base.Add(time.Duration(i) * time.Minute)},
			Country:     "Nepal",
		})
	}

	assert.Len(t, usecase.RecentFeed(snap, 0), 10)
	assert.Len(t, usecase.RecentFeed(snap, -3), 10)
	assert.Len(t, usecase.RecentFeed(snap, 20), 15)
}

func TestRecentFeed_Stable(t *testing.T) {
	// identical creation times force the tie-break path
	created := time.Date(2025, 2, 2, 12, 0, 0, 0, time.UTC)
	snap := &entity.Snapshot{
		Hotels: []entity.HotelReservation{
			{ServiceBase: entity.ServiceBase{CreatedAt: created}, HotelName: "A"},
			{ServiceBase: entity.ServiceBase{CreatedAt: created}, HotelName: "B"},
		},
		Trains: []entity.TrainBooking{
			{ServiceBase: entity.ServiceBase{CreatedAt: created}, FromLocation: "PNQ", ToLocation: "NDLS"},
		},
	}

	first := usecase.RecentFeed(snap, 10)
	second := usecase.RecentFeed(snap, 10)

	assert.Equal(t, first, second)
	// ties keep category order: hotels before trains
	assert.Equal(t, entity.CategoryHotel, first[0].Category)
	assert.Equal(t, entity.CategoryHotel, first[1].Category)
	assert.Equal(t, entity.CategoryTrain, first[2].Category)
}

func TestRecentFeed_CategoryCarriedNotGuessed(t *testing.T) {
	// a train booking shares fromLocation/toLocation with flights; its tag
	// must still come from its snapshot slot
	snap := &entity.Snapshot{
		Trains: []entity.TrainBooking{
			{
				ServiceBase:  entity.ServiceBase{CreatedAt: time.Now()},
				FromLocation: "DEL",
				ToLocation:   "BOM",
				TrainDate:    time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	rows := usecase.RecentFeed(snap, 10)

	require.Len(t, rows, 1)
	assert.Equal(t, entity.CategoryTrain, rows[0].Category)
	assert.Equal(t, "Train Booking", rows[0].Label)
	assert.Equal(t, time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC), rows[0].Date)
}

func TestRecentFeed_ForeignExchangeDateIsCreation(t *testing.T) {
	created := time.Date(2025, 5, 5, 8, 30, 0, 0, time.UTC)
	snap := &entity.Snapshot{
		ForeignExchanges: []entity.ForeignExchange{
			{ServiceBase: entity.ServiceBase{CreatedAt: created}, Currency: "EUR", Rate: 90.1},
		},
	}

	rows := usecase.RecentFeed(snap, 10)

	require.Len(t, rows, 1)
	assert.Equal(t, created, rows[0].Date)
}

func TestRecentFeed_EmptySnapshot(t *testing.T) {
	assert.Empty(t, usecase.RecentFeed(&entity.Snapshot{}, 10))
}

func TestExportAll_RowCountAndOrder(t *testing.T) {
	snap := mixedSnapshot()

	table := usecase.ExportAll(snap)

	require.Len(t, table.Rows, snap.TotalCount())
	typeCol := table.ColumnIndex("Service Type")
	require.NotEqual(t, -1, typeCol)
	// category order regardless of creation times
	assert.Equal(t, "Flight Booking", table.Rows[0][typeCol])
	assert.Equal(t, "Car Rental", table.Rows[1][typeCol])
	assert.Equal(t, "Foreign Exchange", table.Rows[2][typeCol])
	assert.Equal(t, "Vajabhat", table.Rows[3][typeCol])
}

func TestExportAll_NoCrossCategoryLeakage(t *testing.T) {
	snap := &entity.Snapshot{
		Cars: []entity.CarRental{
			{
				ServiceBase: entity.ServiceBase{CustomerAmount: amt(4500), SupplierAmount: amt(3000)},
				Destination: "Lonavala",
				RentalDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				Seaters:     4,
			},
		},
	}

	table := usecase.ExportAll(snap)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "", row[table.ColumnIndex("Hotel Name")])
	assert.Equal(t, "", row[table.ColumnIndex("Country")])
	assert.Equal(t, "", row[table.ColumnIndex("Currency")])
	assert.Equal(t, "Lonavala", row[table.ColumnIndex("Destination")])
	assert.Equal(t, "2025-07-01", row[table.ColumnIndex("Date")])
	assert.Equal(t, "4", row[table.ColumnIndex("Seaters")])
	assert.Equal(t, "1500", row[table.ColumnIndex("Profit")])
}

func TestExportAll_Deterministic(t *testing.T) {
	snap := mixedSnapshot()

	assert.Equal(t, usecase.ExportAll(snap), usecase.ExportAll(snap))
}

func TestExportAll_EmptySnapshot(t *testing.T) {
	table := usecase.ExportAll(&entity.Snapshot{})

	assert.Empty(t, table.Rows)
	assert.Equal(t, usecase.ExportHeaders, table.Headers)
}

func TestExportAll_TourPackageColumns(t *testing.T) {
	snap := &entity.Snapshot{
		TourPackages: []entity.TourPackage{
			{
				ServiceBase:       entity.ServiceBase{CustomerAmount: amt(90000)},
				Destination:       "Kerala",
				StartDate:         time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
				EndDate:           time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC),
				FlightAmount:      amt(30000),
				CarAmount:         amt(10000),
				TourManagerAmount: amt(8000),
				TotalCost:         amt(72000),
			},
		},
	}

	table := usecase.ExportAll(snap)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "72000", row[table.ColumnIndex("Total Cost")])
	assert.Equal(t, "30000", row[table.ColumnIndex("Flight Amount")])
	// supplierAmount missing, cost basis falls back to totalCost
	assert.Equal(t, "72000", row[table.ColumnIndex("Supplier Amount")])
	assert.Equal(t, "18000", row[table.ColumnIndex("Profit")])
	assert.Equal(t, "", row[table.ColumnIndex("Amount")])
}
